package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Discord limits for chat input command definitions.
const (
	maxCommandNameLength        = 32
	maxCommandDescriptionLength = 100
)

// CommandDefinition is the body sent when registering a guild command.
// Field order fixes the JSON key order on the wire.
type CommandDefinition struct {
	Name        string                           `json:"name"`
	Description string                           `json:"description"`
	Type        discordgo.ApplicationCommandType `json:"type"`
}

// CreateEventCommand returns the definition of the create_event slash command.
func CreateEventCommand() CommandDefinition {
	return CommandDefinition{
		Name:        "create_event",
		Description: "Crea un evento",
		Type:        discordgo.ChatApplicationCommand,
	}
}

// Validate checks the definition against Discord's naming rules.
func (c CommandDefinition) Validate() error {
	var errs []error

	nameLen := utf8.RuneCountInString(c.Name)
	if nameLen == 0 || nameLen > maxCommandNameLength {
		errs = append(errs, fmt.Errorf("command name must be 1-%d characters, got %d", maxCommandNameLength, nameLen))
	}
	if c.Type == discordgo.ChatApplicationCommand && cases.Lower(language.Und).String(c.Name) != c.Name {
		errs = append(errs, fmt.Errorf("chat command name %q must be lowercase", c.Name))
	}

	descLen := utf8.RuneCountInString(c.Description)
	if c.Type == discordgo.ChatApplicationCommand && (descLen == 0 || descLen > maxCommandDescriptionLength) {
		errs = append(errs, fmt.Errorf("command description must be 1-%d characters, got %d", maxCommandDescriptionLength, descLen))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid command definition: %w", errors.Join(errs...))
	}
	return nil
}

// Response is whatever Discord answered, kept opaque.
type Response struct {
	StatusCode int
	Body       json.RawMessage
	Value      any
}

// Success reports whether the status code is 2xx. It is informational only.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Compact returns the body on a single line with the original key order.
func (r *Response) Compact() string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, r.Body); err != nil {
		return string(r.Body)
	}
	return buf.String()
}

// ParseResponse decodes body as an arbitrary JSON value.
func ParseResponse(statusCode int, body []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, &ResponseParseError{StatusCode: statusCode, Body: body, Err: err}
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, &ResponseParseError{StatusCode: statusCode, Body: body, Err: errors.New("trailing data after JSON value")}
	}

	return &Response{
		StatusCode: statusCode,
		Body:       json.RawMessage(bytes.TrimSpace(body)),
		Value:      value,
	}, nil
}
