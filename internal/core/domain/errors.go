package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MissingArgumentError is returned before any request is made when one or
// more required parameters were not supplied.
type MissingArgumentError struct {
	Flags []string
}

func (e *MissingArgumentError) Error() string {
	return "the following arguments are required: " + strings.Join(e.Flags, ", ")
}

// NetworkError means the request never produced a complete response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ResponseParseError means the response body was not valid JSON.
type ResponseParseError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// maxBodyInError caps how much of a bad body ends up in the message.
const maxBodyInError = 200

func (e *ResponseParseError) Error() string {
	body := truncateRunes(e.Body, maxBodyInError)
	return fmt.Sprintf("parse response (status %d, body %q): %v", e.StatusCode, body, e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

// truncateRunes cuts b to at most n bytes without splitting a UTF-8 sequence.
func truncateRunes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n]) + "..."
}
