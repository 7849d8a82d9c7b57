package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Token   string `short:"t" long:"token" description:"Bot token (required)" value-name:"TOKEN"`
	AppID   string `short:"a" long:"appid" description:"App id (required)" value-name:"APPID"`
	GuildID string `short:"g" long:"guid" description:"Guild id (required)" value-name:"GUID"`
}

var errHelpShown = errors.New("help shown")

func newParser(opts *Options) *flags.Parser {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "registrar"
	return parser
}

// parseOptions parses args into Options. On -h it writes the help text to
// stdout and returns errHelpShown.
func parseOptions(parser *flags.Parser, args []string, stdout io.Writer) error {
	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return errHelpShown
		}
		return err
	}

	if len(rest) > 0 {
		return fmt.Errorf("unrecognized arguments: %v", rest)
	}

	return nil
}
