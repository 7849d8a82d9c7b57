package console

import (
	"fmt"
	"io"

	"command-registrar/internal/core/domain"
)

// Reporter writes the program output: one value per line.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) ReportParameters(token, appID, guildID string) error {
	_, err := fmt.Fprintf(r.out, "%s\n%s\n%s\n", token, appID, guildID)
	return err
}

func (r *Reporter) ReportResponse(resp *domain.Response) error {
	_, err := fmt.Fprintln(r.out, resp.Compact())
	return err
}
