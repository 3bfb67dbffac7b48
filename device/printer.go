package device

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var _ Printer = (*ConsolePrinter)(nil)

// ConsolePrinter prints document contents to a writer, one per line.
type ConsolePrinter struct {
	w io.Writer
}

func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{w: w}
}

func (p *ConsolePrinter) Print(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.w, doc.Content); err != nil {
		return errors.Wrapf(err, "failed to print %s", doc)
	}
	return nil
}
