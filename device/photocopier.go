package device

import (
	"context"
	"strings"
)

var (
	_ Printer = (*Photocopier)(nil)
	_ Scanner = (*Photocopier)(nil)
)

// Photocopier prints and scans. It cannot fax.
// Printing is delegated to any Printer.
type Photocopier struct {
	printer Printer
}

func NewPhotocopier(printer Printer) *Photocopier {
	return &Photocopier{printer: printer}
}

func (p *Photocopier) Print(ctx context.Context, doc Document) error {
	return p.printer.Print(ctx, doc)
}

// Scan returns a digital copy of doc, with normalized line endings.
func (p *Photocopier) Scan(ctx context.Context, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	return Document{
		Name:    doc.Name + " (scan)",
		Content: strings.ReplaceAll(doc.Content, "\r\n", "\n"),
	}, nil
}

// Copy scans doc and prints the scan.
func (p *Photocopier) Copy(ctx context.Context, doc Document) error {
	scanned, err := p.Scan(ctx, doc)
	if err != nil {
		return err
	}
	return p.Print(ctx, scanned)
}
