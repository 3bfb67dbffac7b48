package device

import (
	"context"

	"github.com/pkg/errors"
)

// MultiFunctionDevice can print, scan and fax.
type MultiFunctionDevice interface {
	Printer
	Scanner
	Faxer
}

var _ MultiFunctionDevice = (*MultiFunctionMachine)(nil)

// MultiFunctionMachine delegates each capability to a dedicated device.
type MultiFunctionMachine struct {
	printer Printer
	scanner Scanner
	faxer   Faxer
}

// NewMultiFunctionMachine returns ErrCapabilityMissing if any collaborator is nil.
func NewMultiFunctionMachine(printer Printer, scanner Scanner, faxer Faxer) (*MultiFunctionMachine, error) {
	if printer == nil {
		return nil, errors.Wrap(ErrCapabilityMissing, string(Print))
	}
	if scanner == nil {
		return nil, errors.Wrap(ErrCapabilityMissing, string(Scan))
	}
	if faxer == nil {
		return nil, errors.Wrap(ErrCapabilityMissing, string(Fax))
	}
	return &MultiFunctionMachine{printer: printer, scanner: scanner, faxer: faxer}, nil
}

func (m *MultiFunctionMachine) Print(ctx context.Context, doc Document) error {
	return m.printer.Print(ctx, doc)
}

func (m *MultiFunctionMachine) Scan(ctx context.Context, doc Document) (Document, error) {
	return m.scanner.Scan(ctx, doc)
}

func (m *MultiFunctionMachine) Fax(ctx context.Context, doc Document, number string) error {
	return m.faxer.Fax(ctx, doc, number)
}
