package device

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var _ Faxer = (*LineFax)(nil)

// Transmission is a fax sent by LineFax.
type Transmission struct {
	Number   string
	Document Document
}

// LineFax records the faxes it sends.
type LineFax struct {
	mu   sync.Mutex
	sent []Transmission
}

func NewLineFax() *LineFax {
	return &LineFax{}
}

func (f *LineFax) Fax(ctx context.Context, doc Document, number string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(number) == "" {
		return errors.Wrapf(ErrNumberEmpty, "cannot fax %s", doc)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, Transmission{Number: number, Document: doc})
	return nil
}

// Sent returns a copy of the transmissions so far.
func (f *LineFax) Sent() []Transmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Transmission(nil), f.sent...)
}
