// Package device splits office machine functions into one interface per capability.
//
// A device implements exactly the capabilities it has. There is no "machine"
// interface forcing a printer to carry Scan or Fax methods it cannot honour,
// so an unsupported operation is a compile error rather than a silent no-op
// or a runtime failure.
package device

import "context"

// Document is the unit of work handled by devices.
type Document struct {
	Name    string
	Content string
}

func (d Document) String() string {
	return d.Name
}

// Printer prints documents.
type Printer interface {
	Print(ctx context.Context, doc Document) error
}

// Scanner scans documents.
type Scanner interface {
	Scan(ctx context.Context, doc Document) (Document, error)
}

// Faxer faxes documents.
type Faxer interface {
	Fax(ctx context.Context, doc Document, number string) error
}

// Capability names a device function.
type Capability string

const (
	Print Capability = "print"
	Scan  Capability = "scan"
	Fax   Capability = "fax"
)

// Capabilities reports the capabilities device implements, in print, scan, fax order.
func Capabilities(device any) []Capability {
	var caps []Capability
	if _, ok := device.(Printer); ok {
		caps = append(caps, Print)
	}
	if _, ok := device.(Scanner); ok {
		caps = append(caps, Scan)
	}
	if _, ok := device.(Faxer); ok {
		caps = append(caps, Fax)
	}
	return caps
}
