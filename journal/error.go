package journal

import "github.com/pkg/errors"

var (
	// ErrEntryOutOfRange entry position does not exist
	ErrEntryOutOfRange = errors.New("journal: entry out of range")

	// ErrMultilineEntry entry text spans more than one line
	ErrMultilineEntry = errors.New("journal: entry spans multiple lines")

	// ErrMalformedEntry saved journal line is not "<n>: <text>"
	ErrMalformedEntry = errors.New("journal: malformed entry")
)
