package device

import "github.com/pkg/errors"

var (
	// ErrCapabilityMissing device collaborator for a capability is nil
	ErrCapabilityMissing = errors.New("device: capability missing")

	// ErrNumberEmpty fax number is empty
	ErrNumberEmpty = errors.New("device: fax number is empty")
)
