package registry

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrOwnerRequired     = errors.New("owner address is required")
	ErrMintMismatch      = errors.New("mint does not match the mint derived from the registry id")
	ErrNoInstructions    = errors.New("no instructions to submit")
	ErrZeroAmount        = errors.New("mint amount must be greater than zero")
	ErrSubmitterRequired = errors.New("registry has no transaction submitter")
	ErrMetadataDisabled  = errors.New("metadata lookups are disabled")
	ErrInvalidAssetType  = errors.New("invalid asset type")
	ErrAddressDerivation = errors.New("failed to derive program address")
)

// ValidationErrors maps a form field to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
