package models

import (
	"fmt"
	"strings"

	"github.com/integrasalud/affiliate-client/internal/common"
)

// Credentials is the submitted login form. Secret is a byte slice so callers
// can wipe it with common.WipeByteArray.
type Credentials struct {
	Identifier string
	Secret     []byte
}

// Validate checks both fields and returns an error wrapping
// common.ErrValidation on the first problem found.
func (c Credentials) Validate() error {
	if err := ValidateIdentifier(c.Identifier); err != nil {
		return err
	}
	if len(c.Secret) == 0 {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	return nil
}

// ValidateIdentifier accepts a non-empty string of at most
// common.IdentifierMaxLen ASCII digits.
func ValidateIdentifier(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("%w: document number is required", common.ErrValidation)
	case len(s) > common.IdentifierMaxLen:
		return fmt.Errorf("%w: document number must have at most %d digits", common.ErrValidation, common.IdentifierMaxLen)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: document number must contain digits only", common.ErrValidation)
		}
	}
	return nil
}

// SanitizeIdentifierInput mimics a numeric keypad with a length cap: it drops
// every non-digit and keeps at most common.IdentifierMaxLen digits.
func SanitizeIdentifierInput(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == common.IdentifierMaxLen {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
