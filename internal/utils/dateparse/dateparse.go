// Package dateparse parses the date formats the frontend sends interchangeably.
package dateparse

import (
	"fmt"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
)

const (
	layoutISO = "2006-01-02"
	layoutDMY = "02/01/2006"
)

// Parse accepts YYYY-MM-DD or DD/MM/YYYY. The returned error names the field
// and the accepted formats and matches apperrors.ErrValidation.
func Parse(field, value string) (time.Time, error) {
	if t, err := time.Parse(layoutISO, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutDMY, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD or DD/MM/YYYY, got %q",
		apperrors.ErrValidation, field, value)
}

// ParseOptional parses value when non-empty; an empty value yields a nil time.
func ParseOptional(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := Parse(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
