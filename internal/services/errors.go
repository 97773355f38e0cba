package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("not authorized")
	ErrAlreadyDecided   = errors.New("approval already decided")
	ErrNoPrimaryContact = errors.New("team has no primary contact")
	ErrNoContactAddress = errors.New("recipient has no email address")
	ErrTeamClaimed      = errors.New("team is already claimed")
	ErrSlugExhausted    = errors.New("could not allocate a unique slug")
	ErrNoProfile        = errors.New("create a profile first")
)

// ValidationError carries field-level detail for malformed input. Checked
// with errors.As in handlers and rendered as a 400 with the field map.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return fmt.Sprintf("validation failed (%s)", strings.Join(parts, "; "))
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, msg string) {
	if _, dup := e.Fields[field]; !dup {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
