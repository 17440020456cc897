package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound  = errors.New("pool record not found")
	ErrVersionMismatch = errors.New("pool record version mismatch")
	ErrPoolExhausted   = errors.New("pool exhausted")
	ErrUnknownKind     = errors.New("unknown pool kind")
)

type SetErrorKind string

const (
	SetErrorEmpty    SetErrorKind = "empty full set"
	SetErrorOverlap  SetErrorKind = "black & white set intersects"
	SetErrorAllBlack SetErrorKind = "blacked all items"
	SetErrorAllWhite SetErrorKind = "whited all items"
)

// SetError reports a broken invariant between the full, white and black sets.
type SetError struct {
	Kind SetErrorKind
}

func (e *SetError) Error() string {
	return fmt.Sprintf("invalid pool sets: %s", e.Kind)
}

func (e *SetError) Is(target error) bool {
	other, ok := target.(*SetError)
	if !ok {
		return false
	}
	return other.Kind == "" || other.Kind == e.Kind
}

type RightsError struct {
	Reason string
	Rights Rights
}

func (e *RightsError) Error() string {
	return fmt.Sprintf("invalid rights (white: %d free: %d black: %d): %s",
		e.Rights.White, e.Rights.Free, e.Rights.Black(), e.Reason)
}
