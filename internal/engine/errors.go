package engine

import (
	"errors"
	"fmt"
)

// ErrNonDeterministic reports a journaled calculation that no longer
// reproduces from its operands.
var ErrNonDeterministic = errors.New("non-deterministic calculation")

// MismatchError describes how a journaled calculation diverged.
type MismatchError struct {
	ID    string // journaled ID
	Field string // "id" or "result"
	Want  string // recomputed value
	Got   string // journaled value
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("calculation %s: %s mismatch: journaled %s, recomputed %s", shortID(e.ID), e.Field, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrNonDeterministic
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
