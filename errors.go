package castable

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidCast indicates a cast declaration names something that is
	// neither a primitive cast type nor a registered caster.
	ErrInvalidCast = errors.New("invalid cast")

	// ErrUnresolvableCaster indicates caster construction failed
	// (unknown identifier, bad arguments, factory failure).
	ErrUnresolvableCaster = errors.New("unresolvable caster")

	// ErrNoEncrypter indicates an encrypted cast was used before any
	// encrypter was configured, process-wide or per engine.
	ErrNoEncrypter = errors.New("no encrypter configured")
)

// InvalidCastError reports a cast declaration that cannot be classified.
// It carries the owning record's identity, the field key, and the
// offending type identifier. This is a configuration error: it is raised
// at classification time and never retried.
type InvalidCastError struct {
	Record   string // record identity for error context
	Key      string // field key carrying the declaration
	CastType string // offending type identifier
}

func (e *InvalidCastError) Error() string {
	return fmt.Sprintf("invalid cast %q for field %s on record %s", e.CastType, e.Key, e.Record)
}

func (e *InvalidCastError) Unwrap() error {
	return ErrInvalidCast
}

// UnresolvableCasterError reports a failure to construct a caster
// instance during resolution.
type UnresolvableCasterError struct {
	CastType string // caster identifier that failed to resolve
	Cause    error  // factory error, nil for unknown identifiers
}

func (e *UnresolvableCasterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unresolvable caster %q: %v", e.CastType, e.Cause)
	}
	return fmt.Sprintf("unresolvable caster %q", e.CastType)
}

func (e *UnresolvableCasterError) Unwrap() error {
	return ErrUnresolvableCaster
}

// newInvalidCastError creates an InvalidCastError for a record field.
func newInvalidCastError(record, key, castType string) error {
	return &InvalidCastError{Record: record, Key: key, CastType: castType}
}

// newUnresolvableCasterError creates an UnresolvableCasterError.
func newUnresolvableCasterError(castType string, cause error) error {
	return &UnresolvableCasterError{CastType: castType, Cause: cause}
}
