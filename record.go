package castable

// Record is what the engine needs from the owning record: its raw
// attribute dictionary and its cast registry. The engine reads and
// writes through these accessors but does not own the storage.
type Record interface {
	// Attributes returns the record's raw attribute dictionary.
	// The engine copies it before handing it to casters.
	Attributes() map[string]any

	// SetRawAttribute writes one raw attribute directly.
	SetRawAttribute(key string, value any)

	// MergeRawAttributes merges a partial attribute mapping into the
	// dictionary, overwriting existing keys.
	MergeRawAttributes(values map[string]any)

	// Casts returns the cast registry: field key to raw declaration,
	// either a declaration string or a live CasterSetter.
	Casts() map[string]any

	// Identity names the record for error context, typically its type
	// or table name.
	Identity() string
}

// SetMutator is an optional record capability. When the record reports
// a write mutator for a key, Set delegates entirely to it.
type SetMutator interface {
	HasSetMutator(key string) bool

	// SetMutatedValue applies the mutator. The mutator is responsible
	// for writing into the attribute dictionary; its return is the
	// final value of the operation.
	SetMutatedValue(key string, value any) any
}

// DateHandler is an optional record capability for date-typed fields.
type DateHandler interface {
	IsDateAttribute(key string) bool

	// FromDateTime coerces value to its storable date representation.
	FromDateTime(value any) any
}
