package castable

// Caster contracts exposed to user-supplied caster types. A caster
// transforms one field between its stored representation and its
// in-memory representation.
//
// Every caster implements CasterSetter. A caster that also implements
// CasterGetter is outbound: reads go through Get and successful
// object-like results are memoized per record. A caster implementing
// only CasterSetter is inbound-only: reads return the stored value
// unchanged and nothing is cached for its field.
//
// Capability is detected by interface assertion, never reflection.

// CasterSetter is the write capability, required for every caster.
type CasterSetter interface {
	// Set transforms value for storage. The return is either a single
	// raw value (stored under key) or a map[string]any of attribute
	// writes merged into the record's dictionary. attributes is a
	// snapshot of the record's current raw attributes.
	Set(r Record, key string, value any, attributes map[string]any) (any, error)
}

// CasterGetter is the optional read capability.
type CasterGetter interface {
	// Get transforms the raw stored value for in-memory use.
	// attributes is a snapshot of the record's current raw attributes.
	Get(r Record, key string, raw any, attributes map[string]any) (any, error)
}

// Castable is a descriptor a value type can provide to supply its own
// caster. CastUsing receives the declaration arguments and returns
// either a live CasterSetter or a string identifier naming a registered
// caster to construct with the same arguments.
type Castable interface {
	CastUsing(args []string) any
}
