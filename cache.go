package castable

// resultCache memoizes decoded class-cast values per record. An entry
// exists only when the field's caster is outbound and the last value was
// object-like; inbound-only casters, non-object values, and explicit nil
// writes all invalidate. Lifetime equals the owning engine.
//
// No locking: engines are scoped to one record instance and assume
// single-threaded access per instance. Callers sharing a record across
// goroutines must synchronize externally.
type resultCache map[string]any

func (c resultCache) get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

func (c resultCache) put(key string, value any) {
	c[key] = value
}

func (c resultCache) invalidate(key string) {
	delete(c, key)
}
