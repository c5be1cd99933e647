package castable

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
)

// CasterFactory constructs a caster from the positional arguments of a
// cast declaration.
type CasterFactory func(args []string) (CasterSetter, error)

// casterRegistry maps caster identifiers to factories. Registration is
// process-global and concurrent-safe; resolution is a lock-free read.
var casterRegistry = xsync.NewMapOf[string, CasterFactory]()

// RegisterCaster registers a caster factory under name. Registering the
// same name twice replaces the earlier factory.
func RegisterCaster(name string, factory CasterFactory) {
	casterRegistry.Store(name, factory)
}

// RegisterCastable registers a Castable descriptor under name. When the
// descriptor's CastUsing returns a string, it names another registered
// caster which is constructed with the same arguments; a single level of
// indirection is followed.
func RegisterCastable(name string, c Castable) {
	casterRegistry.Store(name, func(args []string) (CasterSetter, error) {
		switch out := c.CastUsing(args).(type) {
		case CasterSetter:
			return out, nil
		case string:
			factory, ok := casterRegistry.Load(out)
			if !ok {
				return nil, fmt.Errorf("castable %q names unregistered caster %q", name, out)
			}
			return factory(args)
		default:
			return nil, fmt.Errorf("castable %q returned %T, want CasterSetter or string", name, out)
		}
	})
}

// ResetCasters clears the caster registry.
// This is primarily useful for test isolation; init-time registrations
// are not replayed.
func ResetCasters() {
	casterRegistry.Clear()
}

// lookupCaster returns the factory registered under name.
func lookupCaster(name string) (CasterFactory, bool) {
	return casterRegistry.Load(name)
}

// resolveCaster produces a live caster for key: a live declaration is
// returned directly; a string declaration is parsed and its identifier
// constructed through the registry with the declaration arguments.
func (e *Engine) resolveCaster(key string) (CasterSetter, error) {
	d, ok := e.declaration(key)
	if !ok {
		return nil, newUnresolvableCasterError(key, nil)
	}
	if c, live := d.(CasterSetter); live {
		return c, nil
	}
	s, ok := d.(string)
	if !ok {
		return nil, newUnresolvableCasterError(typeName(d), nil)
	}
	spec := ParseCast(s)
	factory, ok := lookupCaster(spec.Type)
	if !ok {
		return nil, newUnresolvableCasterError(spec.Type, nil)
	}
	c, err := factory(spec.Args)
	if err != nil {
		return nil, newUnresolvableCasterError(spec.Type, err)
	}
	emitCasterResolved(e.rec.Identity(), key, spec.Type)
	return c, nil
}
