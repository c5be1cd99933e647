package castable

import (
	"maps"
	"reflect"
	"strings"
	"time"

	"github.com/cybergodev/json"
	"github.com/spf13/cast"
)

// PathDelimiter separates the base column from the document path in
// nested JSON attribute keys (e.g. "meta->a->b").
const PathDelimiter = "->"

// Engine is the two-way casting pipeline for one record instance. It
// owns the record's class-cast result cache, so its lifetime should
// match the record's.
//
// Engines are single-threaded: the cache and the record's attribute
// dictionary carry no locking. Callers sharing a record across
// goroutines must synchronize externally.
type Engine struct {
	rec   Record
	enc   Encrypter
	prim  PrimitiveCaster
	cache resultCache
}

// Option configures an Engine.
type Option func(*Engine)

// WithEncrypter overrides the process-wide default encrypter for this
// engine.
func WithEncrypter(enc Encrypter) Option {
	return func(e *Engine) { e.enc = enc }
}

// WithPrimitiveCaster replaces the built-in primitive cast delegate.
func WithPrimitiveCaster(p PrimitiveCaster) Option {
	return func(e *Engine) { e.prim = p }
}

// New creates an Engine bound to rec.
func New(rec Record, opts ...Option) *Engine {
	e := &Engine{
		rec:   rec,
		prim:  NewPrimitiveCaster(),
		cache: resultCache{},
	}
	for _, opt := range opts {
		opt(e)
	}
	emitEngineCreated(rec.Identity())
	return e
}

// encrypter returns the engine's encrypter, falling back to the process
// default.
func (e *Engine) encrypter() (Encrypter, error) {
	if e.enc != nil {
		return e.enc, nil
	}
	if enc := DefaultEncrypter(); enc != nil {
		return enc, nil
	}
	return nil, ErrNoEncrypter
}

// snapshot copies the record's raw attributes for pass-through to
// casters.
func (e *Engine) snapshot() map[string]any {
	return maps.Clone(e.rec.Attributes())
}

// Set writes value for key through the casting pipeline, in strict
// precedence order: write mutator, date coercion, class cast, JSON
// encoding, nested path write, encryption, plain store.
func (e *Engine) Set(key string, value any) (err error) {
	start := time.Now()
	defer func() {
		emitSetComplete(e.rec.Identity(), key, time.Since(start), err)
	}()

	// A registered write mutator owns the whole operation.
	if m, ok := e.rec.(SetMutator); ok && m.HasSetMutator(key) {
		m.SetMutatedValue(key, value)
		return nil
	}

	if dh, ok := e.rec.(DateHandler); ok && value != nil && dh.IsDateAttribute(key) {
		value = dh.FromDateTime(value)
	}

	castable, err := e.IsClassCastable(key)
	if err != nil {
		return err
	}
	if castable {
		return e.setClassCastable(key, value)
	}

	if value != nil && e.IsJSONCast(key) {
		value, err = toJSON(value)
		if err != nil {
			return err
		}
	}

	if strings.Contains(key, PathDelimiter) {
		return e.fillJSONAttribute(key, value)
	}

	if value != nil && e.IsEncryptedCast(key) {
		value, err = e.encryptValue(value)
		if err != nil {
			return err
		}
	}

	e.rec.SetRawAttribute(key, value)
	return nil
}

// setClassCastable delegates a write to the field's caster and merges
// the normalized response into the attribute dictionary.
//
// A nil caller value still computes and merges the caster's response;
// only the cache write is suppressed, via the object-like rule below.
// Casters that map nil to a placeholder row depend on the merge.
func (e *Engine) setClassCastable(key string, value any) error {
	caster, err := e.resolveCaster(key)
	if err != nil {
		return err
	}

	out, err := caster.Set(e.rec, key, value, e.snapshot())
	if err != nil {
		return err
	}
	e.rec.MergeRawAttributes(normalizeCasterResponse(key, out))

	if _, outbound := caster.(CasterGetter); !outbound || !isObjectLike(value) {
		e.cache.invalidate(key)
	} else {
		e.cache.put(key, value)
	}
	return nil
}

// fillJSONAttribute writes value at a nested document path: the key
// splits into a base column and a path, the stored document is updated
// at that path and re-stored, passing through the encrypter when the
// base column is encrypted-family.
func (e *Engine) fillJSONAttribute(key string, value any) error {
	base, path, _ := strings.Cut(key, PathDelimiter)
	path = strings.ReplaceAll(path, PathDelimiter, ".")

	doc := "{}"
	if raw, ok := e.rec.Attributes()[base]; ok && raw != nil {
		s, err := cast.ToStringE(raw)
		if err != nil {
			return err
		}
		if e.IsEncryptedCast(base) {
			enc, err := e.encrypter()
			if err != nil {
				return err
			}
			if s, err = enc.Decrypt(s); err != nil {
				return err
			}
		}
		if s != "" {
			doc = s
		}
	}

	updated, err := json.Set(doc, path, value)
	if err != nil {
		return err
	}

	if e.IsEncryptedCast(base) {
		enc, err := e.encrypter()
		if err != nil {
			return err
		}
		if updated, err = enc.Encrypt(updated); err != nil {
			return err
		}
	}

	e.rec.SetRawAttribute(base, updated)
	return nil
}

// Get transforms the raw stored value for key into its in-memory
// representation: primitive conversion (with decryption layered on for
// the encrypted family), class-cast delegation through the result
// cache, or pass-through.
func (e *Engine) Get(key string, raw any) (value any, err error) {
	start := time.Now()
	defer func() {
		emitGetComplete(e.rec.Identity(), key, time.Since(start), err)
	}()

	if e.IsPrimitiveCast(key) {
		return e.getPrimitive(key, raw)
	}

	castable, err := e.IsClassCastable(key)
	if err != nil {
		return nil, err
	}
	if castable {
		return e.getClassCastable(key, raw)
	}

	return raw, nil
}

// GetAttribute reads key's raw value from the record and transforms it.
func (e *Engine) GetAttribute(key string) (any, error) {
	return e.Get(key, e.rec.Attributes()[key])
}

// getPrimitive applies the primitive conversion for key. Encrypted
// declarations decrypt first, then convert the plaintext under a local
// shadow of the declared type with the encrypted: prefix stripped; the
// registry entry itself is never touched, so the declared type survives
// the call on every path, including failures.
func (e *Engine) getPrimitive(key string, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	spec, _ := e.castSpecFor(key)
	effective := CastSpec{Type: string(e.castType(key)), Args: spec.Args}

	if e.IsEncryptedCast(key) {
		enc, err := e.encrypter()
		if err != nil {
			return nil, err
		}
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, err
		}
		plain, err := enc.Decrypt(s)
		if err != nil {
			return nil, err
		}
		effective.Type = strings.TrimPrefix(strings.TrimPrefix(effective.Type, string(CastEncrypted)), ":")
		return e.prim.Cast(key, effective, plain)
	}

	return e.prim.Cast(key, effective, raw)
}

// getClassCastable reads key through the field's caster, consulting and
// maintaining the result cache.
func (e *Engine) getClassCastable(key string, raw any) (any, error) {
	if v, ok := e.cache.get(key); ok {
		return v, nil
	}

	caster, err := e.resolveCaster(key)
	if err != nil {
		return nil, err
	}

	getter, outbound := caster.(CasterGetter)
	if !outbound {
		// Inbound-only: the stored value is the read value.
		return raw, nil
	}

	value, err := getter.Get(e.rec, key, raw, e.snapshot())
	if err != nil {
		return nil, err
	}

	if isObjectLike(value) {
		e.cache.put(key, value)
	} else {
		e.cache.invalidate(key)
	}
	return value, nil
}

// encryptValue stringifies value and encrypts it.
func (e *Engine) encryptValue(value any) (any, error) {
	enc, err := e.encrypter()
	if err != nil {
		return nil, err
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, err
	}
	return enc.Encrypt(s)
}

// toJSON encodes value to its stored JSON document form.
func toJSON(value any) (any, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// normalizeCasterResponse wraps a bare caster response as a one-key
// mapping; keyed mappings pass through for merging.
func normalizeCasterResponse(key string, out any) map[string]any {
	if m, ok := out.(map[string]any); ok {
		return m
	}
	return map[string]any{key: out}
}

// isObjectLike reports whether value is object-shaped for cache
// eligibility: maps, slices, arrays, structs, pointers, and funcs are;
// nil and scalar kinds are not.
func isObjectLike(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
