// Package castable converts raw stored attribute values into rich
// in-memory representations and back, driven by per-field cast
// declarations.
//
// An Engine binds to one record (anything implementing Record: an
// attribute dictionary plus a cast registry) and runs every read and
// write through a layered pipeline: write mutators, date coercion,
// user-supplied casters, JSON documents, nested document paths, and
// encryption.
//
// # Cast declarations
//
// The cast registry maps field keys to declarations of the form
// "type" or "type:arg1,arg2":
//
//	casts := map[string]any{
//	    "age":      "int",
//	    "price":    "decimal:2",
//	    "settings": "json",
//	    "secret":   "encrypted",
//	    "payload":  "encrypted:array",
//	    "signed":   "datetime",
//	    "balance":  "decimal_value:4", // registered custom caster
//	}
//
// Primitive types (int, float, decimal, bool, string, the json family,
// dates, timestamps, the encrypted family) are handled by the built-in
// primitive delegate. Any other identifier must name a caster
// registered through RegisterCaster or RegisterCastable; an identifier
// that is neither fails classification with InvalidCastError.
//
// # Reading and writing
//
//	engine := castable.New(record)
//
//	err := engine.Set("payload", map[string]any{"a": 1})
//	v, err := engine.GetAttribute("payload")
//
// Nested JSON document paths write through the stored document:
//
//	err := engine.Set("meta->prefs->theme", "dark")
//
// # Custom casters
//
// A caster implements CasterSetter, and optionally CasterGetter for the
// read direction. Casters without a Get are inbound-only: reads return
// the stored value unchanged. Decoded object-like results of outbound
// casters are memoized per record until the next write to the field.
//
// Value types can supply their own caster by registering a Castable
// descriptor; its CastUsing factory receives the declaration arguments.
//
// # Encryption
//
// The encrypted cast family routes through an Encrypter. Configure one
// process-wide with SetDefaultEncrypter (AES builds an AES-GCM
// implementation) or per engine with WithEncrypter.
//
//	enc, _ := castable.AES(key)
//	castable.SetDefaultEncrypter(enc)
//
// # Struct tags
//
// Records backed by structs can derive their cast registry from tags:
//
//	type User struct {
//	    Email string `cast:"encrypted"`
//	    Prefs string `cast:"json" column:"preferences"`
//	}
//
//	casts := castable.CastsFromStruct[User]()
package castable
