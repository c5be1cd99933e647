// Package casts provides the built-in custom casters that ship with
// castable: a bcrypt digest writer, a uuid.UUID caster, an
// arbitrary-precision decimal caster, and a MessagePack blob caster.
//
// All of them register themselves at init time:
//
//	hashed_value     inbound-only bcrypt digests (optional cost argument)
//	uuid             string columns as uuid.UUID values
//	decimal_value    string columns as decimal.Decimal (scale argument)
//	msgpack          base64 MessagePack blobs
package casts
