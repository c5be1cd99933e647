package castable

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for casting events.
var (
	SignalEngineCreated  = capitan.NewSignal("castable.engine.created", "Engine instantiated for a record")
	SignalSetComplete    = capitan.NewSignal("castable.set.complete", "Attribute write finished")
	SignalGetComplete    = capitan.NewSignal("castable.get.complete", "Attribute read finished")
	SignalCasterResolved = capitan.NewSignal("castable.caster.resolved", "Caster constructed for a field")
)

// Keys for typed event data.
var (
	KeyRecord   = capitan.NewStringKey("record")
	KeyField    = capitan.NewStringKey("field")
	KeyCastType = capitan.NewStringKey("cast_type")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitEngineCreated emits an event when an engine is created.
func emitEngineCreated(record string) {
	capitan.Emit(context.Background(), SignalEngineCreated,
		KeyRecord.Field(record),
	)
}

// emitSetComplete emits an event when an attribute write finishes.
func emitSetComplete(record, key string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyRecord.Field(record),
		KeyField.Field(key),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalSetComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalSetComplete, fields...)
	}
}

// emitGetComplete emits an event when an attribute read finishes.
func emitGetComplete(record, key string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyRecord.Field(record),
		KeyField.Field(key),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalGetComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalGetComplete, fields...)
	}
}

// emitCasterResolved emits an event when a caster is constructed.
func emitCasterResolved(record, key, castType string) {
	capitan.Emit(context.Background(), SignalCasterResolved,
		KeyRecord.Field(record),
		KeyField.Field(key),
		KeyCastType.Field(castType),
	)
}
