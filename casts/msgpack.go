package casts

import (
	"encoding/base64"

	"github.com/spf13/cast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ahmetaksoy/castable"
)

func init() {
	castable.RegisterCaster("msgpack", func([]string) (castable.CasterSetter, error) {
		return MessagePack{}, nil
	})
}

// MessagePack stores arbitrary values as base64-wrapped MessagePack
// blobs, for columns holding structured data in a more compact form
// than JSON documents.
type MessagePack struct{}

// Get decodes the stored blob into its generic value form.
func (MessagePack) Get(_ castable.Record, _ string, raw any, _ map[string]any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return nil, err
	}
	blob, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	var out any
	if err := msgpack.Unmarshal(blob, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Set encodes value as a MessagePack blob.
func (MessagePack) Set(_ castable.Record, _ string, value any, _ map[string]any) (any, error) {
	if value == nil {
		return nil, nil
	}
	blob, err := msgpack.Marshal(value)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}
