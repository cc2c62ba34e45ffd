// Package payload holds Opaque, a JSON-backed value type for the inputs
// and outputs that rule implementations define the shape of but the
// engine never needs to understand: generator seeds, ability and
// statistic alterations, impacts, and team objectives.
package payload

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Opaque wraps a JSON document the engine passes through untouched.
// Its zero value is a valid empty payload.
type Opaque struct {
	raw json.RawMessage
}

// Wrap marshals v into an Opaque.
func Wrap(v any) (Opaque, error) {
	if v == nil {
		return Opaque{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return Opaque{}, err
	}
	return Opaque{raw: raw}, nil
}

// MustWrap is Wrap but panics on a marshal error. Useful for literal
// payloads built from Go values known to marshal cleanly.
func MustWrap(v any) Opaque {
	o, err := Wrap(v)
	if err != nil {
		panic(err)
	}
	return o
}

// Raw returns the underlying JSON document, or nil if the payload is empty.
func (o Opaque) Raw() json.RawMessage {
	return o.raw
}

// IsZero reports whether the payload carries no document.
func (o Opaque) IsZero() bool {
	return len(o.raw) == 0
}

// Unmarshal decodes the payload into v.
func (o Opaque) Unmarshal(v any) error {
	if o.IsZero() {
		return nil
	}
	return json.Unmarshal(o.raw, v)
}

// Get returns the value at path without requiring a concrete schema.
// Callers that only need one field of an otherwise-opaque payload use
// this instead of unmarshaling the whole document.
func (o Opaque) Get(path string) gjson.Result {
	if o.IsZero() {
		return gjson.Result{}
	}
	return gjson.GetBytes(o.raw, path)
}

// Set returns a copy of the payload with path set to value.
func (o Opaque) Set(path string, value any) (Opaque, error) {
	base := o.raw
	if base == nil {
		base = json.RawMessage("{}")
	}
	raw, err := sjson.SetBytes(base, path, value)
	if err != nil {
		return Opaque{}, err
	}
	return Opaque{raw: raw}, nil
}

// MarshalJSON implements json.Marshaler.
func (o Opaque) MarshalJSON() ([]byte, error) {
	if o.IsZero() {
		return []byte("null"), nil
	}
	return o.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Opaque) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.raw = nil
		return nil
	}
	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	o.raw = raw
	return nil
}
