// Package optional distingue "campo ausente" de "campo con valor cero" en actualizaciones parciales.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value es Unset o Set(v). En JSON, un campo ausente o null queda Unset.
type Value[T any] struct {
	value T
	set   bool
}

// Of construye un valor presente.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// IsSet informa si el campo vino en la petición.
func (o Value[T]) IsSet() bool { return o.set }

// Get devuelve el valor y si está presente.
func (o Value[T]) Get() (T, bool) { return o.value, o.set }

// OrElse devuelve el valor o def si está ausente.
func (o Value[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// Apply escribe el valor en dst solo si está presente.
func (o Value[T]) Apply(dst *T) {
	if o.set {
		*dst = o.value
	}
}

// UnmarshalJSON marca el campo como presente salvo que llegue null.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value, o.set = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.set = true
	return nil
}

// MarshalJSON escribe null si está ausente.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
