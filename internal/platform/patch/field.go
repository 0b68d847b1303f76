// Package patch modela campos de PATCH que distinguen "no enviado" de "enviado".
package patch

import (
	"bytes"
	"encoding/json"
)

// Field guarda un valor y si fue provisto.
// Con JSON: clave ausente => Set=false; presente (incluido null) => Set=true.
type Field[T any] struct {
	Set   bool
	Value T
}

func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Apply sobrescribe dst solo si el campo fue provisto.
func (f Field[T]) Apply(dst *T) {
	if f.Set {
		*dst = f.Value
	}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		f.Value = zero
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
