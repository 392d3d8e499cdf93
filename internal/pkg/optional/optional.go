// Package optional provides a presence-aware field for partial-update
// payloads: a field that was absent from the JSON body, one that was
// explicitly null, and one that carries a value are three different states.
package optional

import "encoding/json"

// Field is a tri-state JSON field. The zero value is "absent".
type Field[T any] struct {
	set   bool
	valid bool
	value T
}

// Of returns a set field holding v. Mainly for tests and callers that
// build updates programmatically.
func Of[T any](v T) Field[T] {
	return Field[T]{set: true, valid: true, value: v}
}

// Null returns a field that was explicitly null.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// UnmarshalJSON is only invoked for keys present in the body, so Present
// becomes true exactly when the field appeared.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.valid = false
		return nil
	}
	if err := json.Unmarshal(b, &f.value); err != nil {
		return err
	}
	f.valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Present reports whether the field appeared in the payload at all.
func (f Field[T]) Present() bool { return f.set }

// IsNull reports whether the field was an explicit null.
func (f Field[T]) IsNull() bool { return f.set && !f.valid }

// Value returns the value and whether one was actually carried.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.set && f.valid
}

// Ptr returns a pointer to the value, or nil for absent/null fields.
// Handy for writing nullable columns.
func (f Field[T]) Ptr() *T {
	if !f.set || !f.valid {
		return nil
	}
	v := f.value
	return &v
}
