// Package patch provides a JSON field type that remembers whether the key was
// present in the payload, so partial updates can tell "absent" from "null".
package patch

import (
	"bytes"
	"encoding/json"
)

// Field is one attribute of a partial update.
//
//	absent key  -> Set == false
//	null        -> Set == true, Value == nil
//	value       -> Set == true, Value != nil
type Field[T any] struct {
	Set   bool
	Value *T
}

// Of returns a Field carrying v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null returns a Field that explicitly clears the attribute.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// IsNull reports whether the payload carried an explicit null.
func (f Field[T]) IsNull() bool {
	return f.Set && f.Value == nil
}

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// MarshalJSON writes the value or null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// Apply overwrites a required attribute when a value was supplied.
// Null on a required attribute is rejected earlier by validation.
func (f Field[T]) Apply(dst *T) {
	if f.Set && f.Value != nil {
		*dst = *f.Value
	}
}

// ApplyOptional overwrites an optional attribute, clearing it on null.
func (f Field[T]) ApplyOptional(dst **T) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}
