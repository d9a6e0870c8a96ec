package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Project paths and SDK names repeat heavily across cache keys, so interning
// them keeps one backing copy per distinct value and makes comparison cheap.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	return is.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}
