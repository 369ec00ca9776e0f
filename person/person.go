// Package person defines the participant record shared by conversations
// and messages. Records are immutable values: no identity beyond their
// fields, no mutation after construction.
package person

import "errors"

var ErrMissingName = errors.New("person: name is required")

// Person is a single chat participant.
type Person struct {
	Name string `validate:"required"`
}

// New builds a Person. The name is the only required field; there is no
// further validation here.
func New(name string) (Person, error) {
	if name == "" {
		return Person{}, ErrMissingName
	}
	return Person{Name: name}, nil
}

// IsZero reports whether the record was never constructed. Display
// components use this to reject missing required inputs.
func (p Person) IsZero() bool {
	return p == Person{}
}
