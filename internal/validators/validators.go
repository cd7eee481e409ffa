// Package validators wraps go-playground/validator for the repository's
// create paths. It rejects structurally invalid input before the round-trip;
// anything the database enforces (uniqueness, references) is left to the
// database.
package validators

import "github.com/go-playground/validator/v10"

// Validator holds a shared validator instance; the instance caches struct
// metadata, so one per repository is enough.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Struct validates the exported, tagged fields of s.
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}
