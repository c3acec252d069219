package domain

import "errors"

// Engine-level sentinel errors. Services wrap these into transport errors;
// the domain package never knows about HTTP.
var (
	// ErrUnknownFieldType is returned when a field type outside the closed
	// enumeration reaches the registry
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrFieldNotFound is returned by UpdateField when the field id is absent
	ErrFieldNotFound = errors.New("field not found")

	// ErrEmptyForm is returned by Publish when the form has no fields
	ErrEmptyForm = errors.New("form has no fields")

	// ErrMissingTitle is returned by Publish when the title is blank
	ErrMissingTitle = errors.New("form title is required")

	// ErrNotPublished is returned when a submission targets a draft form
	ErrNotPublished = errors.New("form is not published")
)
