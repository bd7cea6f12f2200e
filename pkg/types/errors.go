package types

import "errors"

// Standard errors returned by the store and service layers. Callers test
// for them with errors.Is; wrapped variants carry the offending id or
// input in their message.
var (
	// ErrProjectNotFound is reported by the service layer when an
	// operation targets a project id with no matching row. The store
	// itself reports "no match" through its return values, never
	// through this error.
	ErrProjectNotFound = errors.New("project does not exist")

	// ErrCategoryNotFound is reported when a category assignment names
	// an unknown category.
	ErrCategoryNotFound = errors.New("category does not exist")

	// ErrInvalidNumber is reported when text input cannot be parsed as
	// the expected numeric type.
	ErrInvalidNumber = errors.New("not a valid number")

	// ErrStoreClosed is returned by store operations after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data directory must not be empty")
)
