package upy

import (
	"errors"
)

var (
	// ErrUndefinedTable query builder is not bound to a table
	ErrUndefinedTable = errors.New("undefined table")
	// ErrInvalidFilterArgument filter argument can not be folded into conditions
	ErrInvalidFilterArgument = errors.New("invalid filter argument")
	// ErrInvalidUpdateArgument update argument is not an assignment
	ErrInvalidUpdateArgument = errors.New("invalid update argument")
	// ErrMissingAssignments update without assignments
	ErrMissingAssignments = errors.New("SET assignments required")
	// ErrInvalidField invalid field
	ErrInvalidField = errors.New("invalid field")
	// ErrPrimaryKeyRequired primary keys required
	ErrPrimaryKeyRequired = errors.New("primary key required")
)
