package schema

import "errors"

var (
	// ErrUnsupportedModel model is not a struct
	ErrUnsupportedModel = errors.New("unsupported model")
	// ErrTableNameRequired model declares an empty table name
	ErrTableNameRequired = errors.New("table name required")
	// ErrInvalidAlias field alias is not in the form table.column or table__column
	ErrInvalidAlias = errors.New("invalid field alias")
	// ErrInvalidOperatorComparison operator can not compare a field with the given value
	ErrInvalidOperatorComparison = errors.New("invalid operator comparison")
)
