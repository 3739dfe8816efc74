package clause

import "errors"

var (
	// ErrInvalidConditionComparison a condition was combined with an operand it can not resolve
	ErrInvalidConditionComparison = errors.New("invalid condition comparison")
	// ErrInvalidConditionGroupComparison a condition group was combined with an operand it can not resolve
	ErrInvalidConditionGroupComparison = errors.New("invalid condition group comparison")
)
