package condition

import "errors"

var (
	// ErrUnknownOperator is returned for operators outside == != > >= < <=.
	ErrUnknownOperator = errors.New("unknown comparison operator")

	// ErrInvalidCondition is returned when a condition cannot be built from its parts.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrNoConditions is returned by Solve when called without conditions.
	ErrNoConditions = errors.New("no conditions to solve")

	// ErrInvalidExpression is returned when an expression does not compile.
	ErrInvalidExpression = errors.New("invalid condition expression")

	// ErrNotBoolean is returned when an expression evaluates to a non-boolean.
	ErrNotBoolean = errors.New("condition expression did not return a boolean")

	// ErrUnknownMode is returned for a quantifier name that is not all, some, none or one.
	ErrUnknownMode = errors.New("unknown quantifier mode")
)
