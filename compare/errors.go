package compare

import (
	"errors"
	"fmt"
)

// CheckError describes one failed elementary check.
//
// Check errors are recorded and reported, never returned or panicked:
// callers of Test and TriCompare receive a bool.
type CheckError struct {
	// Code identifies the failure category.
	Code CheckErrorCode

	// Expr is the literal check that failed, e.g. "!(obj1 < obj2)".
	Expr string

	// Assertion is the relation under test (zero for validity failures).
	Assertion Assertion

	// Left and Right are the operands in the order Expr names them.
	Left, Right any

	// File and Line locate the call site outside this package.
	File string
	Line int
}

// CheckErrorCode categorizes check failures.
type CheckErrorCode string

const (
	// CodeMismatch indicates a defined operator disagreed with the assertion.
	CodeMismatch CheckErrorCode = "MISMATCH"

	// CodeLogicallyInvalid indicates == and != were both true or both false.
	CodeLogicallyInvalid CheckErrorCode = "LOGICALLY_INVALID"

	// CodeEqualityUndefined indicates a pair has no == to infer a relation from.
	CodeEqualityUndefined CheckErrorCode = "EQUALITY_UNDEFINED"

	// CodeUnordered indicates TriCompare input was not in non-decreasing order.
	CodeUnordered CheckErrorCode = "UNORDERED"
)

// Error implements the error interface. Location is omitted so messages
// stay stable across call sites; Reporter prints it separately.
func (e *CheckError) Error() string {
	switch e.Code {
	case CodeMismatch:
		return fmt.Sprintf("%s: %s (obj1=%v, obj2=%v, assert %s)", e.Code, e.Expr, e.Left, e.Right, e.Assertion)
	default:
		return fmt.Sprintf("%s: %s (%v, %v)", e.Code, e.Expr, e.Left, e.Right)
	}
}

// IsMismatch returns true if err is an operator/assertion disagreement.
func IsMismatch(err error) bool {
	return hasCode(err, CodeMismatch)
}

// IsLogicallyInvalid returns true if err reports inconsistent == and !=.
func IsLogicallyInvalid(err error) bool {
	return hasCode(err, CodeLogicallyInvalid)
}

// IsEqualityUndefined returns true if err reports a pair with no ==.
func IsEqualityUndefined(err error) bool {
	return hasCode(err, CodeEqualityUndefined)
}

// IsUnordered returns true if err reports descending TriCompare input.
func IsUnordered(err error) bool {
	return hasCode(err, CodeUnordered)
}

func hasCode(err error, code CheckErrorCode) bool {
	var ce *CheckError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}
