// Package datastructure holds what the range-query packages of this module
// share: the kinds of error they report.
package datastructure

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrOutOfRange indicates an index or a range that does not lie within
	// the bounds of the structure.  Bounds are never silently clamped.
	ErrOutOfRange ErrorCode = iota

	// ErrInvariantViolation indicates that an internal structural invariant
	// does not hold.  It signals a programming error and is raised by panic
	// rather than returned, except from explicit validation helpers.
	ErrInvariantViolation

	// ErrLengthMismatch indicates that the values assigned to an extended
	// slice do not match the number of positions the slice selects.
	ErrLengthMismatch

	// ErrInvalidStep indicates a slice step that is zero or negative.
	ErrInvalidStep

	// ErrEmptyRange indicates a query over an empty range on a structure
	// that has no identity element to return for it.
	ErrEmptyRange

	// ErrInvalidSize indicates a negative structure size.
	ErrInvalidSize

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrOutOfRange:         "ErrOutOfRange",
	ErrInvariantViolation: "ErrInvariantViolation",
	ErrLengthMismatch:     "ErrLengthMismatch",
	ErrInvalidStep:        "ErrInvalidStep",
	ErrEmptyRange:         "ErrEmptyRange",
	ErrInvalidSize:        "ErrInvalidSize",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error satisfies the error interface so that an ErrorCode can be used as a
// target for errors.Is.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error identifies a misuse of one of the structures in this module.  The
// caller can use errors.Is against an ErrorCode, or errors.As to reach the
// Description.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is reports whether target is the ErrorCode of e, or an Error carrying the
// same ErrorCode.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.ErrorCode == t
	case Error:
		return e.ErrorCode == t.ErrorCode
	}
	return false
}

// MakeError creates an Error given a set of arguments.
func MakeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// CheckIndex returns an ErrOutOfRange error unless 0 <= i < n.
func CheckIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		str := fmt.Sprintf("%s: index %d out of range [0, %d)", op, i, n)
		return MakeError(ErrOutOfRange, str)
	}
	return nil
}

// CheckRange returns an ErrOutOfRange error unless 0 <= start <= end <= n.
func CheckRange(op string, start, end, n int) error {
	if start < 0 || end > n || start > end {
		str := fmt.Sprintf("%s: range [%d, %d) out of bounds [0, %d]",
			op, start, end, n)
		return MakeError(ErrOutOfRange, str)
	}
	return nil
}

// CheckSize returns an ErrInvalidSize error if n is negative.
func CheckSize(op string, n int) error {
	if n < 0 {
		str := fmt.Sprintf("%s: negative size %d", op, n)
		return MakeError(ErrInvalidSize, str)
	}
	return nil
}
