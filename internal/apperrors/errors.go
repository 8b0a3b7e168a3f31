// Package apperrors defines the generator's error taxonomy: fatal configuration
// problems, fatal per-unit schema violations, transient I/O problems, fatal
// internal invariant violations, and post-run validation failures. Each kind
// maps to a CLI exit code.
package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the five error categories the generator can raise.
type Kind int

const (
	// KindConfig marks a fatal problem discovered before generation starts
	// (bad CLI flags, invalid transition matrix, out-of-range fleet size).
	KindConfig Kind = iota
	// KindSchema marks a fatal problem confined to one unit of work, such as
	// an assembled feature vector whose length isn't 221.
	KindSchema
	// KindIO marks a transient problem (missing sidecar file, write failure)
	// that the caller may recover from by falling back to a default.
	KindIO
	// KindLogic marks an internal invariant violation that should never
	// happen if the rest of the package is correct.
	KindLogic
	// KindValidation marks a post-run validation failure: the generated
	// output itself is well-formed but falls outside a required statistical
	// bound (e.g. class-distribution proportions).
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "ConfigError"
	case KindSchema:
		return "SchemaError"
	case KindIO:
		return "IOError"
	case KindLogic:
		return "LogicError"
	case KindValidation:
		return "ValidationError"
	default:
		return "UnknownError"
	}
}

// ExitCode returns the process exit code associated with this error kind,
// per the CLI contract (0 success, 2 config error, 3 validation failure,
// 1 any other fatal error).
func (k Kind) ExitCode() int {
	switch k {
	case KindConfig:
		return 2
	case KindValidation:
		return 3
	default:
		return 1
	}
}

// Error is a typed, wrapped error carrying a Kind and contextual fields.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Op, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap allows errors.Is/As to see through to the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

func newErr(kind Kind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, cause: cause}
}

// Config builds a fatal configuration error, stack-annotated via pkg/errors.
func Config(op, message string) error {
	return errors.WithStack(newErr(KindConfig, op, message, nil))
}

// Schema builds a fatal per-unit schema-violation error.
func Schema(op, message string) error {
	return errors.WithStack(newErr(KindSchema, op, message, nil))
}

// IO builds a transient I/O error wrapping cause.
func IO(op, message string, cause error) error {
	return errors.WithStack(newErr(KindIO, op, message, cause))
}

// Logic builds a fatal internal invariant-violation error.
func Logic(op, message string) error {
	return errors.WithStack(newErr(KindLogic, op, message, nil))
}

// Validation builds a fatal post-run validation error (exit code 3).
func Validation(op, message string) error {
	return errors.WithStack(newErr(KindValidation, op, message, nil))
}

// As reports whether err (or something it wraps) is an *Error, returning it.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// KindOf extracts the Kind of err, defaulting to KindLogic for untyped errors
// so unexpected failures still fail closed with a non-zero, non-config exit code.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindLogic
}
