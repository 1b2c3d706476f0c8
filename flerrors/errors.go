// Package flerrors provides structured error types for flist.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ConfigError: Invalid configuration or input options
//   - PatternError: Name-pattern compilation failures (detected before traversal)
//   - WalkError: Fatal traversal failures (unreadable root, enumeration errors)
//   - LimitError: The configured maximum list size was reached (partial success)
//   - OverflowError: A merge would exceed the maximum addressable count
//
// # Usage with errors.Is
//
//	list, err := lister.ListWithOptions(lister.WithStartDir("/srv/data"))
//	if errors.Is(err, flerrors.ErrSizeLimit) {
//	    // list is valid but incomplete
//	}
package flerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrPattern indicates a name-pattern compilation failure.
	ErrPattern = errors.New("pattern error")

	// ErrWalk indicates a fatal traversal failure.
	ErrWalk = errors.New("walk error")

	// ErrSizeLimit indicates the maximum list size was reached.
	// The list returned alongside this error is valid but incomplete.
	ErrSizeLimit = errors.New("list size limit reached")

	// ErrOverflow indicates a merge count would overflow.
	ErrOverflow = errors.New("merge count overflow")
)

// ConfigError represents an invalid option or input value.
type ConfigError struct {
	// Option is the option or parameter name, if known
	Option string
	// Message describes what is invalid
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += ": " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// PatternError represents a failure to compile the name pattern.
// Pattern compilation happens before any traversal begins, so a
// PatternError guarantees no filesystem access took place.
type PatternError struct {
	// Pattern is the pattern text that failed to compile
	Pattern string
	// Dialect is the pattern dialect in effect: "basic" or "extended"
	Dialect string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := "pattern error"
	if e.Pattern != "" {
		msg += fmt.Sprintf(": %q", e.Pattern)
	}
	if e.Dialect != "" {
		msg += " (" + e.Dialect + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

// WalkError represents a fatal traversal failure. Per-entry failures
// (a vanished file, a dangling symlink, a permission-denied directory)
// are recoverable and never produce a WalkError; they are skipped and
// logged instead.
type WalkError struct {
	// Path is the filesystem path the operation failed on
	Path string
	// Op is the failing operation: "open", "stat", or "clean"
	Op string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WalkError) Error() string {
	msg := "walk error"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" %q", e.Path)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WalkError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WalkError) Is(target error) bool {
	return target == ErrWalk
}

// LimitError reports that the configured maximum list size was reached.
// It marks a partial success: the list built so far is valid and is
// returned to the caller, but at least one entry is missing.
type LimitError struct {
	// Limit is the configured maximum number of list entries
	Limit int
}

// Error returns a human-readable error message.
func (e *LimitError) Error() string {
	return fmt.Sprintf("list size limit reached: %d entries", e.Limit)
}

// Is reports whether target matches this error type.
func (e *LimitError) Is(target error) bool {
	return target == ErrSizeLimit
}

// OverflowError reports that combining two lists would exceed the
// maximum addressable count. The destination list is left unmodified.
type OverflowError struct {
	// DestCount is the destination list's entry count
	DestCount int
	// SourceCount is the source list's entry count
	SourceCount int
}

// Error returns a human-readable error message.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("merge count overflow: %d + %d entries", e.DestCount, e.SourceCount)
}

// Is reports whether target matches this error type.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}
