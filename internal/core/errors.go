package core

import (
	"errors"
	"fmt"

	"github.com/EmundoT/deployfix/internal/types"
)

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrPathNotFound indicates the project root does not exist
	ErrPathNotFound = errors.New("project path does not exist")

	// ErrNotDirectory indicates the project root is a file
	ErrNotDirectory = errors.New("project path is not a directory")

	// ErrVerificationTimeout indicates the verification build exceeded its deadline
	ErrVerificationTimeout = errors.New("build timed out")

	// ErrAborted indicates the user declined to apply fixes
	ErrAborted = errors.New("remediation aborted by user")
)

// ErrorKind classifies errors for exit codes and JSON error codes.
type ErrorKind int

// ErrorKind constants.
const (
	KindUnknown ErrorKind = iota
	KindPathNotFound
	KindIO
	KindParse
	KindWriteFailed
	KindVerificationTimeout
	KindVerificationFailed
	KindAborted
)

// PathNotFoundError reports a missing or unusable project root.
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("project path does not exist: %s", e.Path)
}

// Unwrap returns ErrPathNotFound so errors.Is works against the sentinel.
func (e *PathNotFoundError) Unwrap() error { return ErrPathNotFound }

// NewPathNotFoundError creates a PathNotFoundError.
func NewPathNotFoundError(path string, err error) *PathNotFoundError {
	return &PathNotFoundError{Path: path, Err: err}
}

// IOError reports an unreadable project root.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a manifest or config file that is not valid structured data.
// The inspector degrades it to an issue; the remediator returns it.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a ParseError.
func NewParseError(file string, err error) *ParseError {
	return &ParseError{File: file, Err: err}
}

// WriteFailedError reports a failed remediation write for one category.
type WriteFailedError struct {
	Category types.FixCategory
	Path     string
	Err      error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("%s fix failed writing %s: %v", e.Category, e.Path, e.Err)
}

func (e *WriteFailedError) Unwrap() error { return e.Err }

// NewWriteFailedError creates a WriteFailedError.
func NewWriteFailedError(category types.FixCategory, path string, err error) *WriteFailedError {
	return &WriteFailedError{Category: category, Path: path, Err: err}
}

// VerificationError reports a failed or timed-out verification build.
type VerificationError struct {
	Timeout bool
	Message string
}

func (e *VerificationError) Error() string {
	return e.Message
}

// Unwrap exposes ErrVerificationTimeout for timeouts.
func (e *VerificationError) Unwrap() error {
	if e.Timeout {
		return ErrVerificationTimeout
	}
	return nil
}

// IsPathNotFound checks if err is (or wraps) a PathNotFoundError.
func IsPathNotFound(err error) bool {
	var target *PathNotFoundError
	return errors.As(err, &target) || errors.Is(err, ErrPathNotFound)
}

// IsIOError checks if err is (or wraps) an IOError.
func IsIOError(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}

// IsParseError checks if err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsWriteFailed checks if err is (or wraps) a WriteFailedError.
func IsWriteFailed(err error) bool {
	var target *WriteFailedError
	return errors.As(err, &target)
}

// IsVerificationError checks if err is (or wraps) a VerificationError.
func IsVerificationError(err error) bool {
	var target *VerificationError
	return errors.As(err, &target)
}

// KindOf classifies err. Nil maps to KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrAborted):
		return KindAborted
	case IsPathNotFound(err):
		return KindPathNotFound
	case IsWriteFailed(err):
		return KindWriteFailed
	case IsParseError(err):
		return KindParse
	case IsVerificationError(err):
		if errors.Is(err, ErrVerificationTimeout) {
			return KindVerificationTimeout
		}
		return KindVerificationFailed
	case IsIOError(err):
		return KindIO
	default:
		return KindUnknown
	}
}
