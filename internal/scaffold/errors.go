package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a project name is empty or contains
	// characters outside [a-z0-9-].
	ErrInvalidName = errors.New("invalid project name")

	// ErrTargetExists is returned when the target directory already exists.
	// Nothing is written in that case.
	ErrTargetExists = errors.New("target directory already exists")
)

// ErrorKind classifies scaffolding failures.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidInput
	KindConflict
	KindCopy
	KindRewrite
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindConflict:
		return "conflict"
	case KindCopy:
		return "copy"
	case KindRewrite:
		return "rewrite"
	default:
		return "unknown"
	}
}

// CopyError reports an I/O failure while duplicating the template tree.
// The target directory may be partially populated.
type CopyError struct {
	Path string // path relative to the template root
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// RewriteWarning reports a failure to personalize a single file.
type RewriteWarning struct {
	Path string // path relative to the target root
	Err  error
}

func (w RewriteWarning) Error() string {
	return fmt.Sprintf("could not update %s: %v", w.Path, w.Err)
}

func (w RewriteWarning) Unwrap() error { return w.Err }

// KindOf returns the taxonomy entry for err.
func KindOf(err error) ErrorKind {
	var copyErr *CopyError
	var rewriteErr RewriteWarning

	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidName):
		return KindInvalidInput
	case errors.Is(err, ErrTargetExists):
		return KindConflict
	case errors.As(err, &copyErr):
		return KindCopy
	case errors.As(err, &rewriteErr):
		return KindRewrite
	default:
		return KindUnknown
	}
}

// warningsError joins rewrite warnings into the error returned in strict mode.
func warningsError(warnings []RewriteWarning) error {
	errs := make([]error, len(warnings))
	for i, w := range warnings {
		errs[i] = w
	}
	return fmt.Errorf("%d file(s) could not be updated: %w", len(warnings), errors.Join(errs...))
}
