package sprites

import (
	"fmt"
)

// Kind classifies why a run failed. Kinds are errors themselves, so
// errors.Is(err, IOFailure) reports whether err is an I/O failure.
type Kind int

const (
	// MissingDependency means the requested image encoding is not
	// available in this binary.
	MissingDependency Kind = iota + 1
	// IOFailure means a directory or file could not be created or written.
	IOFailure
)

func (k Kind) Error() string {
	switch k {
	case MissingDependency:
		return "missing dependency"
	case IOFailure:
		return "i/o failure"
	}
	return fmt.Sprintf("sprites.Kind(%d)", int(k))
}

// Error is returned by Generator operations.
type Error struct {
	Kind Kind
	// Path is the file or directory involved, if any.
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the error against its Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}
