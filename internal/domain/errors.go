package domain

import "fmt"

// FileNotFoundError is returned when an input list is missing or unreadable
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("input file %s: cannot be read: %v", e.Path, e.Err)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// MalformedInputError is returned when a row of an input list cannot be parsed.
// Line is 1-based.
type MalformedInputError struct {
	Path string
	Line int
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("input file %s, line %d: %v", e.Path, e.Line, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// OutputWriteError is returned when an output path cannot be created or written
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("output %s: cannot be written: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// UnsupportedArityError is returned for set counts outside 1..3, or for
// operations that need 2 or 3 sets when given fewer
type UnsupportedArityError struct {
	Arity int
	// Want describes the accepted range, e.g. "1-3" or "2-3"
	Want string
}

func (e *UnsupportedArityError) Error() string {
	want := e.Want
	if want == "" {
		want = fmt.Sprintf("%d-%d", MinArity, MaxArity)
	}
	return fmt.Sprintf("unsupported number of lists: %d (supported: %s)", e.Arity, want)
}
