package blackbg

import (
	"errors"
	"fmt"
	"io/fs"
)

// UsageError reports a malformed command line.
type UsageError struct {
	Args int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 2 arguments, got %d", e.Args)
}

// DecodeError reports that an input could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	var pathErr *fs.PathError
	if e.Path == "" || errors.As(e.Err, &pathErr) {
		return fmt.Sprintf("decode image: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that an output could not be encoded or written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	var pathErr *fs.PathError
	if e.Path == "" || errors.As(e.Err, &pathErr) {
		return fmt.Sprintf("encode image: %v", e.Err)
	}
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
