package atlasio

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode matches any *DecodeError via errors.Is.
	ErrDecode = errors.New("decode failure")
	// ErrEncode matches any *EncodeError via errors.Is.
	ErrEncode = errors.New("encode failure")
)

// DecodeError reports an input that could not be read or parsed.
type DecodeError struct {
	Source string // path, or "<memory>" for byte input
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("atlasio: decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// EncodeError reports an atlas that could not be serialized or written.
type EncodeError struct {
	Dest string // path, or "<memory>" for byte output
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("atlasio: encode %s: %v", e.Dest, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

const memory = "<memory>"
