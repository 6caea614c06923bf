package burnaddr

import (
	"errors"
	"fmt"
)

var (
	// ErrBurnAddress is the base error for everything returned by this package.
	ErrBurnAddress = errors.New("burn address error")

	// ErrInvalidFormat is returned by [Verify] when the payload or checksum bytes are missing.
	ErrInvalidFormat = fmt.Errorf("%w: payload and/or checksum bytes missing", ErrBurnAddress)

	// ErrChecksum is returned by [Verify] when the trailing bytes do not match the payload.
	ErrChecksum = fmt.Errorf("%w: bad checksum", ErrBurnAddress)
)

// AlphabetError is returned when a character outside of [Alphabet] is found in
// a template or encoded string.
type AlphabetError struct {
	Char   rune // offending character
	Offset int  // byte offset in the input
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("character '%c' is not valid base58", e.Char)
}

func (e *AlphabetError) Unwrap() error {
	return ErrBurnAddress
}
