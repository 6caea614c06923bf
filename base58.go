package burnaddr

import (
	"fmt"
	"strings"

	"github.com/ModChain/base58"
)

// Alphabet is the bitcoin base58 alphabet. It excludes 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Encode returns the base58 representation of buf, read as a big-endian
// unsigned integer. Each leading zero byte is kept as a leading '1'.
func Encode(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return base58.Bitcoin.Encode(buf)
}

// Decode parses a base58 string. Each leading '1' yields a leading zero byte.
// The first character not found in [Alphabet] is reported as an
// [*AlphabetError].
func Decode(s string) ([]byte, error) {
	for i, c := range s {
		if !isBase58(c) {
			return nil, &AlphabetError{Char: c, Offset: i}
		}
	}
	if s == "" {
		return []byte{}, nil
	}

	buf, err := base58.Bitcoin.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBurnAddress, err)
	}
	return buf, nil
}

func isBase58(c rune) bool {
	return c < 0x80 && strings.IndexByte(Alphabet, byte(c)) >= 0
}
