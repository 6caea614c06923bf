package burnaddr

import (
	"slices"
	"strings"
)

const (
	// TemplateLength is the length of a normalized template, which is also
	// the length of a standard base58Check address.
	TemplateLength = 34

	// Filler pads templates shorter than TemplateLength.
	Filler = 'X'

	// TestTemplate is used by the command when asked for "test".
	TestTemplate = "SinBurnAddressForPubContentXXXXXXX"
)

// NormalizeTemplate checks that every character of raw belongs to [Alphabet]
// and returns it padded with [Filler] or truncated to [TemplateLength].
func NormalizeTemplate(raw string) (string, error) {
	for i, c := range raw {
		if !isBase58(c) {
			return "", &AlphabetError{Char: c, Offset: i}
		}
	}

	// raw is ascii from here on, so bytes and characters match
	if len(raw) < TemplateLength {
		return raw + strings.Repeat(string(Filler), TemplateLength-len(raw)), nil
	}
	return raw[:TemplateLength], nil
}

// Burn decodes template, replaces its trailing checksum bytes with a freshly
// computed checksum and returns the encoded result. The template's own last
// [ChecksumLength] bytes are discarded without being checked.
func Burn(template string) (string, error) {
	buf, err := Decode(template)
	if err != nil {
		return "", err
	}

	payload := buf[:max(len(buf)-ChecksumLength, 0)]
	return Encode(slices.Concat(payload, Checksum(payload))), nil
}

// New normalizes raw and returns the matching burn address.
func New(raw string) (string, error) {
	template, err := NormalizeTemplate(raw)
	if err != nil {
		return "", err
	}
	return Burn(template)
}
