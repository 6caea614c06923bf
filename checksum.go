package burnaddr

import (
	"crypto/sha256"

	"github.com/KarpelesLab/cryptutil"
)

// ChecksumLength is the number of hash bytes appended to a base58Check payload.
const ChecksumLength = 4

// Checksum returns the first [ChecksumLength] bytes of SHA256(SHA256(payload)).
func Checksum(payload []byte) []byte {
	h := cryptutil.Hash(payload, sha256.New, sha256.New)
	return h[:ChecksumLength]
}
