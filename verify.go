package burnaddr

import "crypto/subtle"

// Verify checks that address is a base58Check string: a non empty payload
// followed by its [Checksum].
func Verify(address string) error {
	buf, err := Decode(address)
	if err != nil {
		return err
	}
	if len(buf) <= ChecksumLength {
		return ErrInvalidFormat
	}

	chk := buf[len(buf)-ChecksumLength:]
	buf = buf[:len(buf)-ChecksumLength]
	if subtle.ConstantTimeCompare(Checksum(buf), chk) != 1 {
		return ErrChecksum
	}
	return nil
}
