package burnaddr_test

import (
	"errors"
	"testing"

	"github.com/ModChain/burnaddr"
)

func TestVerify(t *testing.T) {
	for _, addr := range []string{
		"SinBurnAddressForPubContentXdQgg4S",
		"1C2yfT2NNAPPHBqXQxxBPvguht2whJWRSi",
		"16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM",
	} {
		if err := burnaddr.Verify(addr); err != nil {
			t.Errorf("failed to verify %s: %s", addr, err)
		}
	}
}

func TestVerifyBadChecksum(t *testing.T) {
	// the template itself does not carry a valid checksum
	if err := burnaddr.Verify(burnaddr.TestTemplate); !errors.Is(err, burnaddr.ErrChecksum) {
		t.Errorf("expected ErrChecksum, got %v", err)
	}

	addr := []byte(must(burnaddr.New("Sin")))
	for i := range addr {
		orig := addr[i]
		if orig == 'z' {
			addr[i] = 'y'
		} else {
			addr[i] = 'z'
		}
		if err := burnaddr.Verify(string(addr)); err == nil {
			t.Errorf("altered address %s passed verification", addr)
		}
		addr[i] = orig
	}
}

func TestVerifyInvalidFormat(t *testing.T) {
	for _, addr := range []string{"", "1", "3QJmnh"} {
		if err := burnaddr.Verify(addr); !errors.Is(err, burnaddr.ErrInvalidFormat) {
			t.Errorf("Verify(%q): expected ErrInvalidFormat, got %v", addr, err)
		}
	}

	var alphaErr *burnaddr.AlphabetError
	if err := burnaddr.Verify("0OIl"); !errors.As(err, &alphaErr) {
		t.Errorf("expected AlphabetError, got %v", err)
	}
}
