package espcrypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"hash"

	"github.com/samber/oops"
)

// HMACMAC implements esp.MAC using HMAC truncated to icvSize bytes. Its
// only constructor, NewHMACSHA256, fixes the hash to SHA-256; callers
// cannot select another hash. ICV sizes of 12 or 16 bytes are
// a truncation of a wider HMAC output, matching how RFC 4868 defines
// HMAC-SHA-256-128 for ESP.
//
// Verify uses crypto/subtle.ConstantTimeCompare so that ICV mismatch
// timing does not leak the position of the first differing byte.
type HMACMAC struct {
	key     []byte
	newHash func() hash.Hash
	icvSize int
}

// NewHMACSHA256 returns an HMACMAC using HMAC-SHA-256 truncated to
// icvSize bytes (icvSize must be between 1 and sha256.Size).
func NewHMACSHA256(key []byte, icvSize int) (*HMACMAC, error) {
	if icvSize <= 0 || icvSize > sha256.Size {
		return nil, oops.Errorf("espcrypto: icv size %d out of range for HMAC-SHA-256", icvSize)
	}
	return &HMACMAC{key: key, newHash: sha256.New, icvSize: icvSize}, nil
}

// ICVSize returns the configured truncated MAC output length.
func (m *HMACMAC) ICVSize() int { return m.icvSize }

// Sign computes the truncated HMAC over the logical concatenation of
// parts and writes it to out.
func (m *HMACMAC) Sign(parts [][]byte, out []byte) error {
	if len(out) != m.icvSize {
		return oops.Errorf("espcrypto: sign output length %d != icv size %d", len(out), m.icvSize)
	}
	mac := hmac.New(m.newHash, m.key)
	for _, p := range parts {
		mac.Write(p)
	}
	full := mac.Sum(nil)
	copy(out, full[:m.icvSize])
	return nil
}

// Verify recomputes the MAC over parts and compares it to icv in constant
// time.
func (m *HMACMAC) Verify(parts [][]byte, icv []byte) error {
	if len(icv) != m.icvSize {
		return oops.Errorf("espcrypto: icv length %d != expected %d", len(icv), m.icvSize)
	}
	expected := make([]byte, m.icvSize)
	if err := m.Sign(parts, expected); err != nil {
		return err
	}
	ok := subtle.ConstantTimeCompare(expected, icv) == 1
	for i := range expected {
		expected[i] = 0
	}
	if !ok {
		return oops.Errorf("espcrypto: MAC verification failed")
	}
	return nil
}
