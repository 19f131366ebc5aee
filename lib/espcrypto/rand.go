package espcrypto

import (
	"github.com/go-i2p/crypto/rand"
)

// CSPRNG implements esp.RNG by delegating to github.com/go-i2p/crypto/rand
// in preference to reaching for crypto/rand directly.
type CSPRNG struct{}

// NewCSPRNG returns a CSPRNG.
func NewCSPRNG() CSPRNG { return CSPRNG{} }

// Fill writes len(buf) random bytes into buf.
func (CSPRNG) Fill(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
