package esp

import (
	"github.com/samber/oops"
)

// Sentinel errors for the taxonomy of pipeline failures. Callers branch on
// these with errors.Is; the Wrap helpers below add the failing stage name
// to the message and attach no SPI, sequence number, key or plaintext
// material.
var (
	// ErrParse covers malformed headers, impossible lengths, bad padding,
	// and unrecognised inner IP versions.
	ErrParse = oops.New("esp: parse error")
	// ErrVerify covers a sequence number outside the acceptable window or
	// previously seen.
	ErrVerify = oops.New("esp: anti-replay verification failed")
	// ErrFailed covers MAC mismatch, encryptor/decryptor/RNG primitive
	// failure, or a cycled sequence cursor. sa.RNG is always a resolved,
	// non-nil handle by the time Encrypt runs, so an RNG.Fill error here
	// is a primitive failure, not a missing collaborator.
	ErrFailed = oops.New("esp: operation failed")
	// ErrNotFound is reserved for a caller unable to resolve an SA's RNG
	// collaborator at all, reported distinctly so it can retry rather than
	// tear down the SA. This package never produces it itself: by the time
	// Encrypt runs, sa.RNG has already been resolved by the caller.
	ErrNotFound = oops.New("esp: required resource not found")
)

// WrapEncryptError adds the failing encrypt stage as context without
// leaking packet contents.
func WrapEncryptError(err error, stage string) error {
	return oops.Wrapf(err, "esp encrypt failed at stage %s", stage)
}

// WrapDecryptError adds the failing decrypt stage as context without
// leaking packet contents.
func WrapDecryptError(err error, stage string) error {
	return oops.Wrapf(err, "esp decrypt failed at stage %s", stage)
}
