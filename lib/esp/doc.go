// Package esp implements the ESP (Encapsulating Security Payload) datagram
// engine: encrypt-then-MAC transformation of an inner IP packet into an
// RFC 4303 ESP datagram, its inverse on ingress, and the per-SA anti-replay
// window that guards decrypt.
//
// # Scope
//
// This package does not negotiate security associations, derive keys,
// perform socket I/O, or make tunnel/transport-mode routing decisions. It
// consumes a paired encryptor/MAC primitive handle and a random byte source
// through the capability interfaces in primitives.go, keeps its sequence
// cursor in the anti-replay Window (window.go), and a caller is responsible for supplying concrete
// implementations (see the sibling espcrypto package) already bound to
// negotiated keys.
//
// # Pipeline ordering
//
// Encrypt: allocate datagram buffer -> write header -> fill IV from RNG ->
// write plaintext tail -> encrypt in place -> MAC header||IV||ciphertext ->
// append ICV.
//
// Decrypt: parse header -> check layout -> anti-replay pre-check -> verify
// MAC (constant-time) -> decrypt -> strip padding -> decode inner packet ->
// commit sequence number. The pre-check/commit split around MAC
// verification is load-bearing: a forged packet must not be able to shift
// the window, and a valid replayed packet must be rejected before any key
// material is exercised.
package esp
