package esp

// Encryptor is the capability contract for the block cipher an SA was
// negotiated with. Implementations must support in-place encryption over a
// caller-managed buffer; the ESP pipelines never allocate a second buffer
// for ciphertext.
type Encryptor interface {
	// BlockSize returns the cipher's block size in bytes. The plaintext
	// tail is padded so ciphertext length is always a multiple of this.
	BlockSize() int
	// IVSize returns the per-packet IV length in bytes.
	IVSize() int
	// Encrypt encrypts buf in place using iv. len(buf) must be a multiple
	// of BlockSize.
	Encrypt(buf, iv []byte) error
	// Decrypt decrypts src (using iv) into dst. len(src) must equal
	// len(dst) and be a multiple of BlockSize.
	Decrypt(dst, src, iv []byte) error
}

// MAC is the capability contract for the integrity primitive an SA was
// negotiated with.
type MAC interface {
	// ICVSize returns the output length of Sign/Verify in bytes.
	ICVSize() int
	// Sign computes the MAC over the logical concatenation of parts and
	// writes it to out, which must have length ICVSize().
	Sign(parts [][]byte, out []byte) error
	// Verify checks icv against the MAC over the logical concatenation of
	// parts, in constant time with respect to where the two values first
	// differ. Returns a non-nil error on mismatch; Decrypt reports any
	// Verify error as ErrFailed.
	Verify(parts [][]byte, icv []byte) error
}

// RNG is the capability contract for the random byte source used to fill
// IVs on encrypt.
type RNG interface {
	// Fill writes len(buf) random bytes into buf.
	Fill(buf []byte) error
}

// InnerPacket is the capability contract for the plaintext payload carried
// inside an ESP datagram. This package treats it opaquely beyond version
// sniffing; no route or policy decision is made from it.
type InnerPacket interface {
	// Encoding returns the packet's wire bytes.
	Encoding() []byte
	// Version returns 4 or 6.
	Version() int
	// Clone returns a deep copy.
	Clone() InnerPacket
}
