package esp

// NewInnerPacket is supplied by a caller (e.g. the ipwire package) so this
// package stays ignorant of any concrete inner-packet representation; it
// is called with the decoded payload bytes and must validate the first
// nibble as 4 or 6, returning a non-nil error otherwise (Decrypt reports
// it as ErrParse).
type NewInnerPacket func(payload []byte) (InnerPacket, error)

// Decrypt runs the full decrypt pipeline against pkt, which must have
// been constructed with NewPacketFromBytes. On
// success pkt's payload and next-header are populated via setPayload and
// the sequence number is committed into sa.Window. On any failure, all
// intermediate plaintext/IV scratch is wiped before Decrypt returns.
//
// Parsing and verification proceed in strict order; a failure at any step
// aborts the remaining steps without touching the anti-replay window
// beyond the read-only Check in step 4.
func Decrypt(sa *SA, pkt *Packet, parseInner NewInnerPacket) error {
	raw := pkt.Raw()

	// Step 1: parse header.
	// SPI selection already happened before Decrypt was called — a
	// collaborator picked sa by parsedSPI — so it is used here only for
	// the diagnostic log below, not for behavior.
	parsedSPI, seq, err := ReadHeader(raw)
	if err != nil {
		return WrapDecryptError(ErrParse, "header")
	}

	// Step 2: validate layout.
	blockSize := sa.Encryptor.BlockSize()
	ivLen := sa.Encryptor.IVSize()
	icvLen := sa.MAC.ICVSize()

	datagramLen := len(raw)
	minLen := HeaderLen + ivLen + icvLen + blockSize
	if datagramLen < minLen {
		return WrapDecryptError(ErrParse, "layout:too-short")
	}
	ciphertextLen := datagramLen - HeaderLen - ivLen - icvLen
	if ciphertextLen%blockSize != 0 {
		return WrapDecryptError(ErrParse, "layout:unaligned")
	}

	// Step 3: split slices. header is implicit in signedRegion below
	// (raw[0:datagramLen-icvLen] = header || iv || ciphertext).
	iv := raw[HeaderLen : HeaderLen+ivLen]
	ciphertext := raw[HeaderLen+ivLen : datagramLen-icvLen]
	icv := raw[datagramLen-icvLen:]

	// Step 4: anti-replay pre-check. Nothing else is touched on failure.
	if !sa.Window.Check(seq) {
		log.WithField("spi", sa.SPI).WithField("seq", seq).
			Debug("esp: anti-replay check rejected sequence number")
		return WrapDecryptError(ErrVerify, "anti-replay-check")
	}

	// Step 5: MAC verification. sa.MAC.Verify is contractually
	// constant-time with respect to where icv first diverges from the
	// recomputed value.
	signedRegion := raw[0 : datagramLen-icvLen]
	if err := sa.MAC.Verify([][]byte{signedRegion}, icv); err != nil {
		return WrapDecryptError(ErrFailed, "mac-verify")
	}

	// Step 6: decrypt.
	plaintext := sa.acquireBuffer(ciphertextLen)
	if err := sa.Encryptor.Decrypt(plaintext, ciphertext, iv); err != nil {
		wipe(plaintext)
		sa.releaseBuffer(plaintext)
		return WrapDecryptError(ErrFailed, "decrypt")
	}

	// Step 7: strip and validate padding. DecodeTail wipes plaintext
	// itself on every path, including success.
	payload, nextHeader, err := DecodeTail(plaintext)
	sa.releaseBuffer(plaintext)
	if err != nil {
		return err
	}

	// Step 8: decode inner IP packet.
	inner, err := parseInner(payload)
	wipe(payload)
	if err != nil {
		return WrapDecryptError(ErrParse, "inner-packet-version")
	}

	// Step 9: commit. Only reached once every prior step has succeeded.
	sa.Window.Commit(seq)
	pkt.setPayload(inner, nextHeader)

	log.WithField("spi", parsedSPI).WithField("seq", seq).
		Debug("esp: decrypted and committed datagram")
	return nil
}
