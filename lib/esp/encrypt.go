package esp

// Encrypt runs the full encrypt pipeline against pkt, which must have
// been constructed with NewPacketFromInner. On success pkt's raw bytes
// are replaced with the complete ESP datagram and Encrypt returns nil.
// On any failure, every scratch buffer that held plaintext is wiped
// before Encrypt returns an error.
func Encrypt(sa *SA, pkt *Packet) error {
	inner := pkt.GetPayload()
	if inner == nil {
		return WrapEncryptError(ErrParse, "no-inner-packet")
	}

	seq, err := sa.Window.NextSeqno()
	if err != nil {
		return err
	}

	blockSize := sa.Encryptor.BlockSize()
	ivLen := sa.Encryptor.IVSize()
	icvLen := sa.MAC.ICVSize()

	payload := inner.Encoding()
	tail := EncodeTail(payload, blockSize, pkt.GetNextHeader())
	defer wipe(tail)
	plaintextLen := len(tail)

	datagramLen := HeaderLen + ivLen + plaintextLen + icvLen
	buf := sa.acquireBuffer(datagramLen)

	WriteHeader(buf, sa.SPI, seq)

	iv := buf[HeaderLen : HeaderLen+ivLen]
	if err := sa.RNG.Fill(iv); err != nil {
		wipe(buf)
		sa.releaseBuffer(buf)
		return WrapEncryptError(ErrFailed, "rng-fill-iv")
	}

	ciphertext := buf[HeaderLen+ivLen : HeaderLen+ivLen+plaintextLen]
	copy(ciphertext, tail)

	if err := sa.Encryptor.Encrypt(ciphertext, iv); err != nil {
		wipe(buf)
		sa.releaseBuffer(buf)
		return WrapEncryptError(ErrFailed, "encrypt")
	}

	icv := buf[HeaderLen+ivLen+plaintextLen:]
	signedRegion := buf[:HeaderLen+ivLen+plaintextLen]
	if err := sa.MAC.Sign([][]byte{signedRegion}, icv); err != nil {
		wipe(buf)
		sa.releaseBuffer(buf)
		return WrapEncryptError(ErrFailed, "mac-sign")
	}

	pkt.SetRaw(buf)
	log.WithField("spi", sa.SPI).WithField("seq", seq).WithField("len", datagramLen).
		Debug("esp: encrypted datagram")
	return nil
}

// acquireBuffer draws a datagramLen-sized buffer from the SA's configured
// pool if present, else allocates one fresh.
func (sa *SA) acquireBuffer(datagramLen int) []byte {
	if sa.Config.BufferPool == nil {
		return make([]byte, datagramLen)
	}
	v := sa.Config.BufferPool.Get()
	if v == nil {
		return make([]byte, datagramLen)
	}
	buf := v.([]byte)
	if cap(buf) < datagramLen {
		return make([]byte, datagramLen)
	}
	return buf[:datagramLen]
}

// releaseBuffer returns buf to the SA's configured pool, if any. Callers
// must wipe buf before calling this on a failure path.
func (sa *SA) releaseBuffer(buf []byte) {
	if sa.Config.BufferPool == nil {
		return
	}
	sa.Config.BufferPool.Put(buf)
}
