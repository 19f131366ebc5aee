package esp

import "net"

// Endpoint is a source or destination address/port pair. It is opaque to
// the pipelines — they carry it through but never inspect it.
type Endpoint struct {
	IP   net.IP
	Port uint16
}

// Packet is the exclusive-ownership container the pipelines mutate. A
// packet constructed from received bytes (decrypt path) carries raw
// ciphertext and, once decrypted successfully, a decoded inner packet and
// next-header byte. A packet constructed from an inner packet (encrypt
// path) starts with an empty raw buffer that Encrypt populates.
//
// The pipeline that consumes a Packet does not retain aliases into its
// internal slices after returning; callers that need the bytes afterward
// must read them from the Packet itself.
type Packet struct {
	Source      Endpoint
	Destination Endpoint

	raw []byte

	inner      InnerPacket
	nextHeader byte
	hasInner   bool
}

// NewPacketFromBytes constructs a Packet for the decrypt path from a
// received datagram.
func NewPacketFromBytes(src, dst Endpoint, raw []byte) *Packet {
	return &Packet{Source: src, Destination: dst, raw: raw}
}

// NewPacketFromInner constructs a Packet for the encrypt path. Raw starts
// empty; Encrypt populates it.
func NewPacketFromInner(src, dst Endpoint, inner InnerPacket, nextHeader byte) *Packet {
	return &Packet{
		Source:      src,
		Destination: dst,
		inner:       inner,
		nextHeader:  nextHeader,
		hasInner:    true,
	}
}

// Raw returns the packet's current byte buffer: ciphertext datagram bytes
// before decrypt, or the completed datagram after a successful encrypt.
func (p *Packet) Raw() []byte { return p.raw }

// SetRaw replaces the packet's byte buffer.
func (p *Packet) SetRaw(raw []byte) { p.raw = raw }

// SkipPrefix drops the first n bytes of the raw buffer, for callers that
// received a packet with leading transport framing already stripped by a
// collaborator but still present in the slice.
func (p *Packet) SkipPrefix(n int) {
	if n <= 0 || n > len(p.raw) {
		return
	}
	p.raw = p.raw[n:]
}

// GetNextHeader returns the next-header byte. Only valid after a
// successful Decrypt or when constructed via NewPacketFromInner.
func (p *Packet) GetNextHeader() byte { return p.nextHeader }

// GetPayload returns the decoded inner packet, or nil if none has been
// decoded yet (e.g. a freshly received, not-yet-decrypted packet).
func (p *Packet) GetPayload() InnerPacket {
	if !p.hasInner {
		return nil
	}
	return p.inner
}

// ExtractPayload transfers ownership of the decoded inner packet to the
// caller, leaving this Packet pointing at none.
func (p *Packet) ExtractPayload() InnerPacket {
	inner := p.inner
	p.inner = nil
	p.hasInner = false
	return inner
}

// setPayload is used internally by Decrypt once the inner packet has been
// parsed.
func (p *Packet) setPayload(inner InnerPacket, nextHeader byte) {
	p.inner = inner
	p.nextHeader = nextHeader
	p.hasInner = true
}

// Clone returns a deep copy of the packet, including its inner payload if
// present.
func (p *Packet) Clone() *Packet {
	clone := &Packet{
		Source:      p.Source,
		Destination: p.Destination,
		nextHeader:  p.nextHeader,
		hasInner:    p.hasInner,
	}
	if p.raw != nil {
		clone.raw = make([]byte, len(p.raw))
		copy(clone.raw, p.raw)
	}
	if p.hasInner && p.inner != nil {
		clone.inner = p.inner.Clone()
	}
	return clone
}

// Destroy wipes any buffer that may still hold plaintext and releases the
// packet's references. Callers that abandon an in-flight packet must call
// this rather than simply dropping it, so transient plaintext does not
// linger in memory the garbage collector has not yet reclaimed.
func (p *Packet) Destroy() {
	wipe(p.raw)
	if p.inner != nil {
		wipe(p.inner.Encoding())
	}
	p.raw = nil
	p.inner = nil
	p.hasInner = false
}
