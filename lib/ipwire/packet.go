// Package ipwire provides a minimal inner-IP packet container satisfying
// the esp.InnerPacket capability contract. It sniffs the IP version from
// the first nibble rather than doing a full structural parse, which is
// exactly what the ESP decrypt pipeline needs (RFC 4303 §4.4 step 8:
// recognise IPv4 vs IPv6, nothing more). Route and policy decisions on the
// decoded packet remain a collaborator's responsibility.
package ipwire

import (
	"github.com/go-i2p/go-esp/lib/esp"
	"github.com/samber/oops"
)

// ErrUnrecognisedVersion is returned when the first nibble of a packet is
// neither 4 nor 6.
var ErrUnrecognisedVersion = oops.New("ipwire: unrecognised IP version")

// Packet is a byte-exact inner IP packet: it owns a private copy of the
// wire bytes and reports the version sniffed from the first nibble.
type Packet struct {
	version int
	bytes   []byte
}

// New validates that data's first nibble is 4 or 6 and returns a Packet
// holding a private copy of data.
func New(data []byte) (*Packet, error) {
	if len(data) < 1 {
		return nil, ErrUnrecognisedVersion
	}
	version := int(data[0] >> 4)
	if version != 4 && version != 6 {
		return nil, ErrUnrecognisedVersion
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Packet{version: version, bytes: owned}, nil
}

// NewFromVersion builds a Packet from caller-supplied bytes without
// re-deriving the version, for callers that already know it (e.g. tests
// constructing synthetic packets). data is still required to start with
// the matching nibble.
func NewFromVersion(version int, data []byte) (*Packet, error) {
	if version != 4 && version != 6 {
		return nil, ErrUnrecognisedVersion
	}
	if len(data) < 1 || int(data[0]>>4) != version {
		return nil, ErrUnrecognisedVersion
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Packet{version: version, bytes: owned}, nil
}

// Encoding returns the packet's wire bytes.
func (p *Packet) Encoding() []byte { return p.bytes }

// Version returns 4 or 6.
func (p *Packet) Version() int { return p.version }

// Clone returns a deep copy satisfying esp.InnerPacket's Clone.
func (p *Packet) Clone() esp.InnerPacket {
	owned := make([]byte, len(p.bytes))
	copy(owned, p.bytes)
	return &Packet{version: p.version, bytes: owned}
}

// ParseInner adapts New to esp.NewInnerPacket for use as the decrypt
// pipeline's inner-packet parser.
func ParseInner(payload []byte) (esp.InnerPacket, error) {
	return New(payload)
}
