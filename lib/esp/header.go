package esp

import "encoding/binary"

// HeaderLen is the fixed size of the ESP header: 4-byte SPI, 4-byte
// sequence number, both network byte order.
const HeaderLen = 8

// WriteHeader encodes spi and seq into the first HeaderLen bytes of buf,
// big-endian. buf must be at least HeaderLen bytes.
func WriteHeader(buf []byte, spi, seq uint32) {
	binary.BigEndian.PutUint32(buf[0:4], spi)
	binary.BigEndian.PutUint32(buf[4:8], seq)
}

// ReadHeader decodes the SPI and sequence number from the start of buf.
// Returns ErrParse if fewer than HeaderLen bytes remain.
func ReadHeader(buf []byte) (spi, seq uint32, err error) {
	if len(buf) < HeaderLen {
		return 0, 0, WrapDecryptError(ErrParse, "header")
	}
	spi = binary.BigEndian.Uint32(buf[0:4])
	seq = binary.BigEndian.Uint32(buf[4:8])
	return spi, seq, nil
}
