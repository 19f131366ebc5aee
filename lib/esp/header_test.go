package esp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReadHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, HeaderLen)
	WriteHeader(buf, 0xDEADBEEF, 1)

	spi, seq, err := ReadHeader(buf)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), spi)
	assert.Equal(t, uint32(1), seq)
}

func TestReadHeaderTooShort(t *testing.T) {
	_, _, err := ReadHeader(make([]byte, 7))
	assert.Error(t, err)
}

func TestWriteHeaderBigEndian(t *testing.T) {
	buf := make([]byte, HeaderLen)
	WriteHeader(buf, 1, 2)
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 2}, buf)
}
