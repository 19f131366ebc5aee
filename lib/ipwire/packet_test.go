package ipwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetectsIPv4(t *testing.T) {
	data := make([]byte, 20)
	data[0] = 0x45
	p, err := New(data)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Version())
	assert.Equal(t, data, p.Encoding())
}

func TestNewDetectsIPv6(t *testing.T) {
	data := make([]byte, 40)
	data[0] = 0x60
	p, err := New(data)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Version())
}

func TestNewRejectsUnknownVersion(t *testing.T) {
	data := make([]byte, 20)
	data[0] = 0x50
	_, err := New(data)
	assert.ErrorIs(t, err, ErrUnrecognisedVersion)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrUnrecognisedVersion)
}

func TestCloneIsDeepCopy(t *testing.T) {
	data := make([]byte, 20)
	data[0] = 0x45
	p, err := New(data)
	require.NoError(t, err)

	clone := p.Clone()
	p.Encoding()[1] = 0xFF
	assert.NotEqual(t, p.Encoding(), clone.Encoding())
}

func TestNewCopiesInputRatherThanAliasing(t *testing.T) {
	data := make([]byte, 20)
	data[0] = 0x45
	p, err := New(data)
	require.NoError(t, err)

	data[5] = 0xAA
	assert.NotEqual(t, byte(0xAA), p.Encoding()[5], "New must copy, not alias, the input slice")
}
