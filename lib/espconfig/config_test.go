package espconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEngineConfigWindowWidth(t *testing.T) {
	assert.Equal(t, uint32(64), DefaultEngineConfig.WindowWidth)
	assert.Nil(t, DefaultEngineConfig.BufferPool)
}
