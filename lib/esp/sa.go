package esp

import (
	"github.com/go-i2p/go-esp/lib/espconfig"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// SA bundles everything one direction of a security association needs to
// run the encrypt or decrypt pipeline: the negotiated primitives, the
// anti-replay window (which also owns the egress sequence cursor), and the
// SPI this SA speaks for. Keys live inside Encryptor/MAC and are never
// copied out into this struct or into packet buffers.
//
// next_seqno, Check, and Commit on the embedded Window are already
// individually serialized by Window's own mutex; SA adds no further
// locking because nothing else mutable hangs off it. A caller must not
// share one SA between callers expecting independent sequence spaces —
// one SA is one direction of one security association.
type SA struct {
	SPI       uint32
	Encryptor Encryptor
	MAC       MAC
	RNG       RNG
	Window    *Window
	Config    espconfig.EngineConfig
}

// NewSA constructs an SA with a fresh anti-replay window sized from cfg.
func NewSA(spi uint32, enc Encryptor, mac MAC, rng RNG, cfg espconfig.EngineConfig) *SA {
	width := cfg.WindowWidth
	if width == 0 {
		width = DefaultWindowWidth
	}
	return &SA{
		SPI:       spi,
		Encryptor: enc,
		MAC:       mac,
		RNG:       rng,
		Window:    NewWindow(width),
		Config:    cfg,
	}
}
