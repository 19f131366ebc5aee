// Package espconfig holds the diagnostic-only, resource-sizing
// configuration for the ESP engine: anti-replay window width, a free-form
// cipher-suite label for logging, and an optional scratch-buffer pool.
//
// None of these fields change wire-format behavior — the engine never
// branches encrypt/decrypt semantics on a Suite name. They exist so a
// caller wiring many SAs together has one struct to size and pass down.
package espconfig

import "sync"

// EngineConfig carries the module's diagnostic-only, resource-sizing
// knobs for one or more SAs.
type EngineConfig struct {
	// WindowWidth is the anti-replay bitmap width in bits; rounded up to
	// the next power of two, minimum 64.
	WindowWidth uint32
	// Suite is a free-form identifier for which concrete primitive pair
	// an SA using this config was built with, surfaced only for
	// logging/metrics — never interpreted by the engine itself.
	Suite string
	// BufferPool, if non-nil, is drawn from by the encrypt pipeline
	// instead of allocating a fresh datagram buffer per packet. Buffers
	// are wiped before being returned to the pool on any failure path.
	BufferPool *sync.Pool
}

// DefaultEngineConfig is the configuration used when a caller does not
// supply one: a 64-bit anti-replay window and no buffer pool.
var DefaultEngineConfig = EngineConfig{
	WindowWidth: 64,
	Suite:       "",
	BufferPool:  nil,
}
