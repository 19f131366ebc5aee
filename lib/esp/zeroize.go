package esp

import "runtime"

// wipe overwrites buf with zeroes. Called on every buffer that transiently
// held plaintext, an IV, or key-adjacent data before it is released, on
// both the success and failure paths. The runtime.KeepAlive call after the
// loop stops the compiler from proving the zeroing is dead and eliding it.
func wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
