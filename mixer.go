package hll

// Mixer is a pure 64-bit avalanche mix. It is the one external
// collaborator the estimator trusts to spread its input keys uniformly
// across the hash space; the core never hashes byte slices itself.
type Mixer func(uint64) uint64

// MurmurFinalizer is the three-round MurmurHash3 finalizer, offset by one
// so that the fixed point at 0 (murmur's finalizer maps 0 to 0) is avoided.
// This is the default mixer used when none is supplied.
func MurmurFinalizer(key uint64) uint64 {
	key++ // avoid the fixed point at 0
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

// WangMixer is Thomas Wang's 64-bit integer hash mix.
func WangMixer(key uint64) uint64 {
	key = ^key + (key << 21)
	key ^= key >> 24
	key = (key + (key << 3)) + (key << 8)
	key ^= key >> 14
	key = (key + (key << 2)) + (key << 4)
	key ^= key >> 28
	key += key << 31
	return key
}
