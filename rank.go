package hll

// indexOf returns the top q bits of a mixed hash, used to select a register
// or sparse category.
func indexOf(h uint64, q uint) uint64 {
	return highBits(h, q)
}

// rankOf returns one plus the number of leading zeros of h once its top q
// index bits are discarded. The trailing-ones mask in the low q bits
// guarantees the shifted word is never all-zero, which caps the result at
// 64-q+1.
func rankOf(h uint64, q uint) uint8 {
	mask := uint64(1)<<q - 1
	shifted := (h << q) | mask
	return clz64(shifted) + 1
}
