package hll

import (
	dbits "github.com/dgryski/go-bits"
)

// clz64 returns the number of leading zero bits in x, treating x as a
// 64-bit word. clz64(0) == 64.
func clz64(x uint64) uint8 {
	if x == 0 {
		return 64
	}
	return uint8(dbits.Clz(x))
}

// clz32 returns the number of leading zero bits in x, treating x as a
// 32-bit word. clz32(0) == 32.
func clz32(x uint32) uint8 {
	if x == 0 {
		return 32
	}
	// dbits.Clz operates on a 64-bit word; shifting x into the high 32
	// bits makes its leading-zero count equal the 32-bit count.
	return uint8(dbits.Clz(uint64(x) << 32))
}

// highBits returns the top n bits of the 64-bit word x, right-aligned.
func highBits(x uint64, n uint) uint64 {
	if n == 0 {
		return 0
	}
	return x >> (64 - n)
}

// extractBits returns bits [lo, hi) of x, right-aligned. hi is exclusive.
func extractBits(x uint64, hi, lo uint) uint64 {
	width := hi - lo
	mask := uint64(1)<<width - 1
	return (x >> lo) & mask
}

// extractBits32 is extractBits for a 32-bit word.
func extractBits32(x uint32, hi, lo uint) uint32 {
	width := hi - lo
	mask := uint32(1)<<width - 1
	return (x >> lo) & mask
}
