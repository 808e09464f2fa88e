package hll

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestClz64(t *testing.T) {
	assert.Equal(t, uint8(64), clz64(0))
	assert.Equal(t, uint8(0), clz64(1<<63))
	assert.Equal(t, uint8(63), clz64(1))
	assert.Equal(t, uint8(32), clz64(1<<31))
}

func TestClz32(t *testing.T) {
	assert.Equal(t, uint8(32), clz32(0))
	assert.Equal(t, uint8(0), clz32(1<<31))
	assert.Equal(t, uint8(31), clz32(1))
}

func TestHighBits(t *testing.T) {
	assert.Equal(t, uint64(0), highBits(0xABCD, 0))
	assert.Equal(t, uint64(0xFF), highBits(0xFF00000000000000, 8))
	assert.Equal(t, uint64(1), highBits(1<<63, 1))
}

func TestExtractBits(t *testing.T) {
	assert.Equal(t, uint64(0xFF), extractBits(0xFF00, 16, 8))
	assert.Equal(t, uint64(0x1), extractBits(0b1010, 4, 3))
	assert.Equal(t, uint64(0), extractBits(0, 10, 0))
}

func TestExtractBits32(t *testing.T) {
	assert.Equal(t, uint32(0xFF), extractBits32(0xFF00, 16, 8))
}
