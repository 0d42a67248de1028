package mifare

import (
	"encoding/binary"
	"fmt"
)

// VALUE BLOCKS:
//
// A data block configured for purse arithmetic stores a 4-byte signed value
// three times (twice direct, once bit-inverted) and a 1-byte backup block
// address four times (two direct/inverted pairs):
//
//	bytes  0-3   value
//	bytes  4-7   ~value
//	bytes  8-11  value
//	byte   12    address
//	byte   13    ~address
//	byte   14    address
//	byte   15    ~address
//
// Cards carry no explicit type tag for this, so classification is structural.
// Ordinary data that happens to match the pattern is reported as a value
// block; that is accepted behavior.

// IsValueBlock reports whether a 16-byte block matches the value-block
// redundancy layout exactly.
func IsValueBlock(block []byte) bool {
	if len(block) != BlockSize {
		return false
	}

	for i := 0; i < 4; i++ {
		if block[i] != block[i+8] || block[i]^0xFF != block[i+4] {
			return false
		}
	}

	return block[12] == block[14] && block[13] == block[15] &&
		block[12]^0xFF == block[13]
}

// DecodeValue extracts the signed value and backup block address from a value
// block. The value is stored little-endian. It fails if the block does not
// classify as a value block.
func DecodeValue(block []byte) (value int32, addr byte, err error) {
	if !IsValueBlock(block) {
		return 0, 0, fmt.Errorf("not a value block: % X", block)
	}

	return int32(binary.LittleEndian.Uint32(block[:4])), block[12], nil
}
