package mifare

import (
	"fmt"

	"github.com/li0ard/mfdread/pkg/bits"
)

// ACCESS FIELD LAYOUT:
//
// Bytes 6-9 of a sector trailer form the access field. Only the first three
// bytes carry the access conditions; byte 9 is free user data. Each block
// group is governed by three bits (C1, C2, C3) scattered over the field, and
// every one of those bits is stored a second time inverted, so a reader can
// detect a corrupted trailer. Bit positions below are counted MSB-first
// within the 4-byte field, position 0 being the most significant bit of
// byte 6 (the convention of the NXP MF1S50/MF1S70 datasheets).
//
// Small (4-block) sectors have four groups: one per data block 0-2 plus the
// trailer. Large (16-block) sectors collapse all fifteen data blocks into a
// single group sharing the trailer bit positions, here addressed as group 15.

// Block groups over which one access code applies.
const (
	GroupData0   = 0
	GroupData1   = 1
	GroupData2   = 2
	GroupTrailer = 3

	// GroupData15 addresses the single collapsed data group of a large
	// sector. It reads the same bit positions as GroupTrailer.
	GroupData15 = 15
)

// accessBitPositions maps a block group to the positions of its three access
// bits (C1, C2, C3) and of their stored complements, pairwise in the same
// order. The indices are fixed by the chip's memory layout; they are kept as
// a literal table so they stay auditable against the datasheet. Swapping any
// pair still produces plausible-looking codes, which is exactly the failure
// this table guards against.
var accessBitPositions = map[int]struct {
	bits     [3]uint
	inverted [3]uint
}{
	GroupData0:   {bits: [3]uint{11, 23, 19}, inverted: [3]uint{7, 3, 15}},
	GroupData1:   {bits: [3]uint{10, 22, 18}, inverted: [3]uint{6, 2, 14}},
	GroupData2:   {bits: [3]uint{9, 21, 17}, inverted: [3]uint{5, 1, 13}},
	GroupTrailer: {bits: [3]uint{8, 20, 16}, inverted: [3]uint{4, 0, 12}},
	GroupData15:  {bits: [3]uint{8, 20, 16}, inverted: [3]uint{4, 0, 12}},
}

// AccessCode is the 3-bit access condition of one block group (C1 as the most
// significant bit), or AccessInvalid when the stored complements disagree
// with the access bits.
type AccessCode uint8

// AccessInvalid marks a group whose inverted check bits do not match its
// access bits. The decoder never substitutes a best guess: a group either
// validates exactly or is invalid.
const AccessInvalid AccessCode = 0xFF

// Valid reports whether the code is one of the eight decodable patterns.
func (c AccessCode) Valid() bool {
	return c <= 7
}

// String returns the code as the conventional 3-character binary string
// (C1 C2 C3), or "ERR" for an invalid code.
func (c AccessCode) String() string {
	if !c.Valid() {
		return "ERR"
	}
	return fmt.Sprintf("%03b", uint8(c))
}

// ExtractAccessCode reads the access code of one block group out of a sector
// trailer's access field. Every stored check bit must be the exact complement
// of its access bit; on any mismatch the whole group decodes to
// AccessInvalid. Unknown groups decode to AccessInvalid as well.
func ExtractAccessCode(field []byte, group int) AccessCode {
	pos, ok := accessBitPositions[group]
	if !ok {
		return AccessInvalid
	}

	var code AccessCode
	for i := 0; i < 3; i++ {
		b := bits.AtMSB(field, pos.bits[i])
		if bits.AtMSB(field, pos.inverted[i]) == b {
			return AccessInvalid
		}

		code <<= 1
		if b {
			code |= 1
		}
	}

	return code
}

// Trailer field offsets within the 16-byte sector trailer.
const (
	keyAEnd        = 6
	accessFieldEnd = 10
)

// Trailer is the last block of a sector: Key A, the access field, Key B.
type Trailer []byte

// KeyA returns the 6-byte Key A.
func (t Trailer) KeyA() []byte {
	return t[:keyAEnd]
}

// AccessField returns the 4-byte access field.
func (t Trailer) AccessField() []byte {
	return t[keyAEnd:accessFieldEnd]
}

// KeyB returns the 6-byte Key B.
func (t Trailer) KeyB() []byte {
	return t[accessFieldEnd:]
}
