package bits

// Bit returns a byte with only the n-th bit set (1 to 8).
func Bit(n uint) byte {
	if n < 1 || n > 8 {
		return 0
	}
	return 1 << (n - 1)
}

// IsSet checks if the n-th bit is set (1 to 8).
func IsSet(b byte, n uint) bool {
	return b&Bit(n) != 0
}

// Set returns b with the n-th bit set (1 to 8).
func Set(b byte, n uint) byte {
	return b | Bit(n)
}

// AtMSB reads the bit at position pos, counted MSB-first across the whole
// slice: position 0 is the most significant bit of data[0], position 8 the
// most significant bit of data[1], and so on. This is the numbering chip
// datasheets use when they print multi-byte bit fields. Out-of-range
// positions read as 0.
func AtMSB(data []byte, pos uint) bool {
	if int(pos/8) >= len(data) {
		return false
	}
	return IsSet(data[pos/8], 8-pos%8)
}

// SetMSB sets the bit at position pos (MSB-first, as in AtMSB) in place.
// Out-of-range positions are ignored.
func SetMSB(data []byte, pos uint) {
	if int(pos/8) < len(data) {
		data[pos/8] = Set(data[pos/8], 8-pos%8)
	}
}
