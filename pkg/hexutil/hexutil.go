// Package hexutil provides small helpers for building and formatting
// hexadecimal byte strings.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex constructs a byte slice from a series of hex strings.
func Hex(parts ...string) []byte {
	fullHex := strings.Join(parts, "")
	// Clean up spaces to allow format like "FF 07 80 69"
	cleanHex := strings.ReplaceAll(fullHex, " ", "")

	data, err := hex.DecodeString(cleanHex)
	if err != nil {
		panic(fmt.Sprintf("invalid input '%s': %v", cleanHex, err))
	}
	return data
}

// Encode returns the upper-case hex representation of data.
func Encode(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
