package mifare

import "fmt"

// Dump sizes accepted by the resolver, in bytes.
const (
	SizeMini = 320  // Mifare Mini
	Size1K   = 1024 // Mifare Classic 1K
	Size4K   = 4096 // Mifare Classic 4K
)

const (
	// BlockSize is the size of one Mifare block in bytes.
	BlockSize = 16

	smallSectorBlocks = 4
	largeSectorBlocks = 16

	smallSectorSize = smallSectorBlocks * BlockSize
	largeSectorSize = largeSectorBlocks * BlockSize

	// smallSectorCount is the number of 4-block sectors before the 4K
	// geometry switches to 16-block sectors.
	smallSectorCount = 32
)

// InvalidSizeError reports a dump whose length is not one of the accepted
// Mifare Classic sizes. It is fatal: no sector of such a dump is decoded.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("wrong dump size: %d bytes (only %d, %d or %d bytes allowed)",
		e.Size, SizeMini, Size1K, Size4K)
}

// SectorSpan is the byte range one sector occupies within a dump.
type SectorSpan struct {
	Index  int
	Offset int
	Length int
}

// Blocks returns the number of blocks the span holds.
func (s SectorSpan) Blocks() int {
	return s.Length / BlockSize
}

// ResolveLayout partitions a dump of the given size into ordered sector
// spans. Sectors 0 to 31 are 64-byte windows of four blocks; any sector after
// that (4K dumps only) is a 256-byte window of sixteen blocks.
//
// force1K stops the walk at 1024 bytes, decoding a larger dump as if it were
// a 1K card. The size is validated before the override applies, so an
// unacceptable length fails even with force1K set.
func ResolveLayout(size int, force1K bool) ([]SectorSpan, error) {
	switch size {
	case SizeMini, Size1K, Size4K:
	default:
		return nil, &InvalidSizeError{Size: size}
	}

	limit := size
	if force1K && limit > Size1K {
		limit = Size1K
	}

	var spans []SectorSpan
	for offset := 0; offset < limit; {
		length := smallSectorSize
		if len(spans) >= smallSectorCount {
			length = largeSectorSize
		}

		spans = append(spans, SectorSpan{
			Index:  len(spans),
			Offset: offset,
			Length: length,
		})
		offset += length
	}

	return spans, nil
}
