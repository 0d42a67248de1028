package mifare

import "strings"

// Options carries the decode configuration supplied by the caller. The zero
// value decodes a dump as-is with a 4-byte UID.
type Options struct {
	// Force1K decodes only the first 1024 bytes of a larger dump.
	Force1K bool

	// UIDLength selects between 4- and 7-byte UIDs (4 when zero). It only
	// shifts where presenters locate SAK and ATQA in the manufacturer
	// block; the access decoding is unaffected.
	UIDLength int
}

// Sector is one decoded sector: its raw bytes plus the access code of every
// block group, recovered from the trailer.
type Sector struct {
	Index int

	raw   []byte
	codes map[int]AccessCode
}

// NumBlocks returns the number of blocks in the sector (4 or 16).
func (s *Sector) NumBlocks() int {
	return len(s.raw) / BlockSize
}

// Block returns the raw content of in-sector block i.
func (s *Sector) Block(i int) []byte {
	return s.raw[i*BlockSize : (i+1)*BlockSize]
}

// Trailer returns the sector trailer, the last block of the sector.
func (s *Sector) Trailer() Trailer {
	return Trailer(s.Block(s.NumBlocks() - 1))
}

// AccessCode returns the code governing in-sector block i.
func (s *Sector) AccessCode(i int) AccessCode {
	return s.codes[s.group(i)]
}

// group maps an in-sector block index to its access bit group. Small sectors
// have one group per block; large sectors share a single collapsed group.
func (s *Sector) group(i int) int {
	if s.NumBlocks() == largeSectorBlocks {
		return GroupData15
	}
	return i
}

// decodeAccessCodes fills s.codes from the trailer's access field. A failed
// complement check only invalidates its own group.
func (s *Sector) decodeAccessCodes() {
	field := s.Trailer().AccessField()
	s.codes = make(map[int]AccessCode)

	if s.NumBlocks() == largeSectorBlocks {
		s.codes[GroupData15] = ExtractAccessCode(field, GroupData15)
		return
	}

	for g := GroupData0; g <= GroupTrailer; g++ {
		s.codes[g] = ExtractAccessCode(field, g)
	}
}

// Dump is a fully decoded Mifare Classic dump.
type Dump struct {
	Sectors []Sector

	// Truncated is the number of trailing bytes Options.Force1K made the
	// decoder ignore. Zero unless the override actually cut the dump.
	Truncated int

	opts Options
}

// ParseDump decodes a raw dump. The input length must be one of SizeMini,
// Size1K or Size4K; anything else fails with *InvalidSizeError before any
// sector is decoded. The data is not copied: the dump and its sectors alias
// the input slice, which must not be mutated afterwards.
func ParseDump(data []byte, opts Options) (*Dump, error) {
	spans, err := ResolveLayout(len(data), opts.Force1K)
	if err != nil {
		return nil, err
	}

	d := &Dump{opts: opts}

	end := 0
	for _, span := range spans {
		end = span.Offset + span.Length

		s := Sector{Index: span.Index, raw: data[span.Offset:end]}
		s.decodeAccessCodes()
		d.Sectors = append(d.Sectors, s)
	}

	d.Truncated = len(data) - end
	return d, nil
}

// Options returns the configuration the dump was decoded with.
func (d *Dump) Options() Options {
	return d.opts
}

// BlockInfo is the decoded view of one block, in presentation order.
type BlockInfo struct {
	Sector int // sector index
	Index  int // in-sector block index
	Number int // global block number

	Data         []byte
	Trailer      bool // last block of its sector
	Manufacturer bool // block 0 of sector 0

	Access     AccessCode
	Permission string // "" when the access code is invalid, "-" for the manufacturer block
	ASCII      string // printable text content, or ""
	Value      bool   // matches the value-block layout
}

// Blocks flattens the dump into one record per block. The manufacturer block
// never carries a permission: its access code is still decoded and reported,
// but the permission slot is the fixed placeholder "-".
func (d *Dump) Blocks() []BlockInfo {
	var infos []BlockInfo

	number := 0
	for si := range d.Sectors {
		s := &d.Sectors[si]
		n := s.NumBlocks()

		for i := 0; i < n; i++ {
			raw := s.Block(i)

			info := BlockInfo{
				Sector:       s.Index,
				Index:        i,
				Number:       number,
				Data:         raw,
				Trailer:      i == n-1,
				Manufacturer: s.Index == 0 && i == 0,
				Access:       s.AccessCode(i),
				ASCII:        printableASCII(raw),
				Value:        IsValueBlock(raw),
			}

			switch {
			case info.Manufacturer:
				info.Permission = "-"
			case info.Trailer:
				info.Permission = info.Access.Permission(TrailerBlock)
			default:
				info.Permission = info.Access.Permission(DataBlock)
			}

			infos = append(infos, info)
			number++
		}
	}

	return infos
}

// printableASCII returns the block content as text when, ignoring trailing
// NUL padding, it consists of printable ASCII only. Anything else yields "".
func printableASCII(data []byte) string {
	trimmed := strings.TrimRight(string(data), "\x00")
	for _, r := range trimmed {
		if r < 0x20 || r > 0x7E {
			return ""
		}
	}
	return trimmed
}
