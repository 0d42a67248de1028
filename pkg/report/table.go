// Package report renders a decoded Mifare Classic dump as a human-readable
// terminal report: the card identity pulled from the manufacturer block and a
// per-block table of keys, access conditions and content.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/li0ard/mfdread/pkg/hexutil"
	"github.com/li0ard/mfdread/pkg/mifare"
)

// Palette selects the colors of the rendered table. Rendering honors the
// global color.NoColor switch, so a plain-output mode needs no second code
// path.
type Palette struct {
	KeyA       *color.Color
	AccessBits *color.Color
	KeyB       *color.Color
	Warning    *color.Color
}

// DefaultPalette colors trailer fields the conventional way: Key A red,
// access bits green, Key B blue, with yellow for warnings (invalid access
// bits, value blocks).
func DefaultPalette() Palette {
	return Palette{
		KeyA:       color.New(color.FgRed),
		AccessBits: color.New(color.FgGreen),
		KeyB:       color.New(color.FgBlue),
		Warning:    color.New(color.FgYellow),
	}
}

// Hex-character widths of the trailer fields within a 32-character block.
const (
	keyAHexEnd   = 12
	accessHexEnd = 20
)

// Table renders the per-block report of a decoded dump.
type Table struct {
	palette Palette
}

// NewTable creates a Table using the given palette.
func NewTable(palette Palette) *Table {
	return &Table{palette: palette}
}

// Render writes the full table for dump d to w.
func (t *Table) Render(w io.Writer, d *mifare.Dump) {
	fmt.Fprintf(w, "                   %s    %s    %s\n",
		t.palette.KeyA.Sprint("Key A"),
		t.palette.AccessBits.Sprint("Access Bits"),
		t.palette.KeyB.Sprint("Key B"))

	fmt.Fprintln(w, "╔═════════╦═══════╦══════════════════════════════════╦════════╦═════════════════════════════════════╗")
	fmt.Fprintln(w, "║  Sector ║ Block ║            Data                  ║ Access ║   A | Acc.  | B                     ║")
	fmt.Fprintln(w, "║         ║       ║                                  ║        ║ r w | r   w | r w [info]            ║")
	fmt.Fprintln(w, "║         ║       ║                                  ║        ║  r  |  w    |  i  | d/t/r           ║")

	currentSector := -1
	for _, b := range d.Blocks() {
		if b.Sector != currentSector {
			fmt.Fprintln(w, "╠═════════╬═══════╬══════════════════════════════════╬════════╬═════════════════════════════════════╣")
			currentSector = b.Sector
		}

		// The sector number goes on the third row of its sector.
		sectorLabel := ""
		if b.Index == 2 {
			sectorLabel = strconv.Itoa(b.Sector)
		}

		fmt.Fprintf(w, "║    %-5s║  %-3d  ║ %s ║  %s   ║ %-35s ║ %s\n",
			sectorLabel, b.Number, t.dataCell(b), t.accessCell(b), b.Permission, b.ASCII)
	}

	fmt.Fprintln(w, "╚═════════╩═══════╩══════════════════════════════════╩════════╩═════════════════════════════════════╝")
}

// dataCell renders the 32 hex characters of a block, colorizing trailer
// fields and highlighting value blocks. A block that matches the value layout
// wins over trailer coloring; a trailer matching it would be a corrupted
// sector anyway.
func (t *Table) dataCell(b mifare.BlockInfo) string {
	hexStr := hexutil.Encode(b.Data)

	switch {
	case b.Value:
		return t.palette.Warning.Sprint(hexStr)
	case b.Trailer:
		return t.palette.KeyA.Sprint(hexStr[:keyAHexEnd]) +
			t.palette.AccessBits.Sprint(hexStr[keyAHexEnd:accessHexEnd]) +
			t.palette.KeyB.Sprint(hexStr[accessHexEnd:])
	default:
		return hexStr
	}
}

// accessCell renders the 3-bit access code, or a highlighted ERR marker for a
// group whose inverted check bits did not validate.
func (t *Table) accessCell(b mifare.BlockInfo) string {
	if !b.Access.Valid() {
		return t.palette.Warning.Sprint("ERR")
	}
	return t.palette.AccessBits.Sprint(b.Access.String())
}
