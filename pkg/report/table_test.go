package report

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/li0ard/mfdread/pkg/hexutil"
	"github.com/li0ard/mfdread/pkg/mifare"
)

// renderPlain renders a dump with colors off so rows can be matched exactly.
func renderPlain(t *testing.T, data []byte) string {
	t.Helper()

	restore := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = restore })

	dump, err := mifare.ParseDump(data, mifare.Options{})
	require.NoError(t, err)

	var sb strings.Builder
	NewTable(DefaultPalette()).Render(&sb, dump)
	return sb.String()
}

func TestTableRender(t *testing.T) {
	data := make([]byte, mifare.SizeMini)

	// Transport-configured sector 0 trailer with well-known keys.
	trailer := hexutil.Hex("A0A1A2A3A4A5", "FF078069", "FFFFFFFFFFFF")
	copy(data[48:], trailer)

	out := renderPlain(t, data)
	lines := strings.Split(out, "\n")

	// Frame: header, one separator per sector, closing line.
	require.Equal(t, "╔═════════╦═══════╦══════════════════════════════════╦════════╦═════════════════════════════════════╗", lines[1])
	require.Contains(t, out, "╚═════════╩═══════╩")

	// Sector 0 trailer row: hex data, decoded code, trailer interpretation.
	require.Contains(t, out, "A0A1A2A3A4A5FF078069FFFFFFFFFFFF")
	require.Contains(t, out, "- A | A   A | A A [transport]")
	require.Contains(t, out, "A/B | A/B   | A/B | A/B [transport]")

	// The manufacturer block gets the placeholder, never a permission.
	require.Contains(t, lines[6], "║  0    ║")
	require.Contains(t, lines[6], "║ -")

	// Erased trailers elsewhere render as ERR with an empty permission.
	require.Contains(t, out, "ERR")

	// The sector number sits on the third row of each sector.
	require.Contains(t, lines[8], "║    0    ║")
	require.Contains(t, lines[13], "║    1    ║")
}

func TestTableRenderValueBlockHighlight(t *testing.T) {
	data := make([]byte, mifare.Size1K)
	copy(data[64:], hexutil.Hex("01 00 00 00 FE FF FF FF 01 00 00 00 01 FE 01 FE"))

	out := renderPlain(t, data)
	require.Contains(t, out, "01000000FEFFFFFF0100000001FE01FE")
}

func TestTableRenderASCIIColumn(t *testing.T) {
	data := make([]byte, mifare.Size1K)
	copy(data[64:], "hello world")

	out := renderPlain(t, data)
	require.Contains(t, out, "║ hello world")
}

func TestTableRenderBlockNumbers(t *testing.T) {
	out := renderPlain(t, make([]byte, mifare.Size1K))

	require.Contains(t, out, "║  0    ║")
	require.Contains(t, out, "║  63   ║")
	require.NotContains(t, out, "║  64   ║")
}
