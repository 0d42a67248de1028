package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/li0ard/mfdread/pkg/hexutil"
)

func TestNewCardIdentity4ByteUID(t *testing.T) {
	block0 := hexutil.Hex("DE AD BE EF", "63", "08", "04 00", "00 00 00 00 00 00", "11 15")

	id, err := NewCardIdentity(block0, 4)
	require.NoError(t, err)

	require.Equal(t, "DEADBEEF", hexutil.Encode(id.UID))
	require.Equal(t, byte(0x63), id.BCC)
	require.Equal(t, byte(0x08), id.SAK)
	require.Equal(t, "0400", hexutil.Encode(id.ATQA))

	// Week 11 of 2015 runs Monday March 9th through Sunday March 15th.
	require.Equal(t, time.Date(2015, time.March, 9, 0, 0, 0, 0, time.UTC), id.ManufactureFrom)
	require.Equal(t, time.Date(2015, time.March, 15, 0, 0, 0, 0, time.UTC), id.ManufactureTo)
}

func TestNewCardIdentity7ByteUID(t *testing.T) {
	block0 := hexutil.Hex("04 A1 B2 C3 D4 E5 F6", "18", "42 00", "00 00 00 00", "AB 15")

	id, err := NewCardIdentity(block0, 7)
	require.NoError(t, err)

	require.Equal(t, "04A1B2C3D4E5F6", hexutil.Encode(id.UID))
	require.Equal(t, byte(0x18), id.SAK)
	require.Equal(t, "4200", hexutil.Encode(id.ATQA))

	// 0xAB does not read as a decimal week, so no date is reported.
	require.True(t, id.ManufactureFrom.IsZero())
	require.True(t, id.ManufactureTo.IsZero())
}

func TestNewCardIdentityDefaultsTo4(t *testing.T) {
	block0 := hexutil.Hex("DE AD BE EF", "63", "08", "04 00", "00 00 00 00 00 00 00 00")

	id, err := NewCardIdentity(block0, 0)
	require.NoError(t, err)
	require.Len(t, id.UID, 4)
}

func TestNewCardIdentityWrongBlockSize(t *testing.T) {
	_, err := NewCardIdentity(hexutil.Hex("DE AD BE EF"), 4)
	require.Error(t, err)
}

func TestManufactureWindow(t *testing.T) {
	now := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		week     byte
		year     byte
		wantFrom time.Time
	}{
		{"Week 1 of 2021", 0x01, 0x21, time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC)},
		{"Week 53 of 2020", 0x53, 0x20, time.Date(2020, time.December, 28, 0, 0, 0, 0, time.UTC)},
		{"Week 0 rejected", 0x00, 0x21, time.Time{}},
		{"Week 54 rejected", 0x54, 0x21, time.Time{}},
		{"Year in the future rejected", 0x01, 0x99, time.Time{}},
		{"Non-decimal week rejected", 0x1A, 0x21, time.Time{}},
		{"Non-decimal year rejected", 0x01, 0xF5, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block0 := make([]byte, 16)
			block0[14] = tt.week
			block0[15] = tt.year

			from, to := manufactureWindow(block0, now)
			require.Equal(t, tt.wantFrom, from)

			if !tt.wantFrom.IsZero() {
				require.Equal(t, tt.wantFrom.AddDate(0, 0, 6), to)
			} else {
				require.True(t, to.IsZero())
			}
		})
	}
}

func TestIdentityDescribe(t *testing.T) {
	block0 := hexutil.Hex("DE AD BE EF", "63", "08", "04 00", "00 00 00 00 00 00", "11 15")

	id, err := NewCardIdentity(block0, 4)
	require.NoError(t, err)

	report := id.Describe()
	require.Contains(t, report, "UID:  DEADBEEF")
	require.Contains(t, report, "BCC:  63")
	require.Contains(t, report, "SAK:  08")
	require.Contains(t, report, "ATQA: 0400")
	require.Contains(t, report, "Year of manufacture: between 09.03.2015 and 15.03.2015")
}

func TestIdentityDescribeWithoutDate(t *testing.T) {
	block0 := hexutil.Hex("DE AD BE EF", "63", "08", "04 00", "00 00 00 00 00 00 00 00")

	id, err := NewCardIdentity(block0, 4)
	require.NoError(t, err)
	require.NotContains(t, id.Describe(), "Year of manufacture")
}
