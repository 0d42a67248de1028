package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/li0ard/mfdread/pkg/hexutil"
	"github.com/li0ard/mfdread/pkg/mifare"
)

// MANUFACTURER BLOCK LAYOUT:
//
// Block 0 of sector 0 is written once at the factory. With a 4-byte UID it
// reads UID(4) BCC(1) SAK(1) ATQA(2) manufacturer data(8); with a 7-byte UID
// the SAK/ATQA pair sits right after the UID and there is no BCC inside the
// block. Some manufacturers stamp the production week and year (two-digit
// decimal, printed as hex) into the last two bytes; that is a convention, not
// part of the standard, so the date is reported only when the bytes look
// plausible.

// CardIdentity is the manufacturer data sliced out of block 0.
type CardIdentity struct {
	UID  []byte
	BCC  byte // block byte 4, only meaningful with a 4-byte UID
	SAK  byte
	ATQA []byte

	// ManufactureFrom and ManufactureTo bound the production week when
	// block 0 carries a plausible week/year stamp; both are zero otherwise.
	ManufactureFrom time.Time
	ManufactureTo   time.Time
}

// NewCardIdentity slices the manufacturer data out of a manufacturer block.
// uidLength selects the 4- or 7-byte layout; anything but 7 means 4.
func NewCardIdentity(block0 []byte, uidLength int) (*CardIdentity, error) {
	if len(block0) != mifare.BlockSize {
		return nil, fmt.Errorf("manufacturer block must be %d bytes, got %d", mifare.BlockSize, len(block0))
	}

	if uidLength != 7 {
		uidLength = 4
	}

	sakStart := uidLength
	if uidLength == 4 {
		sakStart = uidLength + 1
	}

	id := &CardIdentity{
		UID:  block0[:uidLength],
		BCC:  block0[4],
		SAK:  block0[sakStart],
		ATQA: block0[sakStart+1 : sakStart+3],
	}
	id.ManufactureFrom, id.ManufactureTo = manufactureWindow(block0, time.Now())

	return id, nil
}

// manufactureWindow decodes the production week stamp of block 0, if any.
// Byte 14 holds the ISO week and byte 15 the two-digit year, both written so
// that their hex rendering reads as decimal (week 51 is stored as 0x51).
func manufactureWindow(block0 []byte, now time.Time) (from, to time.Time) {
	week, err := strconv.Atoi(fmt.Sprintf("%02x", block0[14]))
	if err != nil {
		return time.Time{}, time.Time{}
	}
	year, err := strconv.Atoi(fmt.Sprintf("%02x", block0[15]))
	if err != nil {
		return time.Time{}, time.Time{}
	}

	if year < 0 || year > now.Year()-2000 || week < 1 || week > 53 {
		return time.Time{}, time.Time{}
	}

	start := isoWeekStart(2000+year, week)
	return start, start.AddDate(0, 0, 6)
}

// isoWeekStart returns the Monday of the given ISO 8601 week.
func isoWeekStart(year, week int) time.Time {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)

	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	monday := jan4.AddDate(0, 0, 1-weekday)
	return monday.AddDate(0, 0, (week-1)*7)
}

// Describe renders the identity section of the report.
func (id *CardIdentity) Describe() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\tUID:  %s\n", hexutil.Encode(id.UID)))
	sb.WriteString(fmt.Sprintf("\tBCC:  %02X\n", id.BCC))
	sb.WriteString(fmt.Sprintf("\tSAK:  %02X\n", id.SAK))
	sb.WriteString(fmt.Sprintf("\tATQA: %s", hexutil.Encode(id.ATQA)))

	if !id.ManufactureFrom.IsZero() {
		sb.WriteString(fmt.Sprintf("\n\tYear of manufacture: between %s and %s",
			id.ManufactureFrom.Format("02.01.2006"),
			id.ManufactureTo.Format("02.01.2006")))
	}

	return sb.String()
}
