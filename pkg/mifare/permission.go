package mifare

import "fmt"

// ACCESS CONDITION SEMANTICS:
//
// The same 3-bit code grants different rights depending on the block it
// governs. For a sector trailer the columns read:
//
//	Key A (read write) | access bits (read write) | Key B (read write)
//
// For a data block they read:
//
//	read | write | increment | decrement/transfer/restore
//
// where "A", "B" and "A/B" name the key(s) that may perform the operation and
// "-" means nobody can. Codes tagged [value] configure the block for
// electronic-purse arithmetic; [transport] is the delivery configuration of a
// blank card; [read B] means Key B is readable and therefore unusable as a
// secret.

// BlockRole selects which interpretation an access code receives.
type BlockRole int

const (
	// DataBlock interprets a code with the data-block rules.
	DataBlock BlockRole = iota
	// TrailerBlock interprets a code with the sector-trailer rules.
	TrailerBlock
)

// trailerPermissions is total over the eight codes, indexed C1 C2 C3.
var trailerPermissions = [8]string{
	0b000: "- A | A   - | A A [read B]",
	0b001: "- A | A   A | A A [transport]",
	0b010: "- - | A   - | A - [read B]",
	0b011: "- B | A/B B | - B",
	0b100: "- B | A/B - | - B",
	0b101: "- - | A/B B | - -",
	0b110: "- - | A/B - | - -",
	0b111: "- - | A/B - | - -",
}

// dataPermissions is total over the eight codes, indexed C1 C2 C3.
var dataPermissions = [8]string{
	0b000: "A/B | A/B   | A/B | A/B [transport]",
	0b001: "A/B |  -    |  -  | A/B [value]",
	0b010: "A/B |  -    |  -  |  -  [r/w]",
	0b011: "  B |   B   |  -  |  -  [r/w]",
	0b100: "A/B |   B   |  -  |  -  [r/w]",
	0b101: "  B |  -    |  -  |  -  [r/w]",
	0b110: "A/B |   B   |   B | A/B [value]",
	0b111: " -  |  -    |  -  |  -  [r/w]",
}

// Permission returns the human-readable access condition of a block with the
// given role, or "" for AccessInvalid. Both tables are total over the eight
// valid codes; a code that is neither valid nor AccessInvalid cannot come out
// of ExtractAccessCode, so encountering one is an internal invariant
// violation and panics.
func (c AccessCode) Permission(role BlockRole) string {
	if c == AccessInvalid {
		return ""
	}
	if !c.Valid() {
		panic(fmt.Sprintf("mifare: access code %d out of domain", uint8(c)))
	}

	if role == TrailerBlock {
		return trailerPermissions[c]
	}
	return dataPermissions[c]
}
