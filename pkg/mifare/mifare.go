/*
Package mifare decodes raw Mifare Classic memory dumps into sectors, blocks,
keys and access conditions.

This package works on an already-recovered plaintext dump. It never talks to
a reader, never writes a dump back and never attempts key recovery.

# Memory geometry

A Mifare Classic chip is an array of 16-byte blocks grouped into sectors.
Three dump sizes exist:

  - 320 bytes: Mifare Mini, 5 sectors of 4 blocks.
  - 1024 bytes: Classic 1K, 16 sectors of 4 blocks.
  - 4096 bytes: Classic 4K, 32 sectors of 4 blocks followed by 8 sectors of
    16 blocks.

The last block of every sector is the sector trailer: 6 bytes of Key A, a
4-byte access field and 6 bytes of Key B. Block 0 of sector 0 is the
manufacturer block (UID, SAK, ATQA, production data) and is read-only.

# Access conditions

The trailer's access field grants read/write/increment/decrement rights per
block group. Each group is governed by a 3-bit code that is stored twice: once
directly and once bit-inverted, so a reader can detect corruption. When the
two copies disagree the group decodes to AccessInvalid; the rest of the dump
is still decoded.

# Usage

	dump, err := mifare.ParseDump(data, mifare.Options{})
	if err != nil {
	    log.Fatal(err)
	}

	for _, b := range dump.Blocks() {
	    fmt.Printf("%d/%d %X %s %s\n", b.Sector, b.Index, b.Data, b.Access, b.Permission)
	}
*/
package mifare
