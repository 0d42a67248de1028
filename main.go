package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/li0ard/mfdread/pkg/mifare"
	"github.com/li0ard/mfdread/pkg/report"
)

func main() {
	plain := flag.Bool("n", false, "disable colored output")
	force1K := flag.Bool("1", false, "decode only the first 1024 bytes (force the 1K layout)")
	longUID := flag.Bool("7", false, "card uses a 7-byte UID")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if *plain {
		color.NoColor = true
	}

	opts := mifare.Options{Force1K: *force1K, UIDLength: 4}
	if *longUID {
		opts.UIDLength = 7
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error reading dump: %s", err)
	}

	dump, err := mifare.ParseDump(data, opts)
	if err != nil {
		log.Fatalf("Error decoding dump: %s", err)
	}

	if dump.Truncated > 0 {
		fmt.Fprintf(os.Stderr, "Warning: 1K layout forced, ignoring the last %d bytes of the dump\n", dump.Truncated)
	}

	printReport(data, dump)
}

// printReport writes the identity header and the per-block table to stdout.
func printReport(data []byte, dump *mifare.Dump) {
	fmt.Printf("File size: %d bytes. Expected %d sectors\n\n", len(data), len(dump.Sectors))

	identity, err := report.NewCardIdentity(dump.Sectors[0].Block(0), dump.Options().UIDLength)
	if err != nil {
		log.Fatalf("Error reading manufacturer block: %s", err)
	}
	fmt.Println(identity.Describe())
	fmt.Println()

	report.NewTable(report.DefaultPalette()).Render(os.Stdout, dump)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [-n] [-1] [-7] dump.mfd
Mifare Classic dump reader.

`, os.Args[0])
	flag.PrintDefaults()
}
