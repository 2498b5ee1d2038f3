// Command cborlite-inspect encodes and decodes items in the CBOR
// subset implemented by pkg/cborlite.
//
// Usage:
//
//	cborlite-inspect <command> [flags] [args]
//
// Commands:
//
//	decode       Decode hex-encoded items to diagnostic notation
//	encode       Encode a value and print its hex encoding
//	interactive  Start an interactive encode/decode shell
//
// Examples:
//
//	# Decode a single item
//	cborlite-inspect decode 1903e8
//
//	# Decode an item sequence from stdin, with header details
//	echo 01626162 | cborlite-inspect decode -verbose
//
//	# Encode values
//	cborlite-inspect encode uint 1000
//	cborlite-inspect encode int -256
//	cborlite-inspect encode bytes deadbeef
//	cborlite-inspect encode text "hello world"
package main

import (
	"fmt"
	"os"

	"github.com/mash-protocol/cborlite-go/cmd/cborlite-inspect/commands"
)

const usage = `cborlite-inspect - CBOR subset encoder/decoder

Usage:
  cborlite-inspect <command> [flags] [args]

Commands:
  decode       Decode hex-encoded items to diagnostic notation
  encode       Encode a value and print its hex encoding
  interactive  Start an interactive encode/decode shell

Use "cborlite-inspect <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "decode":
		exitCode = commands.RunDecode(args, os.Stdin, os.Stdout, os.Stderr)
	case "encode":
		exitCode = commands.RunEncode(args, os.Stdout, os.Stderr)
	case "interactive":
		exitCode = commands.RunInteractive(os.Stderr)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		exitCode = 1
	}

	os.Exit(exitCode)
}
