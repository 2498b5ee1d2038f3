// Package commands implements the cborlite-inspect CLI commands.
package commands

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mash-protocol/cborlite-go/pkg/cborlite"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitDecodeError  = 2
)

// DecodeOptions configures the decode command.
type DecodeOptions struct {
	Verbose bool
	Strict  bool
	Hex     string
}

// RunDecode runs the decode command. Input is hex, taken from the
// positional arguments or from stdin when none are given. The input
// may hold a sequence of items; each is decoded in turn.
func RunDecode(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseDecodeArgs(args, stdin)
	if err != nil {
		if err == flag.ErrHelp {
			printDecodeUsage(stderr)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	data, err := hex.DecodeString(opts.Hex)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid hex input: %v\n", err)
		return exitCommandError
	}
	if len(data) == 0 {
		fmt.Fprintln(stderr, "Error: empty input")
		return exitCommandError
	}

	offset := 0
	for offset < len(data) {
		rest := data[offset:]

		value, n, err := cborlite.Decode(rest)
		if err != nil {
			fmt.Fprintf(stderr, "Error: decode failed at offset %d: %v\n", offset, err)
			return exitDecodeError
		}

		canonical, _ := cborlite.Canonical(rest)
		if opts.Strict && !canonical {
			fmt.Fprintf(stderr, "Error: non-canonical header at offset %d\n", offset)
			return exitDecodeError
		}

		if opts.Verbose {
			fmt.Fprintf(stdout, "offset %d: %s (%s, %d bytes, canonical=%v)\n",
				offset, cborlite.DiagnoseValue(value), kindName(value), n, canonical)
		} else {
			fmt.Fprintln(stdout, cborlite.DiagnoseValue(value))
		}

		offset += n
	}

	return exitSuccess
}

// kindName returns a human-readable name for the value's kind.
func kindName(v cborlite.Value) string {
	switch v.(type) {
	case cborlite.Uint:
		return "unsigned integer"
	case cborlite.Int:
		return "negative integer"
	case cborlite.Bytes:
		return "byte string"
	case cborlite.Text:
		return "text string"
	default:
		return "unknown"
	}
}

func parseDecodeArgs(args []string, stdin io.Reader) (DecodeOptions, error) {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := DecodeOptions{}

	fs.BoolVar(&opts.Verbose, "verbose", false, "Show kind, size, and canonicity per item")
	fs.BoolVar(&opts.Verbose, "v", false, "Show kind, size, and canonicity per item (shorthand)")
	fs.BoolVar(&opts.Strict, "strict", false, "Reject non-canonical headers")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		opts.Hex = strings.Join(fs.Args(), "")
	} else {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return opts, fmt.Errorf("failed to read stdin: %w", err)
		}
		opts.Hex = strings.TrimSpace(string(raw))
	}

	// Allow whitespace-separated hex dumps.
	opts.Hex = strings.Join(strings.Fields(opts.Hex), "")
	return opts, nil
}

func printDecodeUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cborlite-inspect decode [options] [hex...]

Reads hex-encoded items from the arguments, or from stdin when no
arguments are given, and prints one line of diagnostic notation per
item.

Options:
  -v, -verbose  Show kind, size, and canonicity per item
  -strict       Reject non-canonical headers

Examples:
  cborlite-inspect decode 1903e8
  echo "44 01 02 03 04" | cborlite-inspect decode -verbose`)
}
