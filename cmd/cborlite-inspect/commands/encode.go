package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mash-protocol/cborlite-go/pkg/cborlite"
)

// RunEncode runs the encode command: encode <kind> <value>, where
// kind is uint, int, bytes, or text. The encoding is printed as hex.
func RunEncode(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "-help" || args[0] == "--help") {
		printEncodeUsage(stderr)
		return exitSuccess
	}
	if len(args) < 2 {
		fmt.Fprintln(stderr, "Error: expected a kind and a value")
		printEncodeUsage(stderr)
		return exitCommandError
	}

	kind := args[0]
	// Text values may contain spaces when the shell splits them.
	arg := strings.Join(args[1:], " ")

	data, err := encodeValue(kind, arg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	fmt.Fprintln(stdout, hex.EncodeToString(data))
	return exitSuccess
}

// encodeValue parses arg according to kind and returns the encoding.
func encodeValue(kind, arg string) ([]byte, error) {
	switch kind {
	case "uint":
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid unsigned integer %q: %w", arg, err)
		}
		return cborlite.EncodeUint(v), nil
	case "int":
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		return cborlite.EncodeInt(v), nil
	case "bytes":
		payload, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
		if err != nil {
			return nil, fmt.Errorf("invalid hex payload %q: %w", arg, err)
		}
		return cborlite.EncodeBytes(payload), nil
	case "text":
		return cborlite.EncodeText(arg), nil
	default:
		return nil, fmt.Errorf("unknown kind %q (want uint, int, bytes, or text)", kind)
	}
}

func printEncodeUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cborlite-inspect encode <kind> <value>

Kinds:
  uint   Unsigned decimal integer
  int    Signed decimal integer
  bytes  Hex-encoded payload
  text   UTF-8 text (remaining arguments are joined with spaces)

Examples:
  cborlite-inspect encode uint 1000
  cborlite-inspect encode int -256
  cborlite-inspect encode bytes deadbeef
  cborlite-inspect encode text hello world`)
}
