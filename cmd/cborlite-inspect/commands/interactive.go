package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mash-protocol/cborlite-go/pkg/cborlite"
)

// RunInteractive starts the interactive encode/decode shell.
func RunInteractive(stderr io.Writer) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cbor> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return exitCommandError
	}
	defer rl.Close()

	out := rl.Stdout()
	printInteractiveHelp(out)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return exitSuccess
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			printInteractiveHelp(out)

		case "decode", "d":
			cmdDecode(out, args)

		case "uint", "int", "bytes", "text":
			cmdEncode(out, cmd, args)

		case "quit", "exit", "q":
			fmt.Fprintln(out, "Exiting...")
			return exitSuccess

		default:
			fmt.Fprintf(out, "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func cmdDecode(out io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: decode <hex>")
		return
	}

	data, err := hex.DecodeString(strings.Join(args, ""))
	if err != nil {
		fmt.Fprintf(out, "Invalid hex: %v\n", err)
		return
	}

	offset := 0
	for offset < len(data) {
		value, n, err := cborlite.Decode(data[offset:])
		if err != nil {
			fmt.Fprintf(out, "Decode failed at offset %d: %v\n", offset, err)
			return
		}
		canonical, _ := cborlite.Canonical(data[offset:])
		fmt.Fprintf(out, "%s (%s, %d bytes, canonical=%v)\n",
			cborlite.DiagnoseValue(value), kindName(value), n, canonical)
		offset += n
	}
}

func cmdEncode(out io.Writer, kind string, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(out, "Usage: %s <value>\n", kind)
		return
	}

	data, err := encodeValue(kind, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintln(out, hex.EncodeToString(data))
}

func printInteractiveHelp(out io.Writer) {
	fmt.Fprintln(out, `
Commands:
  decode <hex>    - Decode hex-encoded items to diagnostic notation
  uint <value>    - Encode an unsigned integer
  int <value>     - Encode a signed integer
  bytes <hex>     - Encode a byte string
  text <value>    - Encode a text string
  help            - Show this help
  quit            - Exit the shell`)
}
