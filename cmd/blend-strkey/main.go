package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/christopherkarani/blendv3-sub002/addrbook"
	"github.com/christopherkarani/blendv3-sub002/contractid"
	"github.com/christopherkarani/blendv3-sub002/strkey"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "validate":
		return cmdValidate(args[1:], out, errOut)
	case "convert":
		return cmdConvert(args[1:], in, out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "book":
		return cmdBook(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "blend-strkey: Soroban contract-address StrKey conversion")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  blend-strkey encode <64-char-hex>")
	fmt.Fprintln(w, "  blend-strkey decode <strkey>")
	fmt.Fprintln(w, "  blend-strkey validate <value>")
	fmt.Fprintln(w, "  blend-strkey convert            # one value per stdin line, direction auto-detected")
	fmt.Fprintln(w, "  blend-strkey cid <strkey|hex>   # CIDv1 for the contract hash")
	fmt.Fprintln(w, "  blend-strkey book add --label <label> [--notes <text>] [--file <path>] <strkey>")
	fmt.Fprintln(w, "  blend-strkey book list [--file <path>]")
	fmt.Fprintln(w, "  blend-strkey book rm [--file <path>] <strkey>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - hex input is case-insensitive; StrKey output is always 56 chars starting with C")
	fmt.Fprintln(w, "  - the book defaults to ~/.blend/addrbook.json")
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: blend-strkey encode <64-char-hex>")
		return 2
	}
	addr, err := strkey.Encode(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, addr)
	return 0
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: blend-strkey decode <strkey>")
		return 2
	}
	hexHash, err := strkey.Decode(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, hexHash)
	return 0
}

func cmdValidate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: blend-strkey validate <value>")
		return 2
	}
	if !strkey.IsValidContractAddress(fs.Arg(0)) {
		_, _ = fmt.Fprintln(out, "invalid")
		return 1
	}
	_, _ = fmt.Fprintln(out, "valid")
	return 0
}

// cmdConvert reads one value per line and converts in whichever direction
// applies: StrKey lines are decoded to hex, everything else is encoded.
// A line that converts in neither direction fails the run.
func cmdConvert(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: blend-strkey convert < lines")
		return 2
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	failed := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if hexHash, err := strkey.Decode(line); err == nil {
			_, _ = fmt.Fprintln(out, hexHash)
			continue
		}
		addr, err := strkey.Encode(line)
		if err != nil {
			fmt.Fprintf(errOut, "line %d: %v\n", lineNo, err)
			failed = true
			continue
		}
		_, _ = fmt.Fprintln(out, addr)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "read stdin: %v\n", err)
		return 1
	}
	if failed {
		return 1
	}
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: blend-strkey cid <strkey|hex>")
		return 2
	}

	value := fs.Arg(0)
	if !strkey.IsValidContractAddress(value) {
		// Accept the hex form too, for values pasted straight from RPC.
		addr, err := strkey.Encode(value)
		if err != nil {
			fmt.Fprintf(errOut, "cid: %v\n", err)
			return 1
		}
		value = addr
	}
	id, err := contractid.FromAddress(value)
	if err != nil {
		fmt.Fprintf(errOut, "cid: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, id.String())
	return 0
}

func cmdBook(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: blend-strkey book <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: add, list, rm")
		return 2
	}
	switch args[0] {
	case "add":
		return cmdBookAdd(args[1:], out, errOut)
	case "list":
		return cmdBookList(args[1:], out, errOut)
	case "rm":
		return cmdBookRemove(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown book subcommand: %s\n", args[0])
		return 2
	}
}

func cmdBookAdd(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("book add", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var notes string
	var file string
	fs.StringVar(&label, "label", "", "Human-readable label for the contract")
	fs.StringVar(&notes, "notes", "", "Optional free-form notes")
	fs.StringVar(&file, "file", "", "Book file (default ~/.blend/addrbook.json)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if label == "" {
		fmt.Fprintln(errOut, "missing --label")
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: blend-strkey book add --label <label> [--notes <text>] [--file <path>] <strkey>")
		return 2
	}

	book, err := addrbook.Open(file)
	if err != nil {
		fmt.Fprintf(errOut, "book: %v\n", err)
		return 1
	}
	if err := book.Put(fs.Arg(0), label, notes); err != nil {
		fmt.Fprintf(errOut, "book add: %v\n", err)
		return 1
	}
	entry, err := book.Lookup(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "book add: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(out, "%s\t%s\n", entry.Address, entry.Label)
	return 0
}

func cmdBookList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("book list", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var file string
	fs.StringVar(&file, "file", "", "Book file (default ~/.blend/addrbook.json)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	book, err := addrbook.Open(file)
	if err != nil {
		fmt.Fprintf(errOut, "book: %v\n", err)
		return 1
	}
	entries, err := book.List()
	if err != nil {
		fmt.Fprintf(errOut, "book list: %v\n", err)
		return 1
	}
	for _, e := range entries {
		if e.Notes == "" {
			_, _ = fmt.Fprintf(out, "%s\t%s\n", e.Address, e.Label)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", e.Address, e.Label, e.Notes)
	}
	return 0
}

func cmdBookRemove(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("book rm", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var file string
	fs.StringVar(&file, "file", "", "Book file (default ~/.blend/addrbook.json)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: blend-strkey book rm [--file <path>] <strkey>")
		return 2
	}
	book, err := addrbook.Open(file)
	if err != nil {
		fmt.Fprintf(errOut, "book: %v\n", err)
		return 1
	}
	if err := book.Remove(fs.Arg(0)); err != nil {
		if errors.Is(err, addrbook.ErrNotFound) {
			fmt.Fprintln(errOut, "book rm: no such entry")
			return 1
		}
		fmt.Fprintf(errOut, "book rm: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, "removed")
	return 0
}
