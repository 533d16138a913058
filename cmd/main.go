package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ian-shakespeare/libscan/internal/lex"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lex: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("lex", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	plain := fs.Bool("plain", false, "print the token dump without styling")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	tokens, err := lex.Scan(input)
	if err != nil {
		return err
	}

	d := newDumper(stdout, *plain)
	return d.Dump(input, tokens)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		input, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return input, nil
	}

	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return input, nil
}
