package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	cfg, err := parseFlags("etop", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := repl(cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// repl evaluates r one line at a time until EOF.
// Bad lines are reported and skipped; only a read error stops the loop.
// Lines may be of any length.
func repl(cfg *Config, r io.Reader, w io.Writer) error {
	fmt.Fprintf(w, "Language chosen: %s\n", cfg.Language)

	var trace io.Writer
	if cfg.Debug {
		trace = w
	}
	in := bufio.NewReader(r)
	for {
		fmt.Fprint(w, cfg.Prompt)
		line, err := in.ReadString('\n')
		if line != "" {
			result, evalErr := run(strings.TrimSpace(line), trace)
			if evalErr != nil {
				result = evalErr.Error()
			}
			fmt.Fprintf(w, "%s%s\n", cfg.ResultPrefix, result)
		}
		if errors.Is(err, io.EOF) {
			if line == "" {
				fmt.Fprintln(w)
				return nil
			}
			// the last line had no newline; the next read reports EOF again
			continue
		}
		if err != nil {
			fmt.Fprintln(w)
			return err
		}
	}
}
