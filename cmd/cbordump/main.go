// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/cborcanon/cborcanon/lib/cbor"
	"github.com/cborcanon/cborcanon/lib/tagregistry"
)

const version = "0.1.0"

// exitCoder lets run's caller translate a validation failure into a
// specific process exit status instead of the generic 1.
type exitCoder struct {
	err  error
	code int
}

func (e *exitCoder) Error() string { return e.err.Error() }
func (e *exitCoder) ExitCode() int { return e.code }

func usageError(format string, args ...any) error {
	return &exitCoder{err: fmt.Errorf(format, args...), code: 2}
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "cbordump: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 0 && args[0] == "--version" {
		fmt.Fprintf(stdout, "cbordump %s\n", version)
		return nil
	}

	var annotated bool
	var color bool
	var diagnostic bool
	var yamlOut bool
	var tagsPath string
	var digest bool

	flagSet := pflag.NewFlagSet("cbordump", pflag.ContinueOnError)
	flagSet.BoolVarP(&annotated, "annotated", "a", false, "render a structural dump with one note per item, instead of plain hex")
	flagSet.BoolVar(&color, "color", false, "color the annotated dump and syntax-highlight diagnostic/YAML output (default: auto-detect a terminal)")
	flagSet.BoolVar(&diagnostic, "diagnostic", false, "render as RFC 8949 diagnostic notation instead of hex")
	flagSet.BoolVar(&yamlOut, "yaml", false, "render as YAML instead of hex")
	flagSet.StringVar(&tagsPath, "tags", "", "JSONC file of tag-number -> name overrides for --annotated and --diagnostic")
	flagSet.BoolVar(&digest, "digest", false, "print the BLAKE3 digest of the canonical encoding instead of rendering it")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet, stdout)
			return nil
		}
		return usageError("%w", err)
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, stdout)
		return nil
	}

	if diagnostic && yamlOut {
		return usageError("--diagnostic and --yaml are mutually exclusive")
	}
	if annotated && (diagnostic || yamlOut) {
		return usageError("--annotated only applies to the hex dump, not --diagnostic or --yaml")
	}

	if !flagSet.Changed("color") {
		if file, ok := stdout.(*os.File); ok {
			color = term.IsTerminal(int(file.Fd()))
		}
	}

	positional := flagSet.Args()
	if len(positional) > 1 {
		return usageError("unexpected argument: %s", positional[1])
	}

	var raw io.Reader = stdin
	if len(positional) == 1 {
		file, err := os.Open(positional[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", positional[0], err)
		}
		defer file.Close()
		raw = file
	}

	decompressed, closeInput, err := openInput(raw)
	if err != nil {
		return err
	}
	defer closeInput()

	data, err := io.ReadAll(decompressed)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	value, err := cbor.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	if digest {
		// Decode already rejects anything that isn't minimal-width,
		// sorted, and otherwise canonical (spec's Core Deterministic
		// Encoding profile), so a value that reached this point is
		// guaranteed to re-encode to exactly data — the "--digest
		// exits non-zero on non-canonical input" behavior comes for
		// free from the decode step above, not a separate check here.
		fmt.Fprintln(stdout, cbor.FormatDigest(cbor.Digest(value)))
		return nil
	}

	switch {
	case diagnostic:
		tags, err := loadTagNamer(tagsPath)
		if err != nil {
			return err
		}
		text, err := diagnosticNotation(value, tags)
		if err != nil {
			return err
		}
		return writeHighlighted(stdout, text, color, "json")
	case yamlOut:
		converted, err := valueToAny(value)
		if err != nil {
			return err
		}
		text, err := yaml.Marshal(converted)
		if err != nil {
			return fmt.Errorf("rendering yaml: %w", err)
		}
		return writeHighlighted(stdout, string(text), color, "yaml")
	default:
		tags, err := loadTagNamer(tagsPath)
		if err != nil {
			return err
		}
		dump := cbor.Dump(value, annotated, tags)
		if annotated && color {
			dump = colorizeAnnotated(stdout, dump)
		}
		fmt.Fprint(stdout, dump)
		return nil
	}
}

// loadTagNamer returns the default tag registry, merged with the
// JSONC file at path if one was given; nil path means built-ins only.
func loadTagNamer(path string) (cbor.TagNamer, error) {
	base := tagregistry.Default()
	if path == "" {
		return base, nil
	}
	custom, err := tagregistry.Load(path)
	if err != nil {
		return nil, err
	}
	return base.Merge(custom), nil
}

// writeHighlighted writes text to stdout, optionally syntax-highlighted
// using the lexer named by lang ("json" also covers diagnostic
// notation, which is JSON-like enough for its tokens to land right).
func writeHighlighted(stdout io.Writer, text string, color bool, lang string) error {
	text = strings.TrimRight(text, "\n")
	if !color {
		fmt.Fprintln(stdout, text)
		return nil
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, lang, "terminal256", "monokai"); err != nil {
		return fmt.Errorf("highlighting output: %w", err)
	}
	_, err := stdout.Write(buf.Bytes())
	return err
}

func printHelp(flagSet *pflag.FlagSet, stdout io.Writer) {
	fmt.Fprint(stdout, `cbordump decodes a canonical CBOR document and renders it.

Reads from a file argument, or stdin if none is given. Input beginning
with a zstd or LZ4 frame magic number is transparently decompressed
first.

Usage:
  cbordump [flags] [file]

Flags:
`)
	flagSet.SetOutput(stdout)
	flagSet.PrintDefaults()
}
