// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/pflag"

	"github.com/cborcanon/cborcanon/lib/cbor"
	"github.com/cborcanon/cborcanon/lib/tagregistry"
)

var (
	zstdFrameMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "cbor-inspect: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var tagsPath string

	flagSet := pflag.NewFlagSet("cbor-inspect", pflag.ContinueOnError)
	flagSet.StringVar(&tagsPath, "tags", "", "JSONC file of tag-number -> name overrides")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			fmt.Fprint(os.Stderr, "cbor-inspect [flags] [file]\n\n")
			flagSet.PrintDefaults()
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		fmt.Fprint(os.Stderr, "cbor-inspect [flags] [file]\n\n")
		flagSet.PrintDefaults()
		return nil
	}

	positional := flagSet.Args()
	if len(positional) > 1 {
		return fmt.Errorf("unexpected argument: %s", positional[1])
	}

	var raw io.Reader = os.Stdin
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

	root, err := cbor.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	tags := tagregistry.Default()
	var namer cbor.TagNamer = tags
	if tagsPath != "" {
		custom, err := tagregistry.Load(tagsPath)
		if err != nil {
			return err
		}
		namer = tags.Merge(custom)
	}

	program := tea.NewProgram(NewModel(root, namer), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// openInput returns a reader over r's contents, transparently
// decompressing a leading zstd or LZ4 frame, the same sniffing
// cmd/cbordump performs on its own input.
func openInput(r io.Reader) (io.Reader, func(), error) {
	buffered := bufio.NewReader(r)
	magic, err := buffered.Peek(4)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, nil, fmt.Errorf("reading input header: %w", err)
	}

	switch {
	case bytes.Equal(magic, zstdFrameMagic):
		decoder, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		return decoder, decoder.Close, nil

	case bytes.Equal(magic, lz4FrameMagic):
		return lz4.NewReader(buffered), func() {}, nil

	default:
		return buffered, func() {}, nil
	}
}
