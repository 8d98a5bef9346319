// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	zstdFrameMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// openInput returns a reader over r's contents, transparently
// decompressing a leading zstd or LZ4 frame. Unlike
// lib/artifactstore's compress.go, which knows each chunk's size up
// front and compresses in-memory blocks, the dump's input is a stream
// of unknown length read from a file or stdin, so sniffing uses the
// frame magic and the streaming reader API rather than the block API.
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
