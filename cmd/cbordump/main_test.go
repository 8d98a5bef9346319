// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/cborcanon/cborcanon/lib/cbor"
)

func encodeToFile(t *testing.T, v cbor.Value) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "value.cbor")
	if err := os.WriteFile(path, cbor.Encode(v), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPlainHexDump(t *testing.T) {
	path := encodeToFile(t, cbor.Array(cbor.Unsigned(1), cbor.Unsigned(2)))

	var out bytes.Buffer
	if err := run([]string{path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "820102"
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("run output = %q, want %q", got, want)
	}
}

func TestRunAnnotatedDumpMentionsStructure(t *testing.T) {
	path := encodeToFile(t, cbor.TextString("hi"))

	var out bytes.Buffer
	if err := run([]string{"--annotated", path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `text("hi")`) {
		t.Errorf("annotated output %q missing text note", out.String())
	}
}

func TestRunAnnotatedColorStillContainsStructure(t *testing.T) {
	path := encodeToFile(t, cbor.TextString("hi"))

	var out bytes.Buffer
	if err := run([]string{"--annotated", "--color", path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "hi") {
		t.Errorf("colorized annotated output %q missing text content", out.String())
	}
}

func TestRunDiagnosticNotation(t *testing.T) {
	m := cbor.NewMap().Insert(cbor.TextString("a"), cbor.Unsigned(1))
	path := encodeToFile(t, cbor.MapValue(m))

	var out bytes.Buffer
	if err := run([]string{"--diagnostic", path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `"a": 1`) {
		t.Errorf("diagnostic output %q missing expected field", out.String())
	}
}

func TestRunDiagnosticRendersBytesTagAndNonTextKeys(t *testing.T) {
	m := cbor.NewMap().Insert(cbor.Unsigned(7), cbor.TextString("seven"))
	doc := cbor.Array(
		cbor.Bytes([]byte{0x01, 0x02, 0xff}),
		cbor.Tagged(32, cbor.TextString("http://example.com")),
		cbor.MapValue(m),
	)
	path := encodeToFile(t, doc)

	var out bytes.Buffer
	if err := run([]string{"--diagnostic", path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{`h'0102ff'`, `32(`, `"http://example.com"`, "7: "} {
		if !strings.Contains(got, want) {
			t.Errorf("diagnostic output %q missing %q", got, want)
		}
	}
}

func TestRunYAML(t *testing.T) {
	path := encodeToFile(t, cbor.Array(cbor.Bool(true), cbor.Null()))

	var out bytes.Buffer
	if err := run([]string{"--yaml", path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "true") {
		t.Errorf("yaml output %q missing expected field", out.String())
	}
}

func TestRunYAMLFallsBackToFmtSprintForNonTextMapKeys(t *testing.T) {
	m := cbor.NewMap().Insert(cbor.Unsigned(7), cbor.TextString("seven"))
	path := encodeToFile(t, cbor.MapValue(m))

	var out bytes.Buffer
	if err := run([]string{"--yaml", path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `"7": seven`) && !strings.Contains(out.String(), "7: seven") {
		t.Errorf("yaml output %q missing the non-text key's fmt.Sprint fallback", out.String())
	}
}

func TestRunDigest(t *testing.T) {
	v := cbor.Unsigned(42)
	path := encodeToFile(t, v)

	var out bytes.Buffer
	if err := run([]string{"--digest", path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := cbor.FormatDigest(cbor.Digest(v))
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("digest output = %q, want %q", got, want)
	}
}

func TestRunRejectsConflictingRenderFlags(t *testing.T) {
	path := encodeToFile(t, cbor.Unsigned(1))

	var out bytes.Buffer
	err := run([]string{"--diagnostic", "--yaml", path}, nil, &out)
	if err == nil {
		t.Fatal("expected an error for conflicting render flags")
	}
	if coder, ok := err.(interface{ ExitCode() int }); !ok || coder.ExitCode() != 2 {
		t.Errorf("error %v does not carry exit code 2", err)
	}
}

func TestRunDecompressesZstdInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "value.cbor.zst")

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := encoder.EncodeAll(cbor.Encode(cbor.Unsigned(7)), nil)
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{path}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "07" {
		t.Errorf("run output = %q, want 07", got)
	}
}

func TestRunReadsFromStdinWhenNoPathGiven(t *testing.T) {
	var out bytes.Buffer
	in := bytes.NewReader(cbor.Encode(cbor.Unsigned(9)))
	if err := run(nil, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "09" {
		t.Errorf("run output = %q, want 09", got)
	}
}

func TestRunDigestRejectsNonCanonicalInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noncanonical.cbor")
	// 24 encoded with a 2-byte argument width (0x19 0x00 0x18) instead
	// of the minimal 1-byte form (0x18 0x18): a non-canonical integer.
	wideEncoded24 := []byte{0x19, 0x00, 0x18}
	if err := os.WriteFile(path, wideEncoded24, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := run([]string{"--digest", path}, nil, &out)
	if err == nil {
		t.Fatal("expected a decode error for a non-canonical integer")
	}
	if !strings.Contains(err.Error(), "nonCanonicalNumeric") {
		t.Errorf("error %q missing nonCanonicalNumeric", err)
	}
}

func TestRunVersionFlag(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--version"}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("--version output %q missing version string", out.String())
	}
}
