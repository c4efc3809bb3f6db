package lz4stream

import (
	"bytes"
	"testing"
)

func TestCompressBytesRoundTrip(t *testing.T) {
	data := textData(50 << 10)

	for _, prefs := range []Preferences{DefaultPreferences(), FastPreferences(), ArchivalPreferences()} {
		compressed, err := CompressBytes(data, 1, prefs)
		if err != nil {
			t.Fatalf("CompressBytes: %v", err)
		}
		if len(compressed) >= len(data) {
			t.Fatalf("text did not compress: %d -> %d bytes", len(data), len(compressed))
		}

		got, res, err := DecompressBytes(compressed, prefs)
		if err != nil {
			t.Fatalf("DecompressBytes: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatal("byte round trip corrupted the data")
		}
		if res.Size != int64(len(data)) || res.Streams != 1 {
			t.Fatalf("Result = %+v", res)
		}
	}
}

func TestPresetPreferencesValid(t *testing.T) {
	for _, p := range []Preferences{FastPreferences(), ArchivalPreferences()} {
		if err := p.validate(); err != nil {
			t.Fatalf("preset does not validate: %v", err)
		}
	}
	if !ArchivalPreferences().ContentSize {
		t.Fatal("archival preset must record the content size")
	}
}

func TestCompressionRatio(t *testing.T) {
	if got := CompressionRatio(100, 50); got != 0.5 {
		t.Fatalf("ratio = %v, want 0.5", got)
	}
	if got := CompressionRatio(0, 50); got != 0 {
		t.Fatalf("ratio for empty input = %v, want 0", got)
	}
	if got := SpaceSavings(100, 25); got != 75 {
		t.Fatalf("savings = %v, want 75", got)
	}
}

func TestDetectFormat(t *testing.T) {
	data := textData(1 << 10)
	framed := mustCompress(t, data, 1, DefaultPreferences())
	if got := DetectFormat(framed); got != FormatFrame {
		t.Fatalf("DetectFormat(frame) = %v", got)
	}

	legacy := legacyStream(t, data)
	if got := DetectFormat(legacy); got != FormatLegacy {
		t.Fatalf("DetectFormat(legacy) = %v", got)
	}

	if got := DetectFormat(skippableRegion(0xA, []byte("pad"))); got != FormatSkippable {
		t.Fatalf("DetectFormat(skippable) = %v", got)
	}

	if got := DetectFormat([]byte("hello world")); got != FormatUnknown {
		t.Fatalf("DetectFormat(plain text) = %v", got)
	}
	if got := DetectFormat([]byte{0x04}); got != FormatUnknown {
		t.Fatalf("DetectFormat(short input) = %v", got)
	}
}

func TestPathHelpers(t *testing.T) {
	if got := CompressedPath("data.txt"); got != "data.txt.lz4" {
		t.Fatalf("CompressedPath = %q", got)
	}
	if got := DecompressedPath("data.txt.lz4"); got != "data.txt" {
		t.Fatalf("DecompressedPath = %q", got)
	}
	if got := DecompressedPath("data.bin"); got != "data.bin.out" {
		t.Fatalf("DecompressedPath without suffix = %q", got)
	}
	if !HasExtension("ARCHIVE.LZ4") {
		t.Fatal("extension check must be case-insensitive")
	}
	if HasExtension("archive.gz") {
		t.Fatal("foreign extension accepted")
	}
}
