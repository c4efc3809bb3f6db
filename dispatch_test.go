package lz4stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func skippableRegion(subID byte, payload []byte) []byte {
	buf := make([]byte, 8+len(payload))
	binary.LittleEndian.PutUint32(buf, skippableBase|uint32(subID&0xF))
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(payload)))
	copy(buf[8:], payload)
	return buf
}

func TestSkippableRegionBetweenStreams(t *testing.T) {
	a := textData(20 << 10)
	b := textData(30 << 10)
	prefs := DefaultPreferences()

	var stream []byte
	stream = append(stream, mustCompress(t, a, 1, prefs)...)
	stream = append(stream, skippableRegion(0, []byte("opaque extension data"))...)
	stream = append(stream, mustCompress(t, b, 1, prefs)...)

	got, res := mustDecompress(t, stream, prefs)
	want := append(append([]byte(nil), a...), b...)
	if !bytes.Equal(got, want) {
		t.Fatal("skippable region disturbed the decoded concatenation")
	}
	if res.SkippableRegions != 1 {
		t.Fatalf("expected 1 skippable region, got %d", res.SkippableRegions)
	}
	if res.Streams != 2 {
		t.Fatalf("expected 2 streams, got %d", res.Streams)
	}
}

func TestSkippableSubIDsFold(t *testing.T) {
	data := textData(4 << 10)
	prefs := DefaultPreferences()

	// All 16 sub-ids must be recognized as skippable.
	for sub := byte(0); sub < 16; sub++ {
		stream := append(skippableRegion(sub, []byte{1, 2, 3}), mustCompress(t, data, 1, prefs)...)
		got, res := mustDecompress(t, stream, prefs)
		if !bytes.Equal(got, data) {
			t.Fatalf("sub-id %d: decode mismatch", sub)
		}
		if res.SkippableRegions != 1 {
			t.Fatalf("sub-id %d: region not counted", sub)
		}
	}
}

func TestSkippableLeadingRegionOnly(t *testing.T) {
	// A skippable region with nothing after it is a complete, empty input.
	got, res := mustDecompress(t, skippableRegion(3, []byte("padding")), DefaultPreferences())
	if len(got) != 0 || res.SkippableRegions != 1 || res.Streams != 0 {
		t.Fatalf("unexpected result: %d bytes, %+v", len(got), res)
	}
}

func TestSkippableTruncated(t *testing.T) {
	data := textData(4 << 10)
	prefs := DefaultPreferences()

	// Region declares 100 bytes but only 3 follow.
	region := skippableRegion(0, []byte("abc"))
	binary.LittleEndian.PutUint32(region[4:], 100)

	stream := append(mustCompress(t, data, 1, prefs), region...)
	var out bytes.Buffer
	_, err := Decompress(&out, bytes.NewReader(stream), prefs)
	if !errors.Is(err, ErrSkipSeek) {
		t.Fatalf("expected ErrSkipSeek for truncated region, got %v", err)
	}
}

func TestSkippableLengthUnreadable(t *testing.T) {
	stream := make([]byte, 6) // magic + 2 of 4 length bytes
	binary.LittleEndian.PutUint32(stream, skippableBase)

	var out bytes.Buffer
	_, err := Decompress(&out, bytes.NewReader(stream), DefaultPreferences())
	if !errors.Is(err, ErrSkipLengthUnreadable) {
		t.Fatalf("expected ErrSkipLengthUnreadable, got %v", err)
	}
}

func TestHeaderUnreadable(t *testing.T) {
	var out bytes.Buffer
	_, err := Decompress(&out, bytes.NewReader([]byte{0x04, 0x22}), DefaultPreferences())
	if !errors.Is(err, ErrHeaderUnreadable) {
		t.Fatalf("expected ErrHeaderUnreadable for a 2-byte input, got %v", err)
	}
}

func TestFrameDecodeError(t *testing.T) {
	// Valid frame magic followed by an invalid frame descriptor.
	stream := make([]byte, 12)
	binary.LittleEndian.PutUint32(stream, frameMagic)

	var out bytes.Buffer
	_, err := Decompress(&out, bytes.NewReader(stream), DefaultPreferences())
	if !errors.Is(err, ErrFrameDecode) {
		t.Fatalf("expected ErrFrameDecode, got %v", err)
	}
}

func TestErrorMessagesNonEmpty(t *testing.T) {
	prefs := DefaultPreferences()
	noOverwrite := prefs
	noOverwrite.Overwrite = false

	cases := []struct {
		name  string
		input []byte
		prefs Preferences
	}{
		{"short header", []byte{1, 2, 3}, prefs},
		{"unrecognized header", []byte("garbage here"), noOverwrite},
		{"short skippable length", skippableRegion(0, nil)[:6], prefs},
		{"bad frame descriptor", append([]byte{0x04, 0x22, 0x4D, 0x18}, make([]byte, 8)...), prefs},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		_, err := Decompress(&out, bytes.NewReader(tc.input), tc.prefs)
		if err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
		if err.Error() == "" {
			t.Fatalf("%s: empty error message", tc.name)
		}
		if !bytes.Contains([]byte(err.Error()), []byte("lz4stream")) {
			t.Fatalf("%s: message %q lacks package prefix", tc.name, err)
		}
	}
}
