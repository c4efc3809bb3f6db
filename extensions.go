package lz4stream

import (
	"encoding/binary"
	"strings"
)

// Extension is the conventional filename suffix for LZ4 containers.
const Extension = ".lz4"

// Format identifies the container branch a stream opens with.
type Format int

const (
	FormatUnknown Format = iota
	FormatFrame
	FormatLegacy
	FormatSkippable
)

func (f Format) String() string {
	switch f {
	case FormatFrame:
		return "frame"
	case FormatLegacy:
		return "legacy"
	case FormatSkippable:
		return "skippable"
	}
	return "unknown"
}

// DetectFormat sniffs the magic number at the start of data. It needs at
// least four bytes; shorter input is FormatUnknown.
func DetectFormat(data []byte) Format {
	if len(data) < magicSize {
		return FormatUnknown
	}
	switch magic := binary.LittleEndian.Uint32(data); {
	case magic == frameMagic:
		return FormatFrame
	case magic == legacyMagic:
		return FormatLegacy
	case isSkippableMagic(magic):
		return FormatSkippable
	}
	return FormatUnknown
}

// HasExtension reports whether name carries the .lz4 suffix.
func HasExtension(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), Extension)
}

// CompressedPath returns the conventional output name for compressing name.
func CompressedPath(name string) string {
	return name + Extension
}

// DecompressedPath returns the conventional output name for decoding name:
// the .lz4 suffix stripped when present, otherwise name with ".out"
// appended so the source is never named as its own destination.
func DecompressedPath(name string) string {
	if HasExtension(name) {
		return name[:len(name)-len(Extension)]
	}
	return name + ".out"
}
