package lz4stream

import (
	"bytes"
)

// Preset preferences for common use cases.

// FastPreferences favors throughput: small independent blocks and no
// checksums.
func FastPreferences() Preferences {
	p := DefaultPreferences()
	p.BlockSizeID = MinBlockSizeID
	p.StreamChecksum = false
	return p
}

// ArchivalPreferences favors integrity for write-once data: large blocks,
// both checksum layers, and the content size recorded in the header.
func ArchivalPreferences() Preferences {
	p := DefaultPreferences()
	p.BlockSizeID = MaxBlockSizeID
	p.BlockChecksum = true
	p.StreamChecksum = true
	p.ContentSize = true
	return p
}

// CompressBytes is a one-shot in-memory Compress.
func CompressBytes(data []byte, level int, prefs Preferences) ([]byte, error) {
	var out bytes.Buffer
	if _, err := Compress(&out, bytes.NewReader(data), level, prefs); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecompressBytes is a one-shot in-memory Decompress.
func DecompressBytes(data []byte, prefs Preferences) ([]byte, Result, error) {
	var out bytes.Buffer
	res, err := Decompress(&out, bytes.NewReader(data), prefs)
	if err != nil {
		return nil, res, err
	}
	return out.Bytes(), res, nil
}

// CompressionRatio returns compressedSize/originalSize; lower is better.
func CompressionRatio(originalSize, compressedSize int64) float64 {
	if originalSize == 0 {
		return 0
	}
	return float64(compressedSize) / float64(originalSize)
}

// SpaceSavings returns the percentage of space saved, 0-100.
func SpaceSavings(originalSize, compressedSize int64) float64 {
	if originalSize == 0 {
		return 0
	}
	return (1 - float64(compressedSize)/float64(originalSize)) * 100
}
