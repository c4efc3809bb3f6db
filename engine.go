package lz4stream

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// levelTable maps the 0..9 compression levels of the public API onto the
// frame engine's level constants. 0 is the fast path; anything above 9 is
// clamped.
var levelTable = [...]lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1, lz4.Level2, lz4.Level3,
	lz4.Level4, lz4.Level5, lz4.Level6,
	lz4.Level7, lz4.Level8, lz4.Level9,
}

func compressionLevel(level int) lz4.CompressionLevel {
	if level <= 0 {
		return lz4.Fast
	}
	if level >= len(levelTable) {
		level = len(levelTable) - 1
	}
	return levelTable[level]
}

// newFrameReader creates a streaming decoder for one frame segment. The
// dispatcher has already consumed the 4 magic bytes, but the engine expects
// to see the full header from the start, so they are replayed ahead of the
// remaining input.
func newFrameReader(src io.Reader, magic []byte) *lz4.Reader {
	return lz4.NewReader(io.MultiReader(bytes.NewReader(magic), src))
}

// newFrameWriter creates a streaming encoder configured from prefs. A
// contentSize >= 0 is embedded in the frame header when the ContentSize
// preference is set; pass -1 when the source size is unknown.
func newFrameWriter(dst io.Writer, level int, prefs Preferences, contentSize int64) (*lz4.Writer, error) {
	blockSize, err := BlockSizeFromID(prefs.BlockSizeID)
	if err != nil {
		return nil, err
	}

	opts := []lz4.Option{
		lz4.BlockSizeOption(lz4.BlockSize(blockSize)),
		lz4.BlockChecksumOption(prefs.BlockChecksum),
		lz4.ChecksumOption(prefs.StreamChecksum),
		lz4.CompressionLevelOption(compressionLevel(level)),
		// The container is strictly sequential; keep the engine that way
		// too.
		lz4.ConcurrencyOption(1),
	}
	if prefs.ContentSize && contentSize >= 0 {
		opts = append(opts, lz4.SizeOption(uint64(contentSize)))
	}

	zw := lz4.NewWriter(dst)
	if err := zw.Apply(opts...); err != nil {
		return nil, err
	}
	return zw, nil
}
