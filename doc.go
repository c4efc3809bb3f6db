// Package lz4stream reads and writes the LZ4 file container formats: the
// modern self-describing frame format, the old fixed-block legacy format,
// and skippable regions embedded between streams.
//
// The package sits between raw byte streams and the LZ4 codec. It detects
// which container an input uses from its magic number, strips or applies
// the framing, and drives the codec block by block. The compression and
// decompression algorithms themselves come from github.com/pierrec/lz4/v4.
//
// # Features
//
//   - Frame, legacy and skippable-region containers behind one entry point
//   - Concatenated streams decoded in order, trailing padding tolerated
//   - Sparse output: zero runs become file holes instead of stored zeros
//   - Verbatim pass-through of unrecognized input when permitted
//   - Block size classes 64KB to 4MB, block and stream checksums
//   - File-level helpers for any absfs filesystem
//
// # Quick Start
//
//	prefs := lz4stream.DefaultPreferences()
//
//	// Compress
//	var compressed bytes.Buffer
//	n, err := lz4stream.Compress(&compressed, src, 1, prefs)
//
//	// Decompress, possibly several concatenated streams
//	res, err := lz4stream.Decompress(dst, bytes.NewReader(compressed.Bytes()), prefs)
//	fmt.Println(res.Size, res.Streams)
//
// # Sparse Output
//
// With the SparseOutput preference set and a seekable destination such as
// an *os.File, long runs of decoded zero bytes are converted into forward
// seeks. The file reads back identically but occupies less disk space:
//
//	prefs.SparseOutput = true
//	out, _ := os.Create("restored.bin")
//	res, err := lz4stream.Decompress(out, in, prefs)
//	fmt.Println(res.SparseBytesSkipped)
//
// Decoding is strictly sequential and synchronous. Preferences are plain
// values validated on entry; every operation owns its buffers and engine
// state, so operations on distinct streams may run concurrently.
package lz4stream
