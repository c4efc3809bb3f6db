package lz4stream

import (
	"errors"
)

// Preferences selects the container behavior for a single compress or
// decompress operation. A zero Preferences is not useful; start from
// DefaultPreferences and adjust.
//
// Preferences are plain values: validation happens on entry to each
// operation and there is no process-wide state.
type Preferences struct {
	// BlockSizeID selects the frame block size class: 4, 5, 6 or 7,
	// mapping to 64KB, 256KB, 1MB and 4MB blocks (default 7).
	BlockSizeID int

	// BlockChecksum appends a checksum to every compressed block
	// (default false).
	BlockChecksum bool

	// StreamChecksum appends a whole-content checksum to the frame
	// (default true).
	StreamChecksum bool

	// BlockIndependent marks blocks as compressed independently of each
	// other (default true). The frame engine only produces independent
	// blocks; the flag is validated and recorded for callers that
	// inspect preferences, and linked-block frames are still decoded.
	BlockIndependent bool

	// ContentSize embeds the uncompressed size in the frame header
	// (default false). Only the file-level API knows the source size;
	// stream compression leaves the field out regardless.
	ContentSize bool

	// SparseOutput converts long zero runs in decoded data into forward
	// seeks on the destination instead of literal writes (default
	// false). Requires the destination to be seekable.
	SparseOutput bool

	// Overwrite permits destructive behavior: the file-level API may
	// replace existing outputs, and decompression copies input that
	// starts with an unrecognized magic number verbatim to the output
	// instead of failing (default true).
	Overwrite bool
}

// DefaultPreferences returns the standard container settings: 4MB
// independent blocks, stream checksum on, block checksums off, plain
// (non-sparse) output, overwrite permitted.
func DefaultPreferences() Preferences {
	return Preferences{
		BlockSizeID:      MaxBlockSizeID,
		BlockChecksum:    false,
		StreamChecksum:   true,
		BlockIndependent: true,
		ContentSize:      false,
		SparseOutput:     false,
		Overwrite:        true,
	}
}

// validate rejects out-of-range settings before any I/O happens.
func (p Preferences) validate() error {
	_, err := BlockSizeFromID(p.BlockSizeID)
	return err
}

// Result reports what a decompression operation found and produced.
type Result struct {
	// Size is the total number of decoded bytes across all segments.
	Size int64

	// Streams counts the decoded frame and legacy segments.
	Streams int

	// SkippableRegions counts skippable regions seeked over.
	SkippableRegions int

	// SparseBytesSkipped is the number of zero bytes represented as
	// holes instead of literal writes (sparse output only).
	SparseBytesSkipped int64

	// TrailingData is set when input after the last valid segment did
	// not match any known magic number. Such bytes are ignored rather
	// than treated as an error, so that valid streams followed by
	// padding still decode; callers that care can check this flag.
	TrailingData bool
}

var (
	// ErrHeaderUnreadable means a magic number was cut short: the input
	// ended after 1 to 3 of its 4 bytes.
	ErrHeaderUnreadable = errors.New("lz4stream: magic number unreadable")

	// ErrUnrecognizedHeader means the very first magic number of the
	// input matched no known format and overwrite mode was off.
	ErrUnrecognizedHeader = errors.New("lz4stream: unrecognized header")

	// ErrSkipLengthUnreadable means a skippable region's 4-byte length
	// field was cut short.
	ErrSkipLengthUnreadable = errors.New("lz4stream: skippable region length unreadable")

	// ErrSkipSeek means seeking over a skippable region failed, for
	// example because the declared length runs past the end of input.
	ErrSkipSeek = errors.New("lz4stream: cannot skip skippable region")

	// ErrBlockRead means a legacy block was shorter than its size prefix
	// declared.
	ErrBlockRead = errors.New("lz4stream: cannot read compressed block")

	// ErrCorruptBlock means legacy block decompression failed.
	ErrCorruptBlock = errors.New("lz4stream: corrupted compressed block")

	// ErrBlockWrite means decoded data could not be written out in full.
	ErrBlockWrite = errors.New("lz4stream: cannot write decoded block")

	// ErrFrameDecode means the frame engine rejected the stream.
	ErrFrameDecode = errors.New("lz4stream: frame decoding failed")

	// ErrFrameEncode means the frame engine failed while compressing.
	ErrFrameEncode = errors.New("lz4stream: frame encoding failed")

	// ErrPassthroughWrite means copying unrecognized input verbatim
	// failed.
	ErrPassthroughWrite = errors.New("lz4stream: pass-through copy failed")

	// ErrSparseOutput means sparse writing failed: the destination is
	// not seekable, or a seek or write materializing a hole failed.
	ErrSparseOutput = errors.New("lz4stream: sparse output failed")

	// ErrBlockSizeID means an out-of-range block-size class identifier
	// was supplied.
	ErrBlockSizeID = errors.New("lz4stream: invalid block size identifier")
)
