package lz4stream

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Container magic numbers, stored little-endian at the start of each stream
// segment. See https://github.com/lz4/lz4/blob/dev/doc/lz4_Frame_format.md.
const (
	frameMagic    uint32 = 0x184D2204 // modern self-describing frame format
	legacyMagic   uint32 = 0x184C2102 // old fixed-block format (lz4 <= r51)
	skippableBase uint32 = 0x184D2A50 // low 4 bits carry an application sub-id
	skippableMask uint32 = 0xFFFFFFF0

	magicSize = 4
)

const (
	// legacyBlockSize is the raw capacity of a block in the legacy
	// container: always 8MB, with no per-stream negotiation.
	legacyBlockSize = 8 << 20

	// frameBufferSize is the decoded-chunk buffer used when draining the
	// frame engine.
	frameBufferSize = 256 << 10

	// passthroughBufferSize is the copy chunk used when relaying
	// unrecognized input verbatim.
	passthroughBufferSize = 64 << 10
)

// legacyBlockBound is the worst-case compressed size of a full legacy block.
// A size prefix above this bound cannot be a block and marks the end of a
// legacy segment.
var legacyBlockBound = uint32(lz4.CompressBlockBound(legacyBlockSize))

// Admissible block-size class identifiers for the frame format.
const (
	MinBlockSizeID = 4
	MaxBlockSizeID = 7
)

// blockSizeTable maps class ids 4..7 to their byte sizes.
var blockSizeTable = [...]int{64 << 10, 256 << 10, 1 << 20, 4 << 20}

// BlockSizeFromID resolves a block-size class identifier (4, 5, 6 or 7) to
// its size in bytes: 64KB, 256KB, 1MB or 4MB. It returns ErrBlockSizeID for
// any other identifier.
func BlockSizeFromID(id int) (int, error) {
	if id < MinBlockSizeID || id > MaxBlockSizeID {
		return 0, fmt.Errorf("%w: %d (valid identifiers are %d through %d)",
			ErrBlockSizeID, id, MinBlockSizeID, MaxBlockSizeID)
	}
	return blockSizeTable[id-MinBlockSizeID], nil
}

// isSkippableMagic reports whether magic denotes a skippable region,
// ignoring the sub-id in the low 4 bits.
func isSkippableMagic(magic uint32) bool {
	return magic&skippableMask == skippableBase
}
