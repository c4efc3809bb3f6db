package lz4stream

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// decodeLegacy decodes one legacy-format segment: a run of blocks, each a
// 4-byte little-endian size prefix followed by that many compressed bytes,
// decompressing into fixed 8MB blocks. The magic number has already been
// consumed by the dispatcher.
//
// The legacy format has no end marker. A segment ends at end of input, or
// at a size prefix too large to be a block, in which case those 4 bytes are
// rewound so the dispatcher can reinterpret them as the next magic number.
func decodeLegacy(dst io.Writer, src io.ReadSeeker) (int64, error) {
	in := make([]byte, legacyBlockBound)
	out := make([]byte, legacyBlockSize)

	var total int64
	for {
		var prefix [4]byte
		n, err := io.ReadFull(src, prefix[:])
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			// 1 to 3 stray bytes at the end of input. Leave them for
			// the dispatcher, same as an oversized prefix.
			if _, serr := src.Seek(int64(-n), io.SeekCurrent); serr != nil {
				return total, fmt.Errorf("%w: %v", ErrBlockRead, serr)
			}
			return total, nil
		}

		blockSize := binary.LittleEndian.Uint32(prefix[:])
		if blockSize > legacyBlockBound {
			// Not a block. Probably the start of the next stream.
			if _, err := src.Seek(-4, io.SeekCurrent); err != nil {
				return total, fmt.Errorf("%w: %v", ErrBlockRead, err)
			}
			return total, nil
		}

		if _, err := io.ReadFull(src, in[:blockSize]); err != nil {
			return total, fmt.Errorf("%w: block of %d bytes: %v", ErrBlockRead, blockSize, err)
		}

		decoded, err := lz4.UncompressBlock(in[:blockSize], out)
		if err != nil {
			return total, fmt.Errorf("%w: %v", ErrCorruptBlock, err)
		}

		if _, err := dst.Write(out[:decoded]); err != nil {
			return total, fmt.Errorf("%w: %v", ErrBlockWrite, err)
		}
		total += int64(decoded)
	}
}
