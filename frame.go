package lz4stream

import (
	"fmt"
	"io"
)

// decodeFrame decodes one frame-format segment by draining a fresh frame
// engine chunk by chunk. Decoded chunks go through the sparse writer when
// SparseOutput is set, otherwise straight to dst.
//
// The engine consumes input in its own partial increments behind Read; this
// loop only sees whole decoded chunks, so sparse state carries naturally
// across chunk boundaries.
func decodeFrame(dst io.Writer, src io.Reader, magic []byte, prefs Preferences, res *Result) (int64, error) {
	zr := newFrameReader(src, magic)

	var sw *sparseWriter
	if prefs.SparseOutput {
		// Checked by Decompress before the first segment.
		sw = newSparseWriter(dst.(io.WriteSeeker))
	}

	buf := make([]byte, frameBufferSize)
	var total int64
	for {
		n, err := zr.Read(buf)
		if n > 0 {
			total += int64(n)
			if sw != nil {
				if _, werr := sw.Write(buf[:n]); werr != nil {
					return total, werr
				}
			} else if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, fmt.Errorf("%w: %v", ErrBlockWrite, werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("%w: %v", ErrFrameDecode, err)
		}
	}

	if sw != nil {
		// Materialize any pending hole so the output has its full
		// length. Runs exactly once per segment; a no-op when the last
		// chunk ended on data.
		if err := sw.Close(); err != nil {
			return total, err
		}
		res.SparseBytesSkipped += sw.skipped
	}
	return total, nil
}
