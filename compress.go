package lz4stream

import (
	"fmt"
	"io"
)

// Compress reads src to the end and writes one frame-format stream to dst,
// returning the number of compressed bytes written (header and trailer
// included). level ranges from 0 (fastest) to 9 (best ratio).
func Compress(dst io.Writer, src io.Reader, level int, prefs Preferences) (int64, error) {
	return compressStream(dst, src, level, prefs, -1)
}

// compressStream is the sequential driver behind Compress: frame header,
// then input pushed through the engine one block at a time, then the
// trailer on Close. srcSize >= 0 is embedded in the header when the
// ContentSize preference asks for it.
func compressStream(dst io.Writer, src io.Reader, level int, prefs Preferences, srcSize int64) (int64, error) {
	if err := prefs.validate(); err != nil {
		return 0, err
	}
	blockSize, _ := BlockSizeFromID(prefs.BlockSizeID)

	cw := &countingWriter{w: dst}
	zw, err := newFrameWriter(cw, level, prefs, srcSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFrameEncode, err)
	}

	buf := make([]byte, blockSize)
	for {
		n, err := io.ReadFull(src, buf)
		if n > 0 {
			if _, werr := zw.Write(buf[:n]); werr != nil {
				zw.Close()
				return cw.n, fmt.Errorf("%w: %v", ErrFrameEncode, werr)
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			zw.Close()
			return cw.n, fmt.Errorf("%w: %v", ErrFrameEncode, err)
		}
	}

	// Close flushes the last block and writes the end mark and stream
	// checksum.
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("%w: %v", ErrFrameEncode, err)
	}
	return cw.n, nil
}

// countingWriter tracks how many compressed bytes reach the destination.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
