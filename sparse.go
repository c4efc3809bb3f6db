package lz4stream

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// sparseScanSegment bounds the zero scan per iteration.
	sparseScanSegment = 32 << 10

	// sparseSkipFlush caps the pending skip counter. Skips are flushed
	// as real seeks at this threshold so the counter cannot overflow
	// a 32-bit seek offset.
	sparseSkipFlush = 1 << 30
)

// sparseWriter writes decoded chunks to a seekable destination, turning
// runs of zero bytes into forward seeks so the underlying file grows holes
// instead of stored zeros. Zero runs are not materialized eagerly: the
// pending count survives across Write calls, so a run spanning many chunks
// collapses into a single seek when data finally resumes.
//
// The writer is owned by exactly one decode operation. Close must be called
// once at the end of the operation to fix the output length.
type sparseWriter struct {
	ws      io.WriteSeeker
	pending int64 // zero bytes seen but not yet seeked over; < sparseSkipFlush after each Write
	skipped int64 // total bytes represented as holes
}

func newSparseWriter(ws io.WriteSeeker) *sparseWriter {
	return &sparseWriter{ws: ws}
}

// Write scans p in fixed sub-segments of whole 8-byte words, counting
// leading zero words in each. A fully-zero sub-segment only grows the
// pending count; the first sub-segment holding data flushes the pending
// skip as one seek and writes the rest of the sub-segment literally. The
// tail of p not aligned to a word is handled the same way bytewise. The
// count returned on error includes zero bytes absorbed into the pending
// skip; they are consumed even though nothing was materialized yet.
func (w *sparseWriter) Write(p []byte) (int, error) {
	words := len(p) &^ 7

	for off := 0; off < words; {
		seg := words - off
		if seg > sparseScanSegment {
			seg = sparseScanSegment
		}

		zeros := 0
		for zeros < seg && binary.LittleEndian.Uint64(p[off+zeros:]) == 0 {
			zeros += 8
		}
		w.pending += int64(zeros)

		if w.pending > sparseSkipFlush {
			if _, err := w.ws.Seek(sparseSkipFlush, io.SeekCurrent); err != nil {
				return off + zeros, fmt.Errorf("%w: %v", ErrSparseOutput, err)
			}
			w.pending -= sparseSkipFlush
			w.skipped += sparseSkipFlush
		}

		if zeros != seg {
			if err := w.flushPending(); err != nil {
				return off + zeros, err
			}
			n, err := w.ws.Write(p[off+zeros : off+seg])
			if err != nil {
				return off + zeros + n, fmt.Errorf("%w: %v", ErrSparseOutput, err)
			}
		}
		off += seg
	}

	tail := p[words:]
	zeros := 0
	for zeros < len(tail) && tail[zeros] == 0 {
		zeros++
	}
	w.pending += int64(zeros)
	if zeros != len(tail) {
		if err := w.flushPending(); err != nil {
			return words + zeros, err
		}
		n, err := w.ws.Write(tail[zeros:])
		if err != nil {
			return words + zeros + n, fmt.Errorf("%w: %v", ErrSparseOutput, err)
		}
	}

	return len(p), nil
}

// flushPending materializes the accumulated hole as a single forward seek.
func (w *sparseWriter) flushPending() error {
	if w.pending == 0 {
		return nil
	}
	if _, err := w.ws.Seek(w.pending, io.SeekCurrent); err != nil {
		return fmt.Errorf("%w: %v", ErrSparseOutput, err)
	}
	w.skipped += w.pending
	w.pending = 0
	return nil
}

// Close finishes the stream. If it ends inside a zero run, seeking alone
// would not extend the file on every filesystem, so the writer seeks one
// byte short and stores a single literal zero to pin the final length.
func (w *sparseWriter) Close() error {
	if w.pending == 0 {
		return nil
	}
	w.pending--
	if _, err := w.ws.Seek(w.pending, io.SeekCurrent); err != nil {
		return fmt.Errorf("%w: %v", ErrSparseOutput, err)
	}
	if _, err := w.ws.Write([]byte{0}); err != nil {
		return fmt.Errorf("%w: cannot write final zero byte: %v", ErrSparseOutput, err)
	}
	w.skipped += w.pending
	w.pending = 0
	return nil
}
