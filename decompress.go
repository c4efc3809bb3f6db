package lz4stream

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Decompress reads every stream segment from src and writes the decoded
// content to dst. Concatenated frame and legacy streams are processed in
// order, skippable regions are seeked over, and input after the last valid
// segment is ignored (reported via Result.TrailingData). If the very first
// magic number is unrecognized, the input is either copied to dst verbatim
// (Overwrite set) or rejected with ErrUnrecognizedHeader.
//
// src must be seekable: detecting the end of a legacy segment rewinds the
// stream, and skippable regions are skipped by seeking. With SparseOutput
// set, dst must implement io.WriteSeeker as well.
func Decompress(dst io.Writer, src io.ReadSeeker, prefs Preferences) (Result, error) {
	var res Result
	if err := prefs.validate(); err != nil {
		return res, err
	}
	if prefs.SparseOutput {
		if _, ok := dst.(io.WriteSeeker); !ok {
			return res, fmt.Errorf("%w: destination is not seekable", ErrSparseOutput)
		}
	}

	// Loop over concatenated segments. Whether an unrecognized magic
	// number is fatal depends on it being the first read of the whole
	// operation, so the flag lives out here, not per segment.
	first := true
	for {
		n, end, err := selectDecoder(dst, src, prefs, first, &res)
		res.Size += n
		if err != nil {
			return res, err
		}
		if end {
			return res, nil
		}
		first = false
	}
}

// selectDecoder reads the next magic number and runs the matching decoder.
// It returns the decoded byte count and whether the end of input was
// reached. A skippable region decodes zero bytes and simply resumes
// dispatch on the caller's next iteration.
func selectDecoder(dst io.Writer, src io.ReadSeeker, prefs Preferences, first bool, res *Result) (int64, bool, error) {
	var store [magicSize]byte
	n, err := io.ReadFull(src, store[:])
	if err == io.EOF {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: got %d of %d bytes", ErrHeaderUnreadable, n, magicSize)
	}

	magic := binary.LittleEndian.Uint32(store[:])
	if isSkippableMagic(magic) {
		magic = skippableBase // the sub-id is not this layer's business
	}

	switch magic {
	case frameMagic:
		res.Streams++
		n, err := decodeFrame(dst, src, store[:], prefs, res)
		return n, false, err

	case legacyMagic:
		res.Streams++
		n, err := decodeLegacy(dst, src)
		return n, false, err

	case skippableBase:
		if err := skipRegion(src); err != nil {
			return 0, false, err
		}
		res.SkippableRegions++
		return 0, false, nil

	default:
		if first {
			if prefs.Overwrite {
				n, err := passThrough(dst, src, store[:])
				return n, false, err
			}
			return 0, false, fmt.Errorf("%w: bad magic number 0x%08X at start of first stream",
				ErrUnrecognizedHeader, magic)
		}
		// A valid stream followed by something else: padding,
		// alignment bytes, whatever. Stop without complaint.
		res.TrailingData = true
		return 0, true, nil
	}
}

// skipRegion consumes the 4-byte length of a skippable region and seeks
// past its content. A region extending beyond the end of input is an
// error, not a silent truncation.
func skipRegion(src io.ReadSeeker) error {
	var lenBuf [4]byte
	if _, err := io.ReadFull(src, lenBuf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrSkipLengthUnreadable, err)
	}
	size := binary.LittleEndian.Uint32(lenBuf[:])

	pos, err := src.Seek(int64(size), io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSkipSeek, err)
	}
	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSkipSeek, err)
	}
	if pos > end {
		return fmt.Errorf("%w: region of %d bytes runs %d bytes past end of input",
			ErrSkipSeek, size, pos-end)
	}
	if _, err := src.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %v", ErrSkipSeek, err)
	}
	return nil
}

// passThrough copies unrecognized input to dst unchanged, starting with the
// already-consumed magic bytes.
func passThrough(dst io.Writer, src io.Reader, store []byte) (int64, error) {
	if _, err := dst.Write(store); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPassthroughWrite, err)
	}
	total := int64(len(store))

	buf := make([]byte, passthroughBufferSize)
	n, err := io.CopyBuffer(dst, src, buf)
	total += n
	if err != nil {
		return total, fmt.Errorf("%w: %v", ErrPassthroughWrite, err)
	}
	return total, nil
}
