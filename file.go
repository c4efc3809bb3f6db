package lz4stream

import (
	"os"

	"github.com/absfs/absfs"
)

// CompressFile compresses the file at srcPath into dstPath on fsys and
// returns the compressed size. With the ContentSize preference set, the
// source size is embedded in the frame header. Unless Overwrite is set, an
// existing destination is an error.
func CompressFile(fsys absfs.Filer, srcPath, dstPath string, level int, prefs Preferences) (int64, error) {
	if err := prefs.validate(); err != nil {
		return 0, err
	}

	in, err := fsys.OpenFile(srcPath, os.O_RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	srcSize := int64(-1)
	if prefs.ContentSize {
		if fi, err := in.Stat(); err == nil {
			srcSize = fi.Size()
		}
	}

	out, err := fsys.OpenFile(dstPath, outputFlag(prefs), 0666)
	if err != nil {
		return 0, err
	}

	n, err := compressStream(out, in, level, prefs, srcSize)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return n, err
}

// DecompressFile decodes the container at srcPath into dstPath on fsys.
// File handles are seekable, so sparse output and legacy/skippable
// handling work without further setup.
func DecompressFile(fsys absfs.Filer, srcPath, dstPath string, prefs Preferences) (Result, error) {
	if err := prefs.validate(); err != nil {
		return Result{}, err
	}

	in, err := fsys.OpenFile(srcPath, os.O_RDONLY, 0)
	if err != nil {
		return Result{}, err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dstPath, outputFlag(prefs), 0666)
	if err != nil {
		return Result{}, err
	}

	res, err := Decompress(out, in, prefs)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return res, err
}

func outputFlag(prefs Preferences) int {
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !prefs.Overwrite {
		flag |= os.O_EXCL
	}
	return flag
}
