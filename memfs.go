package lz4stream

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/absfs/absfs"
)

// memFS is a small in-memory filesystem used by tests of the file-level
// API. Files honor the handle position on reads and writes, and writing
// past the end zero-fills the gap, so seek-ahead output behaves like a
// regular file.
type memFS struct {
	nodes map[string]*memNode
	mu    sync.Mutex
}

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS() absfs.Filer {
	return &memFS{nodes: make(map[string]*memNode)}
}

type memNode struct {
	name    string
	data    []byte
	mode    fs.FileMode
	modTime time.Time
	mu      sync.Mutex
}

// memFile is one open handle on a memNode.
type memFile struct {
	node   *memNode
	pos    int64
	closed bool
}

func normalizePath(name string) string {
	name = strings.TrimPrefix(filepath.Clean(name), "/")
	if name == "" {
		name = "."
	}
	return name
}

func (mfs *memFS) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = normalizePath(name)
	node, exists := mfs.nodes[name]

	if flag&os.O_CREATE != 0 {
		if exists && flag&os.O_EXCL != 0 {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
		}
		if !exists {
			node = &memNode{name: name, mode: perm, modTime: time.Now()}
			mfs.nodes[name] = node
			exists = true
		}
	}
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	if flag&os.O_TRUNC != 0 {
		node.mu.Lock()
		node.data = nil
		node.modTime = time.Now()
		node.mu.Unlock()
	}

	f := &memFile{node: node}
	if flag&os.O_APPEND != 0 {
		f.pos = int64(len(node.data))
	}
	return f, nil
}

func (mfs *memFS) Mkdir(name string, perm os.FileMode) error { return nil }

func (mfs *memFS) Remove(name string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = normalizePath(name)
	if _, ok := mfs.nodes[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(mfs.nodes, name)
	return nil
}

func (mfs *memFS) Rename(oldpath, newpath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	oldpath, newpath = normalizePath(oldpath), normalizePath(newpath)
	node, ok := mfs.nodes[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	node.name = newpath
	mfs.nodes[newpath] = node
	delete(mfs.nodes, oldpath)
	return nil
}

func (mfs *memFS) Stat(name string) (os.FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = normalizePath(name)
	node, ok := mfs.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return node.info(), nil
}

func (mfs *memFS) Chmod(name string, mode os.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	node, ok := mfs.nodes[normalizePath(name)]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}
	node.mode = mode
	return nil
}

func (mfs *memFS) Chtimes(name string, atime, mtime time.Time) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	node, ok := mfs.nodes[normalizePath(name)]
	if !ok {
		return &fs.PathError{Op: "chtimes", Path: name, Err: fs.ErrNotExist}
	}
	node.modTime = mtime
	return nil
}

func (mfs *memFS) Chown(name string, uid, gid int) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if _, ok := mfs.nodes[normalizePath(name)]; !ok {
		return &fs.PathError{Op: "chown", Path: name, Err: fs.ErrNotExist}
	}
	return nil
}

func (n *memNode) info() os.FileInfo {
	return &memFileInfo{
		name:    filepath.Base(n.name),
		size:    int64(len(n.data)),
		mode:    n.mode,
		modTime: n.modTime,
	}
}

func (f *memFile) Name() string { return f.node.name }

func (f *memFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	f.node.mu.Lock()
	defer f.node.mu.Unlock()

	if f.pos >= int64(len(f.node.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.node.data[f.pos:])
	f.pos += int64(n)
	return n, nil
}

func (f *memFile) ReadAt(p []byte, off int64) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	f.node.mu.Lock()
	defer f.node.mu.Unlock()

	if off < 0 {
		return 0, errors.New("negative offset")
	}
	if off >= int64(len(f.node.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.node.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (f *memFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	f.node.mu.Lock()
	defer f.node.mu.Unlock()

	n := f.node.writeAt(p, f.pos)
	f.pos += int64(n)
	return n, nil
}

func (f *memFile) WriteAt(p []byte, off int64) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	if off < 0 {
		return 0, errors.New("negative offset")
	}
	f.node.mu.Lock()
	defer f.node.mu.Unlock()

	return f.node.writeAt(p, off), nil
}

// writeAt stores p at off, zero-filling any gap between the current end of
// the file and off. Callers hold the node lock.
func (n *memNode) writeAt(p []byte, off int64) int {
	if need := off + int64(len(p)); need > int64(len(n.data)) {
		grown := make([]byte, need)
		copy(grown, n.data)
		n.data = grown
	}
	copied := copy(n.data[off:], p)
	n.modTime = time.Now()
	return copied
}

func (f *memFile) WriteString(s string) (int, error) { return f.Write([]byte(s)) }

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	f.node.mu.Lock()
	defer f.node.mu.Unlock()

	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = f.pos + offset
	case io.SeekEnd:
		pos = int64(len(f.node.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if pos < 0 {
		return 0, errors.New("negative position")
	}
	f.pos = pos
	return pos, nil
}

func (f *memFile) Truncate(size int64) error {
	if f.closed {
		return fs.ErrClosed
	}
	f.node.mu.Lock()
	defer f.node.mu.Unlock()

	data := f.node.data
	switch {
	case size < int64(len(data)):
		f.node.data = data[:size]
	case size > int64(len(data)):
		grown := make([]byte, size)
		copy(grown, data)
		f.node.data = grown
	}
	f.node.modTime = time.Now()
	return nil
}

func (f *memFile) Close() error {
	f.closed = true
	return nil
}

func (f *memFile) Stat() (os.FileInfo, error) {
	f.node.mu.Lock()
	defer f.node.mu.Unlock()
	return f.node.info(), nil
}

func (f *memFile) Sync() error { return nil }

func (f *memFile) Readdir(n int) ([]os.FileInfo, error) { return nil, os.ErrInvalid }

func (f *memFile) Readdirnames(n int) ([]string, error) { return nil, os.ErrInvalid }

type memFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return fi.size }
func (fi *memFileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *memFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *memFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *memFileInfo) Sys() interface{}   { return nil }
