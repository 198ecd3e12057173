// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// impl_file.go - checkpoint files.
//
// The file extension picks a container around the text form:
//
//	.sz   snappy framed stream
//	.lz4  LZ4 frame
//	else  raw text
//
// The container never changes the text inside; decompressing a .sz or .lz4
// checkpoint yields exactly Encode(e).

package random

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// Container is the on-disk wrapping of a checkpoint file.
type Container int

const (
	// ContainerText stores the text form as-is.
	ContainerText Container = iota
	// ContainerSnappy wraps the text form in a snappy framed stream.
	ContainerSnappy
	// ContainerLZ4 wraps the text form in an LZ4 frame.
	ContainerLZ4
)

// ContainerFor returns the container selected by path's extension.
func ContainerFor(path string) Container {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sz":
		return ContainerSnappy
	case ".lz4":
		return ContainerLZ4
	default:
		return ContainerText
	}
}

// String implements fmt.Stringer.
func (c Container) String() string {
	switch c {
	case ContainerSnappy:
		return "snappy"
	case ContainerLZ4:
		return "lz4"
	default:
		return "text"
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (c Container) writer(w io.Writer) io.WriteCloser {
	switch c {
	case ContainerSnappy:
		return snappy.NewBufferedWriter(w)
	case ContainerLZ4:
		return lz4.NewWriter(w)
	default:
		return nopWriteCloser{w}
	}
}

func (c Container) reader(r io.Reader) io.Reader {
	switch c {
	case ContainerSnappy:
		return snappy.NewReader(r)
	case ContainerLZ4:
		return lz4.NewReader(r)
	default:
		return r
	}
}

// SaveToFile writes the text form of e to path. The checkpoint is written to
// a temporary file in the same directory and renamed over path only after it
// has been fully written and closed, so a failed save leaves any previous
// checkpoint at path intact. All failures are *IOError.
func (e *Engine) SaveToFile(path string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	w := ContainerFor(path).writer(f)
	if _, err = w.Write(Encode(e)); err != nil {
		_ = w.Close()
		_ = f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = w.Close(); err != nil {
		_ = f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmp, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}

	return nil
}

// LoadFromFile reads a checkpoint written by SaveToFile. Open and read
// failures are *IOError; malformed content is ErrDeserialization.
func LoadFromFile(path string) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	b, err := io.ReadAll(ContainerFor(path).reader(f))
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	return Decode(b)
}
