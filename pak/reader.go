// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pak

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
)

// Open opens the pak archive from r. It will also check
// if the file actually is a pak archive, and return an error
// when it is not.
func Open(r io.ReaderAt) (*Archive, error) {
	magicBytes := make([]byte, MagicLength)
	if num, err := r.ReadAt(magicBytes, 0); err != nil {
		return nil, err
	} else if num < MagicLength || !bytes.Equal(magicBytes, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, err := r.ReadAt(headerSizeBytes, MagicLength); err != nil {
		return nil, err
	} else if num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToInt64(headerSizeBytes)
	if err != nil || headerSize <= 0 {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); err != nil {
		return nil, err
	} else if int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	index := make(map[string]IndexEntry, len(header.Index))
	for _, e := range header.Index {
		index[e.Name] = e
	}

	return &Archive{
		reader: r,
		header: header,
		index:  index,
	}, nil
}

// Archive provides concurrent io for a pak file, and can provide
// an io.Reader for each file separately to perform actions on.
type Archive struct {
	reader io.ReaderAt
	header Header
	index  map[string]IndexEntry
}

// Header returns the archive metadata and file index.
func (a *Archive) Header() Header {
	return a.header
}

// ReadAll returns the entire decompressed contents of a file
// with a given name.
func (a *Archive) ReadAll(file string) ([]byte, error) {
	r, err := a.Open(file)
	if err != nil {
		return nil, err
	}
	data := make([]byte, r.Size())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Open returns a Reader for a file in the Archive. Every Reader holds
// its own decompression state, files can be streamed in parallel.
func (a *Archive) Open(name string) (*Reader, error) {
	entry, ok := a.index[name]
	if !ok {
		return nil, ErrNotFound
	}
	section := io.NewSectionReader(a.reader, entry.Offset, entry.CompressedSize)
	return &Reader{
		entry:      entry,
		decompress: lz4.NewReader(section),
	}, nil
}

// Reader is a reader for a single file in an Archive.
// It abstracts away the location that needs to be known.
type Reader struct {
	entry      IndexEntry
	decompress io.Reader
}

// Size returns the decompressed size of the file.
func (r *Reader) Size() int64 {
	return r.entry.Size
}

// Read reads already decompressed data.
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.decompress.Read(p)
}
