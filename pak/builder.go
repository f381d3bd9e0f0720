// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pak

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in
// the header, it will be overwritten anyway.
func NewBuilder(header Header) (*Builder, error) {
	temp, err := os.MkdirTemp("", "pakBuilder")
	if err != nil {
		return nil, ErrTempFail
	}
	builder := &Builder{
		tempDir: temp,
		header:  header,
	}
	runtime.SetFinalizer(builder, func(builder *Builder) {
		os.RemoveAll(builder.tempDir)
	})
	return builder, nil
}

type tempFile struct {

	// Name is the actual name of the file
	Name string

	// TempName is the temporary name given by the Builder
	TempName string

	// Size of the data before compression
	Size int64

	Compressed int64
}

// Builder is the high level builder for the archive format.
// Archives are versioned and cannot be appended to, this Builder
// is the way to create one. Whenever Add is called, the data is
// compressed into a temporary dir, the pieces are bundled together
// and written out by WriteTo.
type Builder struct {
	tempDir string
	header  Header

	mutex    sync.Mutex
	nextTemp int
	files    []tempFile
}

// Add appends data to the builder with a given name.
// Will block until lz4 finishes compression. Is safe
// to use concurrently in different goroutines.
func (b *Builder) Add(name string, data []byte) error {
	// The temp name comes from a counter rather than len(b.files):
	// the append happens only after compression, so two goroutines
	// inside Add at once would otherwise pick the same name.
	b.mutex.Lock()
	tempName := strconv.Itoa(b.nextTemp)
	b.nextTemp++
	b.mutex.Unlock()

	f, err := os.Create(filepath.Join(b.tempDir, tempName))
	if err != nil {
		return ErrTempFail
	}
	defer f.Close()

	writer := lz4.NewWriter(f)
	written, err := io.Copy(writer, bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return ErrTempFail
	}
	info, err := f.Stat()
	if err != nil {
		return ErrTempFail
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.files = append(b.files, tempFile{
		Name:       name,
		TempName:   tempName,
		Size:       written,
		Compressed: info.Size(),
	})
	return nil
}

// WriteTo bundles and writes all of the files added to the Builder
// into a pak archive that is ready to use. The header region is padded
// to its maximum expected size so file offsets are independent of the
// final header encoding.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	header.Index = nil
	for _, v := range b.files {
		header.Index = append(header.Index, IndexEntry{
			Name:           v.Name,
			Size:           v.Size,
			CompressedSize: v.Compressed,
		})
	}

	headerRegion := header.MaxExpectedSize()
	offset := int64(MagicLength+HeaderSizeNumberLength) + headerRegion
	for i := range header.Index {
		header.Index[i].Offset = offset
		offset += header.Index[i].CompressedSize
	}

	rawHeader, err := gobEncode(header)
	if err != nil {
		return 0, err
	}
	if int64(len(rawHeader)) > headerRegion {
		return 0, ErrFileFormat
	}

	var total int64
	for _, chunk := range [][]byte{
		magic[:],
		int64ToBinary(int64(len(rawHeader))),
		rawHeader,
		make([]byte, headerRegion-int64(len(rawHeader))),
	} {
		n, err := w.Write(chunk)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	for _, v := range b.files {
		f, err := os.Open(filepath.Join(b.tempDir, v.TempName))
		if err != nil {
			return total, ErrTempFail
		}
		n, err := io.Copy(w, f)
		f.Close()
		total += n
		if err != nil {
			return total, err
		}
	}

	b.files = b.files[:0]
	return total, nil
}
