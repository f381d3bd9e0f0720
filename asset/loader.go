// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package asset loads engine resources from directories, pak archives
// and the assets baked into the binary, and caches the decoded results.
package asset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobuffalo/packr"
	"golang.org/x/exp/mmap"

	"github.com/projectperil/peril/pak"
)

// ErrNotFound is returned when no loader can produce the asset.
var ErrNotFound = errors.New("asset not found")

// Loader resolves an asset name to its raw bytes.
type Loader interface {
	Load(name string) ([]byte, error)
}

// DirLoader reads assets from a directory tree on disk.
type DirLoader struct {
	Root string
}

// Load implements Loader.
func (l DirLoader) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.Root, filepath.FromSlash(name)))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

// PakLoader streams assets out of a memory mapped pak archive.
type PakLoader struct {
	archive *pak.Archive
	closer  *mmap.ReaderAt
}

// OpenPak memory maps an archive for loading.
func OpenPak(path string) (*PakLoader, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset.OpenPak(): %w", err)
	}
	archive, err := pak.Open(r)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("asset.OpenPak(): %w", err)
	}
	return &PakLoader{archive: archive, closer: r}, nil
}

// Load implements Loader.
func (l *PakLoader) Load(name string) ([]byte, error) {
	data, err := l.archive.ReadAll(name)
	if err == pak.ErrNotFound {
		return nil, ErrNotFound
	}
	return data, err
}

// Close unmaps the archive.
func (l *PakLoader) Close() error {
	return l.closer.Close()
}

// BoxLoader serves the default assets compiled into the binary.
type BoxLoader struct {
	box packr.Box
}

// NewBoxLoader wraps the built-in asset box.
func NewBoxLoader() BoxLoader {
	return BoxLoader{box: packr.NewBox("../assets")}
}

// Load implements Loader.
func (l BoxLoader) Load(name string) ([]byte, error) {
	if !l.box.Has(name) {
		return nil, ErrNotFound
	}
	return l.box.Find(name)
}
