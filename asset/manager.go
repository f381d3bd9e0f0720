// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package asset

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	// Decoders for the texture formats assets come in.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/projectperil/peril/gfx"
	"github.com/projectperil/peril/model"
)

// Manager resolves assets through an ordered loader chain and caches
// the decoded results. Loaders are tried in order, the first hit wins,
// so an on-disk override shadows the same name in an archive.
type Manager struct {
	loaders []Loader

	mutex    sync.Mutex
	textures map[string]*gfx.Texture
	meshes   map[string]*model.Mesh

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewManager creates a manager over the given loader chain.
func NewManager(loaders ...Loader) *Manager {
	return &Manager{
		loaders:  loaders,
		textures: make(map[string]*gfx.Texture),
		meshes:   make(map[string]*model.Mesh),
	}
}

// Bytes resolves an asset to its raw contents.
func (m *Manager) Bytes(name string) ([]byte, error) {
	for _, l := range m.loaders {
		data, err := l.Load(name)
		if err == ErrNotFound {
			continue
		}
		return data, err
	}
	return nil, ErrNotFound
}

// Texture loads and decodes an image asset.
func (m *Manager) Texture(name string) (*gfx.Texture, error) {
	m.mutex.Lock()
	cached, ok := m.textures[name]
	m.mutex.Unlock()
	if ok {
		return cached, nil
	}

	data, err := m.Bytes(name)
	if err != nil {
		return nil, fmt.Errorf("asset.Texture(%s): %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("asset.Texture(%s): %w", name, err)
	}

	tex := gfx.NewTexture(img)
	m.mutex.Lock()
	m.textures[name] = tex
	m.mutex.Unlock()
	return tex, nil
}

// Mesh loads and imports a collada mesh asset.
func (m *Manager) Mesh(name string) (*model.Mesh, error) {
	m.mutex.Lock()
	cached, ok := m.meshes[name]
	m.mutex.Unlock()
	if ok {
		return cached, nil
	}

	data, err := m.Bytes(name)
	if err != nil {
		return nil, fmt.Errorf("asset.Mesh(%s): %w", name, err)
	}
	mesh, err := model.ImportCollada(data)
	if err != nil {
		return nil, fmt.Errorf("asset.Mesh(%s): %w", name, err)
	}

	m.mutex.Lock()
	m.meshes[name] = mesh
	m.mutex.Unlock()
	return mesh, nil
}

// Material loads a color and an optional normal map as one material.
func (m *Manager) Material(colorName, normalName string) (*gfx.Material, error) {
	colorMap, err := m.Texture(colorName)
	if err != nil {
		return nil, err
	}
	var normalMap *gfx.Texture
	if normalName != "" {
		if normalMap, err = m.Texture(normalName); err != nil {
			return nil, err
		}
	}
	return gfx.NewMaterial(colorMap, normalMap), nil
}

// Invalidate drops the cached decode of an asset, forcing the next
// access to reload it.
func (m *Manager) Invalidate(name string) {
	m.mutex.Lock()
	delete(m.textures, name)
	delete(m.meshes, name)
	m.mutex.Unlock()
}

// Watch invalidates cached assets whenever the files under dir change,
// so edits show up without restarting. Asset names are taken relative
// to dir. fsnotify watches are not recursive, so every subdirectory
// gets its own watch, including ones created while watching.
func (m *Manager) Watch(dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("asset.Watch(): %w", err)
	}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
	if err != nil {
		watcher.Close()
		return fmt.Errorf("asset.Watch(): %w", err)
	}

	m.watcher = watcher
	m.done = make(chan struct{})
	go m.watchLoop(dir)
	return nil
}

func (m *Manager) watchLoop(dir string) {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := m.watcher.Add(event.Name); err != nil {
						log.WithError(err).Warn("asset watcher could not add directory")
					}
					continue
				}
			}
			name := relativeName(dir, event.Name)
			log.WithField("asset", name).Info("asset changed, dropping cache")
			m.Invalidate(name)
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("asset watcher error")
		case <-m.done:
			return
		}
	}
}

func relativeName(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

// Close stops the watcher if one is running.
func (m *Manager) Close() error {
	if m.watcher == nil {
		return nil
	}
	close(m.done)
	return m.watcher.Close()
}
