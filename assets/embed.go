package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Library resolves playlist asset paths (covers, audio files). Relative paths
// are read from a file system root; absolute paths are read from disk as
// given. Paths are never rewritten.
type Library struct {
	fsys fs.FS
	// dir is the on-disk root of fsys, if any. Relative paths that leave the
	// root ("../music/a.mp3") are joined to it.
	dir string

	mu     sync.Mutex
	images map[string]*ebiten.Image
	missed map[string]bool
}

func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:   fsys,
		images: make(map[string]*ebiten.Image),
		missed: make(map[string]bool),
	}
}

// NewDirLibrary serves assets from dir on disk.
func NewDirLibrary(dir string) *Library {
	if dir == "" {
		dir = "."
	}
	l := NewLibrary(os.DirFS(dir))
	l.dir = dir
	return l
}

// LoadFile reads an asset by path.
func (l *Library) LoadFile(p string) ([]byte, error) {
	if p == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if filepath.IsAbs(p) {
		return readDisk(p)
	}
	name, ok := assetPath(p)
	if ok {
		b, err := fs.ReadFile(l.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("assets: read %s: %w", name, err)
		}
		return b, nil
	}
	if l.dir == "" || name == "" {
		return nil, fmt.Errorf("assets: %s is outside the asset root", p)
	}
	return readDisk(filepath.Join(l.dir, filepath.FromSlash(name)))
}

func readDisk(p string) ([]byte, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", p, err)
	}
	return b, nil
}

// LoadAudio is LoadFile under the name the media element expects.
func (l *Library) LoadAudio(p string) ([]byte, error) {
	return l.LoadFile(p)
}

// DecodeImage reads and decodes an image asset without touching the GPU.
func (l *Library) DecodeImage(p string) (image.Image, error) {
	b, err := l.LoadFile(p)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return img, nil
}

// Image returns the cached ebiten image for p. Failures are logged once per
// path and yield nil, so a missing cover just leaves the artwork empty.
func (l *Library) Image(p string) *ebiten.Image {
	if p == "" {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[p]; ok {
		return img
	}
	if l.missed[p] {
		return nil
	}
	src, err := l.DecodeImage(p)
	if err != nil {
		log.Printf("%v", err)
		l.missed[p] = true
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	l.images[p] = img
	return img
}

// assetPath cleans a relative path into an fs.FS name. ok is false when the
// cleaned path is not a valid name inside the root.
func assetPath(p string) (name string, ok bool) {
	if p == "" {
		return "", false
	}
	s := path.Clean(filepath.ToSlash(p))
	if s == "." {
		return "", false
	}
	return s, fs.ValidPath(s)
}
