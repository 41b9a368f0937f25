package store

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// ErrCorrupt is returned when a counter image fails its checksum, e.g.
// after power was lost mid-write.
var ErrCorrupt = errors.New("store: counter image corrupt")

const imageLen = 4 + blake2b.Size256

// File keeps the counter in a small EEPROM-style image: a big-endian
// uint32 followed by its BLAKE2b-256 digest. Writes go to a temp file that
// is synced and renamed over the image, then the directory is synced.
type File struct {
	Path string
}

// NewFile constructs a file-backed store at path.
func NewFile(path string) *File { return &File{Path: path} }

// ReadCounter returns 0 for a missing image and ErrCorrupt for a damaged one.
func (f *File) ReadCounter(ctx context.Context) (uint32, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read counter image: %w", err)
	}
	if len(b) != imageLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrCorrupt, len(b))
	}
	sum := blake2b.Sum256(b[:4])
	if !bytes.Equal(sum[:], b[4:]) {
		return 0, ErrCorrupt
	}
	return binary.BigEndian.Uint32(b[:4]), nil
}

// WriteCounter replaces the image atomically.
func (f *File) WriteCounter(ctx context.Context, v uint32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img := make([]byte, 4, imageLen)
	binary.BigEndian.PutUint32(img, v)
	sum := blake2b.Sum256(img)
	img = append(img, sum[:]...)

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".counter-*")
	if err != nil {
		return fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(img); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp image: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp image: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("replace counter image: %w", err)
	}
	return syncDir(dir)
}

// syncDir flushes the directory entry so the rename survives power loss.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open %s: %w", dir, err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", dir, err)
	}
	return nil
}
