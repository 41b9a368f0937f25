package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/ledmind/internal/secret"
)

// Compile-time checks that every backend satisfies the generator's store.
var (
	_ secret.CounterStore = (*Memory)(nil)
	_ secret.CounterStore = (*SQLite)(nil)
	_ secret.CounterStore = (*File)(nil)
)

// roundTrip checks the read-empty / write / read-back / overwrite cycle.
func roundTrip(t *testing.T, s secret.CounterStore) {
	t.Helper()
	ctx := context.Background()

	v, err := s.ReadCounter(ctx)
	if err != nil || v != 0 {
		t.Fatalf("fresh ReadCounter = %d, %v; want 0, nil", v, err)
	}
	for _, want := range []uint32{1, 7, 0xFFFFFFFF} {
		if err := s.WriteCounter(ctx, want); err != nil {
			t.Fatalf("WriteCounter(%d): %v", want, err)
		}
		got, err := s.ReadCounter(ctx)
		if err != nil || got != want {
			t.Fatalf("ReadCounter = %d, %v; want %d", got, err, want)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory(0)
	roundTrip(t, m)
	if m.Writes() != 3 {
		t.Fatalf("writes = %d, want 3", m.Writes())
	}

	m.WriteErr = errors.New("eeprom busy")
	if err := m.WriteCounter(context.Background(), 9); err == nil {
		t.Fatal("injected write error not returned")
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledmind.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	roundTrip(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening runs migrations again without error and keeps the value.
	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, err := s.ReadCounter(context.Background())
	if err != nil || v != 0xFFFFFFFF {
		t.Fatalf("after reopen ReadCounter = %d, %v", v, err)
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "counter.bin")
	f := NewFile(path)
	roundTrip(t, f)

	img, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read image: %v", err)
	}
	if len(img) != imageLen {
		t.Fatalf("image is %d bytes, want %d", len(img), imageLen)
	}

	img[1] ^= 0x40
	if err := os.WriteFile(path, img, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := f.ReadCounter(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("flipped bit: err = %v, want ErrCorrupt", err)
	}

	if err := os.WriteFile(path, img[:10], 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := f.ReadCounter(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("torn image: err = %v, want ErrCorrupt", err)
	}
}

func TestFileStoreReplacesImageCleanly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counter.bin")
	ctx := context.Background()

	for _, v := range []uint32{1, 2, 3} {
		if err := NewFile(path).WriteCounter(ctx, v); err != nil {
			t.Fatalf("WriteCounter(%d): %v", v, err)
		}
	}
	if v, err := NewFile(path).ReadCounter(ctx); err != nil || v != 3 {
		t.Fatalf("ReadCounter = %d, %v; want 3", v, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "counter.bin" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir holds %v, want only counter.bin", names)
	}
}

func TestFileStoreMissingDirectoryFails(t *testing.T) {
	if err := syncDir(filepath.Join(t.TempDir(), "gone")); err == nil {
		t.Fatal("syncDir on a missing directory succeeded")
	}
}
