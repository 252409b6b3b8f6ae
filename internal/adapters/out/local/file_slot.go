package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlot stores the slot as <dir>/<name>.json. Saves write a temporary file and
// rename it over the previous one, so a crash never leaves a truncated array.
type FileSlot struct {
	path string
}

func NewFileSlot(dir, name string) (*FileSlot, error) {
	if name == "" {
		name = DefaultSlotName
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create slot directory %q: %w", dir, err)
	}
	return &FileSlot{path: filepath.Join(dir, name+".json")}, nil
}

// Path returns the file backing the slot.
func (s *FileSlot) Path() string {
	return s.path
}

func (s *FileSlot) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", s.path, err)
	}
	return data, nil
}

func (s *FileSlot) Save(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write slot: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync slot: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close slot: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace slot %q: %w", s.path, err)
	}
	return nil
}
