// Package filestore persists uploaded resume files on local disk.
package filestore

import (
	"os"
	"path/filepath"

	"jobradar/internal/pkg/errs"
)

type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create upload directory")
	}
	return &Local{dir: dir}, nil
}

func (s *Local) Save(filename string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return errs.Wrap(err, "failed to write uploaded file")
	}
	return nil
}

// Remove deletes the stored file. A file that is already gone is not an
// error, the record soft-delete must still proceed.
func (s *Local) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove uploaded file")
	}
	return nil
}
