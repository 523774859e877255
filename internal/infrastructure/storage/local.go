package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile    = errors.New("empty file")
	ErrFileTooLarge = errors.New("file too large")
	ErrFileType     = errors.New("unsupported file type")
)

var allowedExt = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".txt":  {},
}

// LocalStore writes uploads under Dir and serves them from PublicPrefix.
type LocalStore struct {
	dir     string
	prefix  string
	maxSize int64
}

func NewLocalStore(dir, publicPrefix string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, prefix: "/" + strings.Trim(publicPrefix, "/"), maxSize: maxSize}, nil
}

// Save stores r under a generated name that keeps the original extension and
// returns the public path, e.g. /uploads/<owner>-<uuid>.pdf.
func (s *LocalStore) Save(ctx context.Context, owner, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExt[ext]; !ok {
		return "", ErrFileType
	}

	name := owner + "-" + uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}
	n, err := io.Copy(f, src)
	closeErr := f.Close()
	switch {
	case err != nil:
	case closeErr != nil:
		err = closeErr
	case n == 0:
		err = ErrEmptyFile
	case s.maxSize > 0 && n > s.maxSize:
		err = ErrFileTooLarge
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", err
	}

	return s.prefix + "/" + name, nil
}
