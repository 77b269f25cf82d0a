package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var ErrInvalidFileID = errors.New("invalid file id")

// StoredFile locates an uploaded file
type StoredFile struct {
	ID  string
	URL string
}

type FileStorage interface {
	Save(ctx context.Context, folder, name string, data []byte) (*StoredFile, error)
	Open(ctx context.Context, id string) (afero.File, error)
	Delete(ctx context.Context, id string) error
}

type aferoStorage struct {
	fs      afero.Fs
	baseURL string
}

// NewFileStorage stores files under root on the OS filesystem.
func NewFileStorage(root, baseURL string) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return NewAferoStorage(afero.NewBasePathFs(afero.NewOsFs(), root), baseURL), nil
}

func NewAferoStorage(fs afero.Fs, baseURL string) FileStorage {
	return &aferoStorage{
		fs:      fs,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Save writes data under a fresh id inside folder. The original name only
// contributes its extension.
func (s *aferoStorage) Save(ctx context.Context, folder, name string, data []byte) (*StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := path.Join(folder, uuid.NewString()+strings.ToLower(filepath.Ext(name)))
	if err := s.fs.MkdirAll(folder, 0o755); err != nil {
		return nil, err
	}
	if err := afero.WriteFile(s.fs, id, data, 0o644); err != nil {
		return nil, err
	}

	return &StoredFile{
		ID:  id,
		URL: s.baseURL + "/" + id,
	}, nil
}

func (s *aferoStorage) Open(ctx context.Context, id string) (afero.File, error) {
	if !validID(id) {
		return nil, ErrInvalidFileID
	}
	return s.fs.Open(id)
}

func (s *aferoStorage) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrInvalidFileID
	}
	err := s.fs.Remove(id)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func validID(id string) bool {
	if id == "" || strings.HasPrefix(id, "/") {
		return false
	}
	return path.Clean(id) == id && !strings.HasPrefix(id, "..")
}
