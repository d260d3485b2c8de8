package infra

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalImageStorage keeps uploaded images on the local filesystem and
// hands out /uploads/<name> reference strings. Callers treat the
// reference as opaque.
type LocalImageStorage struct {
	dir string
}

func NewLocalImageStorage(dir string) (*LocalImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalImageStorage{dir: dir}, nil
}

func (s *LocalImageStorage) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	fileName := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + fileName, nil
}

// Delete removes the file behind a reference. A reference that no
// longer resolves is not an error.
func (s *LocalImageStorage) Delete(imageURL string) error {
	fileName := path.Base(imageURL)
	if fileName == "." || fileName == "/" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, fileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalImageStorage) Dir() string {
	return s.dir
}
