package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedExtensions is the image extension allow-list.
var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// ExtensionAllowed reports whether the file name carries an allowed image
// extension.
func ExtensionAllowed(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return AllowedExtensions[ext]
}

// Storage is the file-storage collaborator used by the image service.
type Storage interface {
	GenerateFileName(originalName string) string
	ImagesDir() string
	ImageURL(fileName string) string
	Save(fileName string, data []byte) error
	Remove(fileName string) error
}

// LocalStorage stores image files on the local filesystem.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates a local storage rooted at dir. The directory is
// created if it does not exist.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images dir: %w", err)
	}
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// GenerateFileName returns a collision-free file name that keeps the
// original extension.
func (s *LocalStorage) GenerateFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.New().String() + ext
}

// ImagesDir returns the directory images are written to.
func (s *LocalStorage) ImagesDir() string {
	return s.dir
}

// ImageURL returns the public URL for a stored file name.
func (s *LocalStorage) ImageURL(fileName string) string {
	return s.baseURL + "/" + fileName
}

// Save writes the file bytes under the images directory.
func (s *LocalStorage) Save(fileName string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644)
}

// Remove deletes the backing file for a stored file name.
func (s *LocalStorage) Remove(fileName string) error {
	return os.Remove(filepath.Join(s.dir, fileName))
}
