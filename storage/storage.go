package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Storage stages uploaded documents until they have been extracted
type Storage interface {
	// Upload stores data under a unique path derived from name and returns that path
	Upload(ctx context.Context, name string, data io.Reader) (string, error)

	// Download retrieves a file by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a file by storage path
	Delete(ctx context.Context, storagePath string) error

	// Type reports the backend kind
	Type() StorageType
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

var ErrFileNotFound = errors.New("file not found")

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal, "":
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for S3 storage")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// SecureFilename reduces an uploaded filename to a safe ASCII base name.
// Path components are dropped, whitespace becomes underscores and anything
// outside letters, digits, dot, dash and underscore is removed. The result
// may be empty.
func SecureFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)
	if filename == "." || filename == "/" {
		return ""
	}

	var b strings.Builder
	for _, r := range strings.Join(strings.Fields(filename), "_") {
		switch {
		case r > unicode.MaxASCII:
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}

// generateStoragePath places each upload in its own directory so equal names never collide
func generateStoragePath(name string) string {
	safe := SecureFilename(name)
	if safe == "" {
		safe = "document"
	}
	id := uuid.New().String()
	return fmt.Sprintf("%s/%s_%s", id[:2], id, safe)
}
