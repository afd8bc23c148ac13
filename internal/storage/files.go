// Package storage persists uploaded media on the local filesystem under a
// configurable data directory, partitioned by kind (images, videos,
// documents).
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// File kinds map to subdirectories of the upload root.
const (
	KindImage    = "images"
	KindVideo    = "videos"
	KindDocument = "documents"
)

// unsafeChars matches every rune not allowed in a stored file name. CJK
// ideographs stay so Chinese file names survive the upload.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_\x{4e00}-\x{9fa5}]`)

// FileStore writes uploads below root/uploads/<kind>/.
type FileStore struct {
	root   string
	logger *slog.Logger
}

// NewFileStore creates the upload directories under dataDir.
func NewFileStore(dataDir string, logger *slog.Logger) (*FileStore, error) {
	root := filepath.Join(dataDir, "uploads")
	for _, kind := range []string{KindImage, KindVideo, KindDocument} {
		if err := os.MkdirAll(filepath.Join(root, kind), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &FileStore{root: root, logger: logger}, nil
}

// Root returns the upload root directory, for serving files statically.
func (s *FileStore) Root() string {
	return s.root
}

// Save stores the content under a collision-free name and returns the public
// URL path of the stored file.
func (s *FileStore) Save(kind, originalName string, content io.Reader) (string, error) {
	switch kind {
	case KindImage, KindVideo, KindDocument:
	default:
		return "", fmt.Errorf("unknown file kind %q", kind)
	}

	name := uniqueName(originalName)
	path := filepath.Join(s.root, kind, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, content)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	s.logger.Info("file stored", "kind", kind, "name", name, "size", FormatFileSize(written))
	return "/uploads/" + kind + "/" + name, nil
}

// KindForContentType picks the storage kind from a MIME type. Everything
// that is not an image or a video lands under documents.
func KindForContentType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return KindImage
	case strings.HasPrefix(contentType, "video/"):
		return KindVideo
	default:
		return KindDocument
	}
}

// uniqueName builds "<timestamp>_<random>_<sanitized original>" so repeated
// uploads of the same file never overwrite each other.
func uniqueName(originalName string) string {
	base := filepath.Base(originalName)
	safe := unsafeChars.ReplaceAllString(base, "_")
	if safe == "" || safe == "." || safe == ".." {
		safe = "file"
	}

	buf := make([]byte, 3)
	rand.Read(buf)

	return fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), hex.EncodeToString(buf), safe)
}

// FormatFileSize renders a byte count for display, e.g. "2.5 MB".
func FormatFileSize(size int64) string {
	const unit = 1024
	switch {
	case size < unit:
		return fmt.Sprintf("%d B", size)
	case size < unit*unit:
		return fmt.Sprintf("%.2f KB", float64(size)/unit)
	case size < unit*unit*unit:
		return fmt.Sprintf("%.2f MB", float64(size)/(unit*unit))
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/(unit*unit*unit))
	}
}
