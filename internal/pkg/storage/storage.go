package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"marketplace-service/config"
	"marketplace-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

type Kind string

const (
	KindAvatar   Kind = "avatars"
	KindDocument Kind = "documents"
	KindIcon     Kind = "icons"
)

type rule struct {
	maxBytes   int64
	extensions []string
}

var rules = map[Kind]rule{
	KindAvatar:   {maxBytes: 5 << 20, extensions: []string{".jpeg", ".jpg", ".png"}},
	KindDocument: {maxBytes: 10 << 20, extensions: []string{".jpeg", ".jpg", ".png", ".pdf"}},
	KindIcon:     {maxBytes: 2 << 20, extensions: []string{".jpeg", ".jpg", ".png", ".gif", ".svg", ".webp"}},
}

type Storage interface {
	Store(ctx context.Context, kind Kind, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, url string) error
}

type Disk struct {
	root      string
	publicURL string
}

func NewDisk(cfg *config.StorageConfig) (*Disk, error) {
	for kind := range rules {
		if err := os.MkdirAll(filepath.Join(cfg.Root, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &Disk{root: cfg.Root, publicURL: strings.TrimRight(cfg.PublicURL, "/")}, nil
}

// Store validates the file against the kind's limits and returns its public url.
func (d *Disk) Store(ctx context.Context, kind Kind, file *multipart.FileHeader) (string, error) {
	r, ok := rules[kind]
	if !ok {
		return "", errors.InternalServerError("unknown upload kind")
	}
	if file == nil {
		return "", errors.ValidationError("file is required")
	}
	if file.Size > r.maxBytes {
		return "", errors.ValidationError(fmt.Sprintf("file exceeds %d MB", r.maxBytes>>20))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed(ext, r.extensions) {
		return "", errors.ValidationError(fmt.Sprintf("file type %s not allowed", ext))
	}

	name := uuid.NewString() + ext
	if err := fasthttp.SaveMultipartFile(file, filepath.Join(d.root, string(kind), name)); err != nil {
		return "", errors.InternalServerError("error save file")
	}

	return path.Join(d.publicURL, string(kind), name), nil
}

// Delete removes a file previously returned by Store. Missing files are ignored.
func (d *Disk) Delete(ctx context.Context, url string) error {
	if url == "" || !strings.HasPrefix(url, d.publicURL+"/") {
		return nil
	}
	rel := strings.TrimPrefix(url, d.publicURL+"/")
	if strings.Contains(rel, "..") {
		return errors.BadRequest("invalid file path")
	}

	err := os.Remove(filepath.Join(d.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return errors.InternalServerError("error delete file")
	}
	return nil
}

func allowed(ext string, exts []string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
