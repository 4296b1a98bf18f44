package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bloomandblossom/florist-backend/pkg/config"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

// ErrDisallowedExtension signals an upload outside the image allow-list.
var ErrDisallowedExtension = errors.New("file extension not allowed")

// ErrFileTooLarge signals an upload exceeding the configured size cap.
var ErrFileTooLarge = errors.New("file exceeds maximum upload size")

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// Client stores uploaded images on the local disk and serves them from a
// stable URL prefix.
type Client struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// New prepares the uploads directory and returns a Client.
func New(ctx context.Context, cfg config.UploadsConfig, logg *logger.Logger) (*Client, error) {
	if cfg.Dir == "" {
		return nil, errors.New("uploads directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}

	maxBytes := int64(cfg.MaxUploadMB) * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}

	if logg != nil {
		logg.Info(ctx, "local upload storage initialized")
	}

	return &Client{
		dir:      cfg.Dir,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Dir returns the directory files are written to.
func (c *Client) Dir() string {
	return c.dir
}

// Save writes the upload under a unique name and returns its URL path.
func (c *Client) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrDisallowedExtension
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(c.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	// Read one byte past the cap to detect oversized uploads.
	written, err := io.Copy(dst, io.LimitReader(r, c.maxBytes+1))
	if err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("writing upload: %w", err)
	}
	if written > c.maxBytes {
		_ = os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	return c.baseURL + "/" + name, nil
}

// Delete removes a previously stored file by its bare filename. Path
// separators are rejected so callers cannot escape the uploads directory.
func (c *Client) Delete(ctx context.Context, filename string) error {
	if filename == "" || filename != path.Base(filename) || strings.Contains(filename, "\\") {
		return errors.New("invalid filename")
	}
	if err := os.Remove(filepath.Join(c.dir, filename)); err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("removing upload: %w", err)
	}
	return nil
}
