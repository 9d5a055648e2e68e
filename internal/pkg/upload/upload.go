package upload

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
	"go.uber.org/zap"
)

// ImageDir is the directory, relative to the media root, that event images
// are written to. Stored paths are relative to the media root.
const ImageDir = "images"

// MaxImageSize bounds a single uploaded image.
const MaxImageSize = 5 << 20

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image is too large")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type ImageStore struct {
	root string
}

func NewImageStore(mediaRoot string) *ImageStore {
	return &ImageStore{root: mediaRoot}
}

// Store copies r into <root>/images and returns the relative path to persist.
func (s *ImageStore) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}

	dir := filepath.Join(s.root, ImageDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	name := uuid.NewString() + "_" + sanitize(filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}

	n, err := io.Copy(dst, io.LimitReader(contextReader{ctx: ctx, r: r}, MaxImageSize+1))
	closeErr := dst.Close()
	if err == nil && n > MaxImageSize {
		err = ErrImageTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(dst.Name()); rmErr != nil {
			zap.L().Warn("failed to remove partial upload", zap.String("file", dst.Name()), zap.Error(rmErr))
		}
		return "", fmt.Errorf("store %s -> %w", filename, err)
	}

	return path.Join(ImageDir, name), nil
}

// Remove deletes a previously stored image. Missing files are ignored.
func (s *ImageStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}

	full := filepath.Join(s.root, filepath.FromSlash(path.Clean("/" + relPath)))
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}

func sanitize(filename string) string {
	base := filepath.Base(filepath.ToSlash(filename))
	base = path.Base(base)

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
