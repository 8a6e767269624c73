package asset

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
)

// Resolve joins a slash path under root and appends ext when path has none
func Resolve(root, path, ext string) string {
	full := filepath.Join(root, filepath.FromSlash(path))
	if filepath.Ext(full) == "" {
		full += ext
	}
	return full
}

// ReadFile reads root/path, missing files map to ErrNotFound
func ReadFile(root, path, ext string) ([]byte, error) {
	data, err := os.ReadFile(Resolve(root, path, ext))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return data, nil
}

// ReadPNG decodes root/path, ".png" is appended when path has no extension
func ReadPNG(root, path string) (image.Image, error) {
	f, err := os.Open(Resolve(root, path, ".png"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("image %q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("image %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("image %q: %w", path, err)
	}
	return img, nil
}
