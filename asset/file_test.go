package asset

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "images", "a.png"), Resolve("root", "images/a", ".png"))
	assert.Equal(t, filepath.Join("root", "fonts", "a.otf"), Resolve("root", "fonts/a.otf", ".ttf"))
}

func TestReadPNG(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "sheet.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 5, 3))))
	require.NoError(t, f.Close())

	img, err := ReadPNG(dir, "sheet")
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())

	_, err = ReadPNG(dir, "absent")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("nope"), 0o644))
	_, err = ReadPNG(dir, "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "face.ttf"), []byte{1, 2}, 0o644))

	data, err := ReadFile(dir, "face", ".ttf")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, data)

	_, err = ReadFile(dir, "other", ".ttf")
	assert.ErrorIs(t, err, ErrNotFound)
}
