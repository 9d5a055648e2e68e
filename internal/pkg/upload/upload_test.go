package upload

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStore_Store(t *testing.T) {
	root := t.TempDir()
	store := NewImageStore(root)

	rel, err := store.Store(context.Background(), "../../poster final.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rel, "images/"))
	assert.True(t, strings.HasSuffix(rel, "_poster_final.PNG"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Remove(rel))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Remove(rel))
}

func TestImageStore_Store_RejectsExtension(t *testing.T) {
	store := NewImageStore(t.TempDir())

	_, err := store.Store(context.Background(), "script.sh", strings.NewReader("#!/bin/sh"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestImageStore_Store_TooLarge(t *testing.T) {
	root := t.TempDir()
	store := NewImageStore(root)

	_, err := store.Store(context.Background(), "big.jpg", bytes.NewReader(make([]byte, MaxImageSize+1)))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	entries, err := os.ReadDir(filepath.Join(root, ImageDir))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImageStore_Store_Canceled(t *testing.T) {
	store := NewImageStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Store(ctx, "a.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
