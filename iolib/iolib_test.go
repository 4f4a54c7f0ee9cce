package iolib

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordcloud.txt")
	require.NoError(t, os.WriteFile(path, []byte("사과는 맛있다\n바나나"), 0644))

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "사과는 맛있다\n바나나", text)
}

func TestReadTextStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBF사과"), 0644))

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "사과", text)
}

func TestReadTextNotFound(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotReadable))

	var re *ReadError
	require.True(t, errors.As(err, &re))
	assert.True(t, re.NotFound())
	assert.Contains(t, err.Error(), "not found")
}

func TestReadTextOtherErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadText(dir)
	require.Error(t, err)
	var re *ReadError
	require.True(t, errors.As(err, &re))
	assert.False(t, re.NotFound())
	assert.ErrorIs(t, err, ErrFileNotReadable)

	bad := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe, 0x41}, 0644))
	_, err = ReadText(bad)
	assert.ErrorIs(t, err, ErrFileNotReadable)
}

func TestReadTextHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><p>사과 바나나</p></body></html>"), 0644))

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "사과 바나나")
	assert.NotContains(t, text, "<p>")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "b.txt")))
}

func TestIsHTML(t *testing.T) {
	assert.True(t, IsHTML("a.HTML"))
	assert.True(t, IsHTML("a.htm"))
	assert.False(t, IsHTML("a.txt"))
}
