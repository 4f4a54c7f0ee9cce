// Package iolib provides I/O functions beyond goLang primitives
package iolib

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"jaytaylor.com/html2text"
)

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// ErrFileNotReadable matches every error returned by ReadText
var ErrFileNotReadable = errors.New("file not readable")

// ReadError reports a failed input read. NotFound distinguishes a missing file from other failures.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.NotFound() {
		return fmt.Sprintf("file %s not found", e.Path)
	}
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrFileNotReadable, e.Err}
}

// NotFound is true when the path does not exist
func (e *ReadError) NotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// FileExists returns true if there is a file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// IsHTML tells whether the extension marks an HTML document
func IsHTML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// ReadText reads a UTF-8 text file into a string. HTML files are reduced to their plain text.
func ReadText(filename string) (string, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return "", &ReadError{Path: filename, Err: err}
	}
	if info.IsDir() {
		return "", &ReadError{Path: filename, Err: errors.New("is a directory")}
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return "", &ReadError{Path: filename, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &ReadError{Path: filename, Err: errors.New("content is not valid UTF-8")}
	}
	text := strings.TrimPrefix(string(b), "\uFEFF")

	if IsHTML(filename) {
		plain, err := html2text.FromString(text, html2text.Options{PrettyTables: false})
		if err != nil {
			return "", &ReadError{Path: filename, Err: fmt.Errorf("html2text: %w", err)}
		}
		text = plain
	}

	return text, nil
}
