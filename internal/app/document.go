package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MatejSimek1/TextEditor/internal/engine"
)

// Document is an engine bound to an optional file path.
type Document struct {
	Path   string
	Engine *engine.Engine
}

// OpenDocument loads path into a new engine. A path that does not exist yet
// yields an empty document that will be created on save. An empty path
// yields a scratch document.
func OpenDocument(path string, opts ...engine.Option) (*Document, error) {
	doc := &Document{Path: path}
	if path == "" {
		doc.Engine = engine.New(opts...)
		return doc, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		doc.Engine = engine.New(opts...)
		return doc, nil
	}
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	e, err := engine.NewFromReader(f, opts...)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	doc.Engine = e
	return doc, nil
}

// Name returns the display name of the document.
func (d *Document) Name() string {
	if d.Path == "" {
		return "[scratch]"
	}
	return filepath.Base(d.Path)
}

// IsScratch returns true if the document has no file path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// Save writes the document to its path.
func (d *Document) Save() error {
	if d.IsScratch() {
		return ErrNoFilePath
	}
	if d.Engine.ReadOnly() {
		return &FileError{Op: "save", Path: d.Path, Err: engine.ErrReadOnly}
	}
	if err := os.WriteFile(d.Path, []byte(d.Engine.Text()), 0o644); err != nil {
		return &FileError{Op: "save", Path: d.Path, Err: err}
	}
	return nil
}
