package dataset

import (
	"io/fs"
	"os"
)

// Text provides text data, usually the content of a JSON fixture.
type Text interface {
	// Read returns the whole text.
	Read() (string, error)
}

// String is a Text held in memory.
type String string

func (s String) Read() (string, error) {
	return string(s), nil
}

func (s String) String() string {
	return "inline text"
}

// File is a Text read from the file system at Read time.
type File string

func (f File) Read() (string, error) {
	bs, err := os.ReadFile(string(f))
	if err != nil {
		return "", ReadError(string(f), err)
	}
	return string(bs), nil
}

func (f File) String() string {
	return string(f)
}

// FS is a Text read from a file system, for example an embed.FS with
// test fixtures.
type FS struct {
	FS   fs.FS
	Path string
}

func (f FS) Read() (string, error) {
	bs, err := fs.ReadFile(f.FS, f.Path)
	if err != nil {
		return "", ReadError(f.Path, err)
	}
	return string(bs), nil
}

func (f FS) String() string {
	return f.Path
}
