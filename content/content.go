// Package content provides the documents listed and shown by the default Serve
// and Page components.
//
// Documents are addressed by their path segments, the same segments captured by
// the catch-all route. A missing or invalid path is reported with an error
// wrapping fs.ErrNotExist.
package content

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"
)

// Entry describes a document or a directory of documents.
type Entry struct {
	Path    []string
	Name    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Key returns the slash separated path of the entry.
func (e Entry) Key() string {
	return strings.Join(e.Path, "/")
}

// Title is the display name: the base name without its extension.
func (e Entry) Title() string {
	if e.IsDir {
		return e.Name
	}
	return strings.TrimSuffix(e.Name, path.Ext(e.Name))
}

// Doc is a document with its body.
type Doc struct {
	Entry
	ContentType string
	Body        []byte
}

// IsHTML reports whether the body is an HTML fragment to be embedded as is.
func (d *Doc) IsHTML() bool {
	mt, _, _ := mime.ParseMediaType(d.ContentType)
	return mt == "text/html"
}

// Store lists and reads documents.
type Store interface {
	// List returns the entries of a directory, directories first.
	List(ctx context.Context, dir []string) ([]Entry, error)
	// Stat describes a single entry. The empty path is the root directory.
	Stat(ctx context.Context, p []string) (Entry, error)
	// Get reads a document. Directories are reported as not existing.
	Get(ctx context.Context, p []string) (*Doc, error)
}

// CleanPath validates path segments and joins them with slashes. Hidden
// segments and segments that would escape the root are rejected.
func CleanPath(p []string) (string, error) {
	if len(p) == 0 {
		return ".", nil
	}
	for _, seg := range p {
		if seg == "" || strings.HasPrefix(seg, ".") || strings.ContainsAny(seg, `/\`) {
			return "", fmt.Errorf("%w: invalid path %q", fs.ErrNotExist, strings.Join(p, "/"))
		}
	}
	name := strings.Join(p, "/")
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("%w: invalid path %q", fs.ErrNotExist, name)
	}
	return name, nil
}

// ContentType guesses the media type from the name, then from the body.
func ContentType(name string, body []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	switch path.Ext(name) {
	case ".md", ".markdown", ".txt":
		return "text/plain; charset=utf-8"
	}
	return http.DetectContentType(body)
}

// SortEntries orders directories first, then by name.
func SortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
}

func childPath(dir []string, name string) []string {
	p := make([]string, 0, len(dir)+1)
	p = append(p, dir...)
	return append(p, name)
}
