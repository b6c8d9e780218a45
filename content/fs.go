package content

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
)

// FSStore serves documents from a file system, such as os.DirFS or an embed.FS.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore returns a Store reading from fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

func (s *FSStore) List(ctx context.Context, dir []string) ([]Entry, error) {
	name, err := CleanPath(dir)
	if err != nil {
		return nil, err
	}
	dirEntries, err := fs.ReadDir(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", name, err)
		}
		entries = append(entries, Entry{
			Path:    childPath(dir, de.Name()),
			Name:    de.Name(),
			IsDir:   de.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	SortEntries(entries)
	return entries, nil
}

func (s *FSStore) Stat(_ context.Context, p []string) (Entry, error) {
	name, err := CleanPath(p)
	if err != nil {
		return Entry{}, err
	}
	info, err := fs.Stat(s.fsys, name)
	if err != nil {
		return Entry{}, fmt.Errorf("stat %s: %w", name, err)
	}
	e := Entry{Path: p, Name: info.Name(), IsDir: info.IsDir(), Size: info.Size(), ModTime: info.ModTime()}
	if len(p) == 0 {
		e.Name = ""
	}
	return e, nil
}

func (s *FSStore) Get(ctx context.Context, p []string) (*Doc, error) {
	e, err := s.Stat(ctx, p)
	if err != nil {
		return nil, err
	}
	if e.IsDir {
		return nil, fmt.Errorf("get %s: is a directory: %w", e.Key(), fs.ErrNotExist)
	}
	body, err := fs.ReadFile(s.fsys, e.Key())
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", e.Key(), err)
	}
	return &Doc{Entry: e, ContentType: ContentType(e.Name, body), Body: body}, nil
}

var _ Store = (*FSStore)(nil)
