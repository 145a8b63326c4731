package artifact

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DirWriter publishes artifacts as plain files in a local directory, for
// runs without object storage.
type DirWriter struct {
	dir string
}

// NewDirWriter creates a writer publishing into dir, creating it on the
// first write.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{dir: dir}
}

// Write stores one artifact as a file. The content type is carried by the
// file extension and ignored here.
func (w *DirWriter) Write(_ context.Context, name string, content []byte, _ string) (*Ref, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, &StorageError{Op: "write", Name: name, Err: err}
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, &StorageError{Op: "write", Name: name, Err: err}
	}
	return &Ref{Location: path, Size: int64(len(content))}, nil
}

// Prune removes all but the keep most recently modified files in the
// directory. A directory that does not exist yet has nothing to prune.
func (w *DirWriter) Prune(_ context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(w.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, &StorageError{Op: "prune", Err: err}
	}

	type file struct {
		name    string
		modTime time.Time
	}
	var files []file
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return 0, &StorageError{Op: "prune", Name: entry.Name(), Err: err}
		}
		files = append(files, file{name: entry.Name(), modTime: info.ModTime()})
	}
	if len(files) <= keep {
		return 0, nil
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	removed := 0
	for _, f := range files[keep:] {
		if err := os.Remove(filepath.Join(w.dir, f.name)); err != nil {
			return removed, &StorageError{Op: "prune", Name: f.name, Err: err}
		}
		removed++
	}
	return removed, nil
}
