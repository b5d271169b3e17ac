// Package fsys is the filesystem collaborator used by the prompt. It lists
// directory entries and classifies paths; it never caches.
package fsys

import (
	"fmt"
	"os"
)

// Kind classifies a path on disk.
type Kind int

const (
	KindMissing Kind = iota
	KindFile
	KindDir
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindOther:
		return "other"
	default:
		return "missing"
	}
}

// Entry represents a single directory entry as returned by List.
type Entry struct {
	Name      string
	IsDir     bool
	IsSymlink bool
}

// Filesystem lists directories and classifies paths.
type Filesystem interface {
	// List returns the entries of dir in no particular order.
	List(dir string) ([]Entry, error)
	// Classify never fails; anything that cannot be stat'ed is KindMissing.
	Classify(path string) Kind
}

// OS reads the real filesystem.
type OS struct{}

// List reads dir without following symlinks.
func (OS) List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		entries = append(entries, Entry{
			Name:      d.Name(),
			IsDir:     d.IsDir(),
			IsSymlink: d.Type()&os.ModeSymlink != 0,
		})
	}
	return entries, nil
}

// Classify lstat's path. A symlink is reported as KindOther, never KindFile.
func (OS) Classify(path string) Kind {
	info, err := os.Lstat(path)
	if err != nil {
		return KindMissing
	}
	mode := info.Mode()
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	default:
		return KindOther
	}
}
