package testutil

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/atomicstack/dirprompt/internal/fsys"
)

type memNode struct {
	dir     bool
	symlink bool
}

// MemFS is an in-memory fsys.Filesystem using slash-separated absolute
// paths. Listing order is reverse-sorted on purpose so callers cannot rely
// on it.
type MemFS struct {
	mu       sync.Mutex
	nodes    map[string]memNode
	listErr  map[string]error
	listings map[string]int
}

// NewMemFS builds a filesystem rooted at "/" from the given paths, using the
// same trailing-slash convention as MakeTree.
func NewMemFS(paths ...string) *MemFS {
	fs := &MemFS{
		nodes:    map[string]memNode{"/": {dir: true}},
		listErr:  make(map[string]error),
		listings: make(map[string]int),
	}
	for _, p := range paths {
		fs.Add(p)
	}
	return fs
}

// Add inserts a file or, with a trailing slash, a directory.
func (fs *MemFS) Add(p string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.add(p, memNode{dir: strings.HasSuffix(p, "/")})
}

// AddSymlink inserts a symlink entry.
func (fs *MemFS) AddSymlink(p string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.add(p, memNode{symlink: true})
}

func (fs *MemFS) add(p string, node memNode) {
	clean := path.Clean("/" + p)
	for dir := path.Dir(clean); dir != "/"; dir = path.Dir(dir) {
		fs.nodes[dir] = memNode{dir: true}
	}
	fs.nodes[clean] = node
}

// Remove deletes p and everything below it.
func (fs *MemFS) Remove(p string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	clean := path.Clean("/" + p)
	for name := range fs.nodes {
		if name == clean || strings.HasPrefix(name, clean+"/") {
			delete(fs.nodes, name)
		}
	}
}

// FailList makes List(dir) return err.
func (fs *MemFS) FailList(dir string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.listErr[path.Clean(dir)] = err
}

// Listings reports how many times dir was listed.
func (fs *MemFS) Listings(dir string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.listings[path.Clean(dir)]
}

// List implements fsys.Filesystem.
func (fs *MemFS) List(dir string) ([]fsys.Entry, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	clean := path.Clean(dir)
	fs.listings[clean]++
	if err := fs.listErr[clean]; err != nil {
		return nil, err
	}
	node, ok := fs.nodes[clean]
	if !ok || !node.dir {
		return nil, fmt.Errorf("cannot read directory %s: not a directory", clean)
	}
	var entries []fsys.Entry
	for name, n := range fs.nodes {
		if name == clean || path.Dir(name) != clean {
			continue
		}
		entries = append(entries, fsys.Entry{Name: path.Base(name), IsDir: n.dir, IsSymlink: n.symlink})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name > entries[j].Name })
	return entries, nil
}

// Classify implements fsys.Filesystem.
func (fs *MemFS) Classify(p string) fsys.Kind {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	node, ok := fs.nodes[path.Clean(p)]
	switch {
	case !ok:
		return fsys.KindMissing
	case node.symlink:
		return fsys.KindOther
	case node.dir:
		return fsys.KindDir
	default:
		return fsys.KindFile
	}
}
