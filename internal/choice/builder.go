package choice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/dirprompt/internal/fsys"
	"golang.org/x/text/unicode/norm"
)

const parentRef = ".."

// Builder turns directory listings into Lists.
type Builder struct {
	FS            fsys.Filesystem
	AllowDotFiles bool
}

// Build lists dir and returns the choices for the given traversal depth.
func (b Builder) Build(dir string, depth int) (List, error) {
	if b.FS == nil {
		return List{}, fmt.Errorf("build choices for %s: no filesystem", dir)
	}
	entries, err := b.FS.List(dir)
	if err != nil {
		return List{}, err
	}
	visible := make([]fsys.Entry, 0, len(entries))
	for _, e := range entries {
		if b.visible(e) {
			visible = append(visible, e)
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].Name < visible[j].Name })

	items := make([]Choice, 0, len(visible)+4)
	for _, e := range visible {
		items = append(items, Entry(e.Name, norm.NFC.String(e.Name), e.IsDir))
	}
	if len(items) > 0 {
		items = append(items, Separator())
	}
	if depth > 0 {
		items = append(items, Separator(), Back(), Separator())
	}
	return NewList(items...), nil
}

func (b Builder) visible(e fsys.Entry) bool {
	if e.IsSymlink {
		return false
	}
	if b.AllowDotFiles {
		return e.Name != parentRef
	}
	return !strings.HasPrefix(e.Name, ".")
}
