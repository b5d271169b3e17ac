package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/dirprompt/internal/nav"
	"github.com/atomicstack/dirprompt/internal/testutil"
	"github.com/atomicstack/dirprompt/internal/ui"
)

func TestConfigOptions(t *testing.T) {
	cfg := Config{BasePath: "/srv", AllowDotFiles: true, PageSize: 4, Message: "Pick", ShowFooter: true, Width: 50, Height: 12}
	want := ui.Options{BasePath: "/srv", AllowDotFiles: true, PageSize: 4, Message: "Pick", ShowFooter: true, Width: 50, Height: 12}
	if got := cfg.Options(); got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestRunWithSelectsFile(t *testing.T) {
	root := testutil.TempTree(t, "only.txt")
	var out bytes.Buffer
	got, err := RunWith(Config{BasePath: root}, strings.NewReader("\r"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "only.txt" {
		t.Fatalf("expected only.txt, got %q", got)
	}
	if !strings.Contains(out.String(), "only.txt") {
		t.Fatalf("expected prompt output, got %q", out.String())
	}
}

func TestRunWithMissingBasePath(t *testing.T) {
	_, err := RunWith(Config{}, strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, ui.ErrMissingBasePath) {
		t.Fatalf("expected ErrMissingBasePath, got %v", err)
	}
}

func TestRunWithUnreadableBasePath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := RunWith(Config{BasePath: missing}, strings.NewReader(""), &bytes.Buffer{})
	if !nav.IsListingError(err) {
		t.Fatalf("expected listing error, got %v", err)
	}
}
