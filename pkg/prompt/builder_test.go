package prompt

import (
	"strings"
	"testing"

	"github.com/saint0x/tutorialmaker/pkg/github"
)

var (
	testRef     = github.RepoRef{Owner: "acme", Name: "widgets"}
	testListing = github.Listing{
		{Name: "README.md", Path: "README.md", Kind: github.File},
		{Name: "src", Path: "src", Kind: github.Directory},
		{Name: "go.mod", Path: "go.mod", Kind: github.File},
	}
)

func TestRenderListing(t *testing.T) {
	got := RenderListing(testListing)
	want := "📄 README.md\n📁 src\n📄 go.mod"
	if got != want {
		t.Errorf("RenderListing() = %q, want %q", got, want)
	}

	if got := RenderListing(nil); got != "" {
		t.Errorf("RenderListing(nil) = %q, want empty", got)
	}
}

func TestBuild(t *testing.T) {
	readme := "# Widgets\nA tool.\n\n{{ not a template }}"
	p := Build(testRef, readme, testListing)

	for _, want := range []string{"acme/widgets", readme, "📄 README.md", "📁 src", "📄 go.mod"} {
		if !strings.Contains(p, want) {
			t.Errorf("Build() output missing %q:\n%s", want, p)
		}
	}

	// Sections appear in a fixed order.
	order := []string{"Generate a tutorial", "Repository: acme/widgets", "README content:", readme, "File structure:", "📄 README.md", "📁 src", "📄 go.mod", "comprehensive tutorial"}
	last := -1
	for _, s := range order {
		idx := strings.Index(p, s)
		if idx <= last {
			t.Fatalf("%q at %d, want after %d:\n%s", s, idx, last, p)
		}
		last = idx
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build(testRef, "readme", testListing)
	b := Build(testRef, "readme", testListing)
	if a != b {
		t.Errorf("Build() not deterministic:\n%q\n%q", a, b)
	}
}

func TestBuildEmptyReadme(t *testing.T) {
	p := Build(testRef, "", testListing)
	if !strings.Contains(p, "README content:\n\n") {
		t.Errorf("Build() with empty README = %q", p)
	}
}
