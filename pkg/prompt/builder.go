// Package prompt assembles the instruction sent to the generation service.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/saint0x/tutorialmaker/pkg/github"
)

//go:embed assets/tutorial.tmpl
var promptAssets embed.FS

const (
	dirMarker  = "📁"
	fileMarker = "📄"
)

var tutorialTemplate = template.Must(template.ParseFS(promptAssets, "assets/tutorial.tmpl"))

type templateData struct {
	Repository    string
	Readme        string
	FileStructure string
}

// RenderListing renders one line per entry, in listing order
func RenderListing(listing github.Listing) string {
	lines := make([]string, 0, len(listing))
	for _, e := range listing {
		marker := fileMarker
		if e.Kind == github.Directory {
			marker = dirMarker
		}
		lines = append(lines, marker+" "+e.Name)
	}
	return strings.Join(lines, "\n")
}

// Build composes the tutorial prompt. The README is included verbatim and
// nothing is truncated.
func Build(ref github.RepoRef, readme string, listing github.Listing) string {
	var buf bytes.Buffer
	data := templateData{
		Repository:    ref.String(),
		Readme:        readme,
		FileStructure: RenderListing(listing),
	}
	if err := tutorialTemplate.ExecuteTemplate(&buf, "tutorial.tmpl", data); err != nil {
		// Only reachable if the embedded template is broken.
		panic(fmt.Errorf("failed to execute tutorial template: %w", err))
	}
	return buf.String()
}
