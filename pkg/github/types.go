package github

import (
	"net/url"
	"strings"
)

// RepoRef identifies a repository by owner and name
type RepoRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// escaped returns owner and name as single path segments. go-github
// interpolates them into the request path verbatim.
func (r RepoRef) escaped() (owner, name string) {
	return url.PathEscape(r.Owner), url.PathEscape(r.Name)
}

// EntryKind is the type of a top-level repository entry
type EntryKind int

const (
	File EntryKind = iota
	Directory
	// Other covers symlinks and submodules
	Other
)

func (k EntryKind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "dir"
	default:
		return "other"
	}
}

func kindFromContentType(t string) EntryKind {
	switch t {
	case "file":
		return File
	case "dir":
		return Directory
	default:
		return Other
	}
}

// Entry is one item of a repository's top-level listing
type Entry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
}

// Listing is the top-level contents of a repository, in the order GitHub returned them
type Listing []Entry

// FindReadme returns the first file whose name contains "readme", ignoring case.
//
// Selection depends on the order the contents API returns entries in.
func (l Listing) FindReadme() (Entry, bool) {
	for _, e := range l {
		if e.Kind == File && strings.Contains(strings.ToLower(e.Name), "readme") {
			return e, true
		}
	}
	return Entry{}, false
}
