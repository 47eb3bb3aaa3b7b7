// Package pages maps page identifiers to template locations and discovers
// the page list from a templates directory.
package pages

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultDir is where page templates live unless configured otherwise.
const DefaultDir = "templates"

// TemplateResolver resolves identifiers relative to a templates directory.
type TemplateResolver struct {
	Dir string
}

// Resolve returns the template location of page under Dir.
func (r TemplateResolver) Resolve(page string) string {
	return filepath.Join(r.Dir, filepath.FromSlash(page))
}

// Discover lists the pages found anywhere under dir: every .html/.htm file,
// named by its slash-separated path relative to dir without the extension,
// and every sub-directory holding an index.html, named by its own path.
// Hidden files and directories are skipped. Identifiers are returned in
// lexical order.
func Discover(dir string) ([]string, error) {
	seen := make(map[string]bool)
	var found []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		id, ok := pageID(dir, path)
		if !ok || seen[id] {
			return nil
		}
		seen[id] = true
		found = append(found, id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	sort.Strings(found)
	return found, nil
}

// pageID names the page stored at path. An index.html below dir names its
// directory.
func pageID(dir, path string) (string, bool) {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".html" && ext != ".htm" {
		return "", false
	}

	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", false
	}
	if name == "index.html" && filepath.Dir(rel) != "." {
		rel = filepath.Dir(rel)
	} else {
		rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	}

	id := filepath.ToSlash(rel)
	return id, id != "" && id != "."
}
