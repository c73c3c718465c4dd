package nav

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gohugoio/hugo/parser/pageparser"
	"github.com/spf13/cast"
)

// Page is a markdown page a link resolves to.
type Page struct {
	Path  string
	Title string
}

// PagePath maps a site path to candidate markdown files under root.
func PagePath(root, link string) []string {
	rel := strings.Trim(link, "/")
	if rel == "" {
		return []string{filepath.Join(root, "index.md")}
	}
	rel = filepath.FromSlash(rel)
	return []string{
		filepath.Join(root, rel+".md"),
		filepath.Join(root, rel, "index.md"),
	}
}

// ReadPage parses the front matter of the page behind link.
func ReadPage(root, link string) (Page, error) {
	for _, path := range PagePath(root, link) {
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Page{}, err
		}
		cfm, err := pageparser.ParseFrontMatterAndContent(f)
		f.Close()
		if err != nil {
			return Page{}, fmt.Errorf("parse %s: %w", path, err)
		}

		p := Page{Path: path}
		if v, ok := cfm.FrontMatter["title"]; ok {
			if p.Title, err = cast.ToStringE(v); err != nil {
				return Page{}, fmt.Errorf("%s: title: %w", path, err)
			}
		}
		return p, nil
	}
	return Page{}, fmt.Errorf("link %q: no page at %s: %w", link, strings.Join(PagePath(root, link), " or "), os.ErrNotExist)
}

// CheckPages verifies every link in t has a page under root and returns a
// copy of t with empty link text filled from the page title.
func CheckPages(t Tree, root string) (Tree, error) {
	out := Tree{Sections: make([]Section, len(t.Sections))}
	var errs []error

	resolve := func(text, link string) string {
		p, err := ReadPage(root, link)
		if err != nil {
			errs = append(errs, err)
			return text
		}
		if text != "" {
			return text
		}
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("link %q: no text and %s has no title", link, p.Path))
		}
		return p.Title
	}

	for i, s := range t.Sections {
		out.Sections[i] = s
		if s.Link != "" {
			resolve(s.Text, s.Link)
		}
		if s.Items == nil {
			continue
		}
		items := make([]Link, len(s.Items))
		for j, l := range s.Items {
			items[j] = Link{Text: resolve(l.Text, l.Link), Link: l.Link}
		}
		out.Sections[i].Items = items
	}
	if err := errors.Join(errs...); err != nil {
		return Tree{}, err
	}
	return out, nil
}
