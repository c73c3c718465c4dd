package nav

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v2"
)

// Load reads a sidebar definition from a YAML file.
func Load(path string) (Tree, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Tree{}, err
	}

	var t Tree
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return Tree{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tree{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Links returns every link target in display order, section links included.
func (t Tree) Links() []Link {
	var out []Link
	for _, s := range t.Sections {
		if s.Link != "" {
			out = append(out, Link{Text: s.Text, Link: s.Link})
		}
		out = append(out, s.Items...)
	}
	return out
}

// Validate checks the tree shape. Link text may be empty; it is filled from
// page front matter by CheckPages.
func (t Tree) Validate() error {
	if len(t.Sections) == 0 {
		return errors.New("navigation has no sections")
	}

	var errs []error
	seen := map[string]string{}
	check := func(where, link string) {
		if !strings.HasPrefix(link, "/") {
			errs = append(errs, fmt.Errorf("%s: link %q must be an absolute site path", where, link))
			return
		}
		if prev, ok := seen[link]; ok {
			errs = append(errs, fmt.Errorf("%s: link %q already used by %s", where, link, prev))
			return
		}
		seen[link] = where
	}

	for i, s := range t.Sections {
		where := fmt.Sprintf("section %d", i)
		if s.Text == "" {
			errs = append(errs, fmt.Errorf("%s: missing text", where))
		} else {
			where = fmt.Sprintf("section %q", s.Text)
		}
		if s.Link == "" && len(s.Items) == 0 {
			errs = append(errs, fmt.Errorf("%s: needs a link or items", where))
		}
		if s.Link != "" {
			check(where, s.Link)
		}
		for j, l := range s.Items {
			check(fmt.Sprintf("%s item %d", where, j), l.Link)
		}
	}
	return errors.Join(errs...)
}

// RequireText reports links whose text is still empty. Trees that are not
// passed through CheckPages must satisfy it before they are rendered.
func (t Tree) RequireText() error {
	var errs []error
	for _, s := range t.Sections {
		for j, l := range s.Items {
			if l.Text == "" {
				errs = append(errs, fmt.Errorf("section %q item %d: link %q has no text", s.Text, j, l.Link))
			}
		}
	}
	return errors.Join(errs...)
}
