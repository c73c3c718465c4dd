// Package vitepress assembles the generated configuration document that the
// documentation site's config.mts imports.
package vitepress

import (
	"github.com/saghen/cmp-docsite/internal/nav"
	"github.com/saghen/cmp-docsite/internal/site"
)

const (
	Repository      = "https://github.com/saghen/blink.cmp"
	EditLinkPattern = Repository + "/edit/main/doc/:path"
)

type Config struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Sitemap     Sitemap     `json:"sitemap"`
	Head        []HeadTag   `json:"head"`
	Markdown    Markdown    `json:"markdown"`
	ThemeConfig ThemeConfig `json:"themeConfig"`
	Build       Build       `json:"build"`
}

type Sitemap struct {
	Hostname string `json:"hostname"`
}

// HeadTag serializes as VitePress's [tag, attrs] tuple.
type HeadTag struct {
	Tag   string
	Attrs map[string]string
}

func (h HeadTag) MarshalJSON() ([]byte, error) {
	return marshalJSON([]interface{}{h.Tag, h.Attrs})
}

type Markdown struct {
	Theme   SyntaxTheme `json:"theme"`
	Plugins []string    `json:"plugins"`
}

type SyntaxTheme struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

type ThemeConfig struct {
	Nav         []NavMenu     `json:"nav"`
	Sidebar     []nav.Section `json:"sidebar"`
	SocialLinks []SocialLink  `json:"socialLinks"`
	EditLink    EditLink      `json:"editLink"`
	Search      Search        `json:"search"`
}

// NavMenu is a top bar dropdown.
type NavMenu struct {
	Text  string     `json:"text"`
	Items []nav.Link `json:"items"`
}

type SocialLink struct {
	Icon string `json:"icon"`
	Link string `json:"link"`
}

type EditLink struct {
	Pattern string `json:"pattern"`
	Text    string `json:"text"`
}

type Search struct {
	Provider string `json:"provider"`
}

// Build records where the document came from.
type Build struct {
	Channel string `json:"channel"`
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
}

type Options struct {
	Channel string
	Version string
	Commit  string
}

// Assemble builds the document for one channel.
func Assemble(d site.Descriptor, tree nav.Tree, opts Options) Config {
	return Config{
		Title:       "Blink Completion (blink.cmp)",
		Description: "Performant, batteries-included completion plugin for Neovim",
		Sitemap:     Sitemap{Hostname: d.CanonicalURL},
		Head: []HeadTag{
			{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/favicon.png"}},
		},
		Markdown: Markdown{
			Theme:   SyntaxTheme{Light: "catppuccin-latte", Dark: "catppuccin-mocha"},
			Plugins: []string{"tabs", "task-lists"},
		},
		ThemeConfig: ThemeConfig{
			Nav: []NavMenu{{
				Text:  d.Title,
				Items: []nav.Link{{Text: d.CrossLinkLabel, Link: d.CrossLinkURL}},
			}},
			Sidebar:     tree.Sections,
			SocialLinks: []SocialLink{{Icon: "github", Link: Repository}},
			EditLink:    EditLink{Pattern: EditLinkPattern, Text: "Edit this page on GitHub"},
			Search:      Search{Provider: "local"},
		},
		Build: Build{Channel: opts.Channel, Version: opts.Version, Commit: opts.Commit},
	}
}
