package site

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saghen/cmp-docsite/internal/channel"
)

const (
	ReleaseURL = "https://cmp.saghen.dev"
	MainURL    = "https://main.cmp.saghen.dev"

	MainTitle = "Main"
)

// ErrResolution is returned when the build-specific values cannot be
// resolved. The build must abort; there is no fallback version.
var ErrResolution = errors.New("configuration resolution failure")

// VersionProvider reports the most recent release tag reachable from the
// checkout being built.
type VersionProvider interface {
	LatestTag() (string, error)
}

// VersionFunc adapts a plain function to VersionProvider.
type VersionFunc func() (string, error)

func (f VersionFunc) LatestTag() (string, error) { return f() }

// BuildContext is computed once per build.
type BuildContext struct {
	Channel channel.Channel
	Version string
}

// Descriptor holds the values that differ between the main and release sites.
type Descriptor struct {
	Title          string `json:"title"`
	CanonicalURL   string `json:"canonicalUrl"`
	CrossLinkURL   string `json:"crossLinkUrl"`
	CrossLinkLabel string `json:"crossLinkLabel"`
}

type Resolver struct {
	versions VersionProvider
}

func NewResolver(versions VersionProvider) *Resolver {
	return &Resolver{versions: versions}
}

// Context queries the version provider once and pairs the result with ch.
func (r *Resolver) Context(ch channel.Channel) (BuildContext, error) {
	if r.versions == nil {
		return BuildContext{}, fmt.Errorf("%w: no version provider", ErrResolution)
	}
	version, err := r.versions.LatestTag()
	if err != nil {
		return BuildContext{}, fmt.Errorf("%w: query latest tag: %w", ErrResolution, err)
	}
	version = strings.TrimSpace(version)
	if version == "" {
		return BuildContext{}, fmt.Errorf("%w: latest tag is empty", ErrResolution)
	}
	if strings.ContainsAny(version, "\r\n") {
		return BuildContext{}, fmt.Errorf("%w: latest tag %q spans multiple lines", ErrResolution, version)
	}
	return BuildContext{Channel: ch, Version: version}, nil
}

// Resolve builds the descriptor for ch.
func (r *Resolver) Resolve(ch channel.Channel) (Descriptor, error) {
	bc, err := r.Context(ch)
	if err != nil {
		return Descriptor{}, err
	}
	return Describe(bc)
}

// Describe derives the descriptor from an already resolved context.
func Describe(bc BuildContext) (Descriptor, error) {
	if strings.TrimSpace(bc.Version) == "" {
		return Descriptor{}, fmt.Errorf("%w: version is empty", ErrResolution)
	}
	if bc.Channel.IsMain() {
		return Descriptor{
			Title:          MainTitle,
			CanonicalURL:   MainURL,
			CrossLinkURL:   ReleaseURL,
			CrossLinkLabel: bc.Version,
		}, nil
	}
	return Descriptor{
		Title:          bc.Version,
		CanonicalURL:   ReleaseURL,
		CrossLinkURL:   MainURL,
		CrossLinkLabel: MainTitle,
	}, nil
}
