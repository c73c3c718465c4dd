package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saghen/cmp-docsite/internal/log"
	"github.com/saghen/cmp-docsite/internal/nav"
	"github.com/saghen/cmp-docsite/internal/site"
	"github.com/saghen/cmp-docsite/internal/vitepress"
)

const defaultOut = "doc/.vitepress/site.generated.json"

func newGenerateCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "generate",
		Short: "Write the generated site configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := cmd.Flags().GetStringArray("set")
			if err != nil {
				return err
			}
			return a.generate(sets)
		},
	}
	f := c.Flags()
	f.StringP("out", "o", defaultOut, `output file, "-" for stdout`)
	f.String("format", "json", "output format: json or yaml")
	f.String("nav", "", "sidebar definition (yaml); the built-in sidebar when empty")
	f.String("docs", "doc", "docs root, relative to --repo, to check sidebar pages against; empty to skip")
	f.Bool("commit", true, "stamp the HEAD commit into the output")
	f.StringArray("set", nil, "override a config value, e.g. themeConfig.search.provider=algolia")
	return c
}

func (a *app) generate(sets []string) error {
	logger := log.WithComponent("generate")

	format, err := vitepress.ParseFormat(a.v.GetString("format"))
	if err != nil {
		return err
	}
	overrides := make([]vitepress.Override, 0, len(sets))
	for _, s := range sets {
		o, err := vitepress.ParseOverride(s)
		if err != nil {
			return err
		}
		overrides = append(overrides, o)
	}

	repo := a.repo()
	ch := a.channel()
	bc, err := site.NewResolver(repo).Context(ch)
	if err != nil {
		return err
	}
	desc, err := site.Describe(bc)
	if err != nil {
		return err
	}
	logger.Info().
		Str("channel", ch.String()).
		Str("version", bc.Version).
		Str("title", desc.Title).
		Str("canonical", desc.CanonicalURL).
		Msg("resolved site")

	tree, err := a.loadTree()
	if err != nil {
		return err
	}

	opts := vitepress.Options{Channel: ch.String(), Version: bc.Version}
	if a.v.GetBool("commit") {
		sha, err := repo.HeadCommit()
		if err != nil {
			logger.Warn().Err(err).Msg("commit stamp skipped")
		} else {
			opts.Commit = sha
		}
	}

	obj, err := vitepress.Assemble(desc, tree, opts).Map()
	if err != nil {
		return err
	}
	if err := vitepress.ApplyOverrides(obj, overrides); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := vitepress.Encode(&buf, obj, format); err != nil {
		return err
	}

	out := a.v.GetString("out")
	if out == "-" {
		_, err := a.stdout.Write(buf.Bytes())
		return err
	}
	if err := writeFile(out, buf.Bytes()); err != nil {
		return err
	}
	logger.Info().Str("file", out).Int("bytes", buf.Len()).Msg("wrote site config")
	return nil
}

func (a *app) loadTree() (nav.Tree, error) {
	tree := nav.Default()
	if path := a.v.GetString("nav"); path != "" {
		var err error
		if tree, err = nav.Load(path); err != nil {
			return nav.Tree{}, err
		}
	}
	docs := a.docsDir()
	if docs == "" {
		if err := tree.RequireText(); err != nil {
			return nav.Tree{}, fmt.Errorf("sidebar without --docs: %w", err)
		}
		return tree, nil
	}
	checked, err := nav.CheckPages(tree, docs)
	if err != nil {
		return nav.Tree{}, fmt.Errorf("sidebar pages: %w", err)
	}
	return checked, nil
}

// docsDir resolves a relative --docs against --repo.
func (a *app) docsDir() string {
	docs := a.v.GetString("docs")
	if docs == "" || filepath.IsAbs(docs) {
		return docs
	}
	return filepath.Join(a.v.GetString("repo"), docs)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the resolved site descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := site.NewResolver(a.repo()).Resolve(a.channel())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(desc)
		},
	}
}

func newNavCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "nav",
		Short: "Inspect the sidebar",
	}
	check := &cobra.Command{
		Use:   "check",
		Short: "Check every sidebar link resolves to a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.v.GetString("docs") == "" {
				return errors.New("--docs is required")
			}
			tree, err := a.loadTree()
			if err != nil {
				return err
			}
			l := log.WithComponent("nav")
			l.Info().Int("sections", len(tree.Sections)).Int("links", len(tree.Links())).Msg("sidebar ok")
			return nil
		},
	}
	check.Flags().String("nav", "", "sidebar definition (yaml); the built-in sidebar when empty")
	check.Flags().String("docs", "doc", "docs root, relative to --repo")
	c.AddCommand(check)
	return c
}

func newStampCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "stamp",
		Short: "Write the HEAD commit sha to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.v.GetString("out")
			if err := os.Remove(out); err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			sha, err := a.repo().HeadCommit()
			if err != nil {
				return err
			}
			if sha == "" {
				return errors.New("git rev-parse HEAD returned nothing")
			}
			return writeFile(out, []byte(sha))
		},
	}
	c.Flags().StringP("out", "o", "target/release/version", "file to write")
	return c
}
