package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/saghen/cmp-docsite/internal/channel"
	"github.com/saghen/cmp-docsite/internal/log"
	"github.com/saghen/cmp-docsite/internal/vcs"
)

// ChannelEnv is the environment flag selecting the main channel.
const ChannelEnv = "IS_MAIN"

// Repo is the version-control metadata the commands need.
type Repo interface {
	LatestTag() (string, error)
	HeadCommit() (string, error)
}

// OpenRepo returns the Repo for a checkout. Tests replace it.
var OpenRepo = func(dir string, verbose bool) Repo {
	g := vcs.New(dir)
	g.ShowCMD = verbose
	return g
}

type app struct {
	v      *viper.Viper
	stdout io.Writer
}

func (a *app) repo() Repo {
	return OpenRepo(a.v.GetString("repo"), a.v.GetBool("verbose"))
}

func (a *app) channel() channel.Channel {
	return channel.FromFlag(a.v.GetString("main"))
}

// NewRoot builds the docsite command tree.
func NewRoot(stdout io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout}

	root := &cobra.Command{
		Use:   "docsite",
		Short: "Resolve build-specific configuration for the blink.cmp documentation site",
		Long: `docsite computes the values that differ between the main and release
documentation sites (title, canonical host, cross-link to the other site) and
writes the generated configuration imported by the VitePress config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initializeConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "optional config file (yaml)")
	pf.String("repo", ".", "repository checkout to read tags from")
	pf.String("main", "", `"true" to build the main channel (env `+ChannelEnv+`)`)
	pf.String("log-level", "", "log level (env LOG_LEVEL)")
	pf.BoolP("verbose", "v", false, "print the git commands being run")

	root.AddCommand(
		newGenerateCommand(a),
		newDescribeCommand(a),
		newNavCommand(a),
		newStampCommand(a),
	)
	return root
}

func (a *app) initializeConfig(cmd *cobra.Command) error {
	v := a.v
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetEnvPrefix("DOCSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("main", ChannelEnv); err != nil {
		return err
	}
	if err := v.BindEnv("log-level", "LOG_LEVEL"); err != nil {
		return err
	}

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	log.Configure(log.Config{Level: v.GetString("log-level")})
	if used := v.ConfigFileUsed(); used != "" {
		l := log.Base()
		l.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRoot(os.Stdout).Execute(); err != nil {
		l := log.Base()
		l.Error().Err(err).Msg("docsite failed")
		os.Exit(1)
	}
}
