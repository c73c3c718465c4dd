package vcs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	shell "github.com/codeskyblue/go-sh"
)

// Git reads version metadata from the repository checked out at Dir.
type Git struct {
	Dir string
	// ShowCMD echoes each git command and its stderr to Echo.
	ShowCMD bool
	Echo    io.Writer // os.Stderr when nil
}

func New(dir string) *Git {
	return &Git{Dir: dir}
}

// LatestTag returns the most recent tag reachable from HEAD.
func (g *Git) LatestTag() (string, error) {
	return g.output("describe", "--tags", "--abbrev=0")
}

// HeadCommit returns the full sha of HEAD.
func (g *Git) HeadCommit() (string, error) {
	return g.output("rev-parse", "HEAD")
}

func (g *Git) output(args ...string) (string, error) {
	sh := shell.NewSession()
	if g.Dir != "" {
		sh.SetDir(g.Dir)
	}

	// go-sh prints its own ShowCMD prompt to Stderr; keep it out of errors.
	var stderr bytes.Buffer
	sh.Stderr = &stderr
	if g.ShowCMD {
		echo := g.Echo
		if echo == nil {
			echo = os.Stderr
		}
		fmt.Fprintf(echo, "$ git %s\n", strings.Join(args, " "))
		sh.Stderr = io.MultiWriter(&stderr, echo)
	}

	a := make([]interface{}, len(args))
	for i := range args {
		a[i] = args[i]
	}
	out, err := sh.Command("git", a...).Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}
