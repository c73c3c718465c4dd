package vcs

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gitRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{
			"-c", "user.name=docsite",
			"-c", "user.email=docsite@example.com",
			"-c", "commit.gpgsign=false",
			"-c", "tag.gpgsign=false",
		}, args...)...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	run("init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs\n"), 0o644))
	run("add", "README.md")
	run("commit", "-q", "-m", "initial")
	return dir
}

func TestLatestTag(t *testing.T) {
	dir := gitRepo(t)
	tag := func(name string) {
		cmd := exec.Command("git", "-c", "tag.gpgsign=false", "tag", name)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	tag("v0.8.0")

	g := New(dir)
	v, err := g.LatestTag()
	require.NoError(t, err)
	assert.Equal(t, "v0.8.0", v)

	sha, err := g.HeadCommit()
	require.NoError(t, err)
	assert.Len(t, sha, 40)
}

func TestLatestTagWithoutTags(t *testing.T) {
	dir := gitRepo(t)

	_, err := New(dir).LatestTag()
	assert.Error(t, err)
}

func TestNotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	_, err := New(dir).HeadCommit()
	assert.Error(t, err)
}

func TestShowCMDEchoesCommand(t *testing.T) {
	dir := gitRepo(t)

	var echo bytes.Buffer
	g := &Git{Dir: dir, ShowCMD: true, Echo: &echo}
	_, err := g.HeadCommit()
	require.NoError(t, err)
	assert.Contains(t, echo.String(), "$ git rev-parse HEAD")

	_, err = g.LatestTag()
	require.Error(t, err)
	assert.Contains(t, echo.String(), "$ git describe --tags --abbrev=0")
	assert.NotContains(t, err.Error(), "$ git")
	assert.NotContains(t, err.Error(), "golang-sh")
}

func TestQuietByDefault(t *testing.T) {
	dir := gitRepo(t)

	var echo bytes.Buffer
	g := &Git{Dir: dir, Echo: &echo}
	_, err := g.HeadCommit()
	require.NoError(t, err)
	assert.Zero(t, echo.Len())
}
