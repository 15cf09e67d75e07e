package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/dotsync/internal/config"
	"github.com/harrison/dotsync/internal/platform"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for one test and restores it
// afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// initRepo creates a dotfiles repository in a fresh temp directory and
// makes it the working directory for the test.
func initRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, config.SaveRootConfig(filepath.Join(root, config.RootFile), config.DefaultRootConfig()))
	chdir(t, root)
	return root
}

// addConfig writes a configuration into the repository that deploys to
// target on every supported platform.
func addConfig(t *testing.T, root, name, target string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))

	cfg := config.DefaultConfiguration()
	cfg.Deploy.Linux.Target = target
	cfg.Deploy.Windows.Target = target
	require.NoError(t, config.SaveConfiguration(filepath.Join(dir, config.ProtectedPath), cfg))
}

// writeRepoFile writes a file with content at rel beneath root.
func writeRepoFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// execute runs the root command with args and returns its combined output.
func execute(args ...string) (string, error) {
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// requireSupportedPlatform skips tests that deploy to the running
// operating system when it is not a supported one.
func requireSupportedPlatform(t *testing.T) {
	t.Helper()
	if _, err := platform.Current(); err != nil {
		t.Skipf("skipping: %v", err)
	}
}

// stdinLines feeds input to os.Stdin for the duration of the test, for
// commands that prompt for confirmation.
func stdinLines(t *testing.T, input string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	old := os.Stdin
	os.Stdin = r
	go func() {
		w.Write([]byte(input))
		w.Close()
	}()
	t.Cleanup(func() { os.Stdin = old })
}
