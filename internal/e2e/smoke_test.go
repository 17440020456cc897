package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	repos := writeThemesFixture(t, home)
	env := []string{"HOME=" + home, "MDX_REPOS_ROOT=" + repos, "MDX_BASE_COLOR=ocean", "NO_COLOR=1"}

	_, stderr, err := runPool(t, binaryPath, env, "base16", "like", "mocha")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runPool(t, binaryPath, env, "b", "ban")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runPool(t, binaryPath, env, "b", "pick")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, []string{"mocha", "eighties"}, strings.TrimSpace(stdout))

	stdout, stderr, err = runPool(t, binaryPath, env, "b")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "current item: ocean")
	assert.Contains(t, stdout, "BASE16 SHELL COLOR SCHEME POOL")

	_, _, err = runPool(t, binaryPath, env, "b", "ban", "mocha", "eighties")
	require.Error(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "pool-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pool")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build pool binary: %s", string(output))
	return binaryPath
}

func runPool(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeThemesFixture(t *testing.T, home string) string {
	t.Helper()

	repos := filepath.Join(home, "repos")
	base16 := filepath.Join(repos, "base16-shell")
	require.NoError(t, os.MkdirAll(base16, 0o755))
	for _, name := range []string{"base16-ocean.sh", "base16-mocha.sh", "base16-eighties.sh"} {
		require.NoError(t, os.WriteFile(filepath.Join(base16, name), nil, 0o644))
	}

	return repos
}
