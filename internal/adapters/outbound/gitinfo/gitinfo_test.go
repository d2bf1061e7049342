package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/logcheck/logcheck/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitInfo_CommitHash_ReturnsHash(t *testing.T) {
	dir := initRepoWithCommit(t)

	gi := gitinfo.New()
	hash, err := gi.CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
}

func TestGitInfo_CommitHash_FromSubdirectory(t *testing.T) {
	dir := initRepoWithCommit(t)
	logs := filepath.Join(dir, "logs")
	require.NoError(t, os.Mkdir(logs, 0755))

	hash, err := gitinfo.New().CommitHash(logs)
	require.NoError(t, err)
	assert.Len(t, hash, 40)
}

func TestGitInfo_CommitHash_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	_, err := gi.CommitHash(dir)
	assert.Error(t, err)
}

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	f := filepath.Join(dir, "SmithJohnLog.csv")
	require.NoError(t, os.WriteFile(f, []byte("Smith,John\n"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
