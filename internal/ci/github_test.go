package ci

import (
	"os"
	"path/filepath"
	"testing"

	assertion "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCI_GenerateGitHubOutput(t *testing.T) {
	assert := assertion.New(t)

	outputPath := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", outputPath)

	err := GenerateGitHubOutput(false, WithViolations([]string{"type", "subject"}))
	require.NoError(t, err, "generating github output")

	got, err := os.ReadFile(outputPath)
	require.NoError(t, err, "reading output file")

	want := "\nCZ_CHECK_VALID=false\nCZ_CHECK_VIOLATIONS=type,subject\n"

	assert.Equal(want, string(got), "output should match")
}

func TestCI_GenerateGitHubOutput_Appends(t *testing.T) {
	assert := assertion.New(t)

	outputPath := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", outputPath)

	require.NoError(t, os.WriteFile(outputPath, []byte("EXISTING=1"), 0o644))

	err := GenerateGitHubOutput(true, WithPrefix("commit"))
	require.NoError(t, err, "generating github output")

	got, err := os.ReadFile(outputPath)
	require.NoError(t, err, "reading output file")

	assert.Equal("EXISTING=1\nCOMMIT_CHECK_VALID=true\nCOMMIT_CHECK_VIOLATIONS=\n", string(got))
}

func TestCI_GenerateGitHubOutput_NoEnv(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")
	require.NoError(t, os.Unsetenv("GITHUB_OUTPUT"))

	err := GenerateGitHubOutput(true)
	assertion.NoError(t, err, "should be a no-op without GITHUB_OUTPUT")
}
