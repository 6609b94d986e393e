package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0ders/cz-config/czconfig"
)

func TestTypesCmd_DefaultOrder(t *testing.T) {
	ctx := newTestContext(t)

	stdout, _, err := execute(ctx, "types")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t, "feat\tfeat: ✨ New feature", lines[0])
	assert.Equal(t, "fix\tfix: 🐛 Bug fix", lines[1])
	assert.Equal(t, "chore\tchore: 🔧 Build process changes", lines[6])
}

func TestTypesCmd_FromFlag(t *testing.T) {
	ctx := newTestContext(t)

	stdout, _, err := execute(ctx, "types", "--types", `[{"value":"b","name":"b: second"},{"value":"a","name":"a: first"}]`)
	require.NoError(t, err)

	assert.Equal(t, "b\tb: second\na\ta: first\n", stdout)
}

func TestTypesCmd_InvalidTypesFlag(t *testing.T) {
	ctx := newTestContext(t)

	_, _, err := execute(ctx, "types", "--types", `{"value":"feat"}`)

	assert.Error(t, err)
}

func TestTypesCmd_EmptyTypesFlag(t *testing.T) {
	ctx := newTestContext(t)

	stdout, _, err := execute(ctx, "types", "--types", "[]")

	assert.ErrorIs(t, err, czconfig.ErrNoTypes)
	assert.Empty(t, stdout)
}

func TestTypesCmd_EmptyTypesFlagOverridesConfigFile(t *testing.T) {
	ctx := newTestContext(t)

	path := writeFile(t, t.TempDir(), "cz.yaml", "types:\n  - value: feat\n    name: \"feat: New\"\n")

	_, _, err := execute(ctx, "types", "--config", path, "--types", "[]")

	assert.ErrorIs(t, err, czconfig.ErrNoTypes)
}
