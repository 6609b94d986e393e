package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmd_Version(t *testing.T) {
	ctx := newTestContext(t)

	stdout, _, err := execute(ctx, "version")

	assert.NoError(t, err, "version command executed with error")
	assert.Contains(t, stdout, "Version: ")
	assert.Contains(t, stdout, "Commit: ")
}

func TestBuildInfo_String(t *testing.T) {
	info := buildInfo{Version: "v1.2.3", Build: "42", Commit: "abcdef", Modified: true}

	assert.Equal(t, "Version: v1.2.3 (modified)\nBuild: 42\nCommit: abcdef\n", info.String())

	info = buildInfo{Version: "v1.2.3", Commit: "abcdef"}

	assert.Equal(t, "Version: v1.2.3\nCommit: abcdef\n", info.String())
}
