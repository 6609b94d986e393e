package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set via ldflags for CI builds, otherwise read from debug.ReadBuildInfo().
var (
	cmdVersion      string
	buildNumber     string
	buildCommitHash string
)

type buildInfo struct {
	Version  string
	Build    string
	Commit   string
	Modified bool
}

func (b buildInfo) String() string {
	version := b.Version
	if b.Modified {
		version += " (modified)"
	}

	out := fmt.Sprintf("Version: %s\n", version)
	if b.Build != "" {
		out += fmt.Sprintf("Build: %s\n", b.Build)
	}
	out += fmt.Sprintf("Commit: %s\n", b.Commit)

	return out
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display CLI current version",
		Long:  "Display CLI current version, the associated build number and commit hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), readBuildInfo())
			return err
		},
	}
}

// readBuildInfo prefers ldflags values and falls back to the module build information.
func readBuildInfo() buildInfo {
	info := buildInfo{
		Version: "unknown",
		Build:   buildNumber,
		Commit:  "unknown",
	}

	if cmdVersion != "" {
		info.Version = cmdVersion
	}
	if buildCommitHash != "" {
		info.Commit = buildCommitHash
	}

	module, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if cmdVersion == "" && module.Main.Version != "" {
		info.Version = module.Main.Version
	}

	for _, setting := range module.Settings {
		switch setting.Key {
		case "vcs.revision":
			if buildCommitHash == "" {
				info.Commit = setting.Value
				if len(info.Commit) > 12 {
					info.Commit = info.Commit[:12]
				}
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}
