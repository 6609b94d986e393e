package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/s0ders/cz-config/internal/appcontext"
	"github.com/s0ders/cz-config/internal/export"
)

func NewShowCmd(ctx *appcontext.AppContext) *cobra.Command {
	format := export.JSON

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the commit types, subject limit and body limit in a format readable by a commit prompt engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configureCommitPrompt(ctx)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			ctx.Logger.Debug().Str("format", format.String()).Msg("exporting configuration")

			return export.Write(cmd.OutOrStdout(), cfg, format)
		},
	}

	showCmd.Flags().VarP(
		enumflag.New(&format, "format", export.FormatIds, enumflag.EnumCaseInsensitive),
		"format", "f",
		"Output format (json, yaml, toml, js)")

	return showCmd
}
