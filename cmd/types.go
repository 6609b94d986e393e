package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0ders/cz-config/internal/appcontext"
)

func NewTypesCmd(ctx *appcontext.AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List commit types in menu order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configureCommitPrompt(ctx)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, t := range cfg.Types {
				_, _ = fmt.Fprintf(out, "%s\t%s\n", t.Value, t.Name)
			}

			return nil
		},
	}
}
