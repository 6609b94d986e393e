package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0ders/cz-config/internal/appcontext"
)

func NewRootCommand(ctx *appcontext.AppContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "cz-config",
		Short:        "cz-config - commit type configuration for commitizen-style prompts",
		Long:         "Expose the commit types, subject limit and body limit used by an interactive commit prompt, and check commit input against them",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ctx.Logger = newLogger(cmd.ErrOrStderr(), ctx.Verbose)
			ctx.TypesSet = cmd.Flags().Changed("types")
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&ctx.CfgFile, "config", "", "Configuration file (default is .cz-config.{json,yaml,toml} at the worktree root, then in $HOME)")
	flags.BoolVarP(&ctx.Verbose, "verbose", "v", false, "Verbose output")
	flags.Var(&ctx.TypesFlag, "types", "JSON array of commit types, e.g. '[{\"value\":\"feat\",\"name\":\"feat: New feature\"}]'")
	flags.Int("subject-limit", 0, "Maximum length of the commit subject")
	flags.Int("body-limit", 0, "Maximum length of the commit body")

	cobra.CheckErr(ctx.Viper.BindPFlag(keySubjectLimit, flags.Lookup("subject-limit")))
	cobra.CheckErr(ctx.Viper.BindPFlag(keyBodyLimit, flags.Lookup("body-limit")))

	rootCmd.AddCommand(
		NewShowCmd(ctx),
		NewTypesCmd(ctx),
		NewCheckCmd(ctx),
		NewValidateCmd(ctx),
		NewVersionCmd(),
	)

	return rootCmd
}

// newLogger writes JSON logs, or human-readable ones when w is a terminal.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f}
	}

	return zerolog.New(w).With().Timestamp().Logger()
}
