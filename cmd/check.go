package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/s0ders/cz-config/czconfig"
	"github.com/s0ders/cz-config/internal/appcontext"
	"github.com/s0ders/cz-config/internal/ci"
)

var ErrInvalidCommitInput = errors.New("commit input rejected")

func NewCheckCmd(ctx *appcontext.AppContext) *cobra.Command {
	var (
		typeValue  string
		subject    string
		body       string
		jsonOutput bool
	)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check a commit type, subject and body against the configuration",
		Long:  "Check that the commit type is one of the configured types and that the subject and body fit their limits. Only the given fields are checked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configureCommitPrompt(ctx)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			var candidate czconfig.Candidate

			flags := cmd.Flags()
			if flags.Changed("type") {
				candidate.Type = lo.ToPtr(typeValue)
			}
			if flags.Changed("subject") {
				candidate.Subject = lo.ToPtr(subject)
			}
			if flags.Changed("body") {
				candidate.Body = lo.ToPtr(body)
			}

			result := cfg.Check(candidate)
			fields := lo.Map(result.Violations, func(v czconfig.Violation, _ int) string {
				return v.Field
			})

			err = ci.GenerateGitHubOutput(result.Valid(), ci.WithViolations(fields))
			if err != nil {
				return fmt.Errorf("generating github output: %w", err)
			}

			if jsonOutput {
				err = ci.NewJSONOutput(cfg, typeValue, result).Write(cmd.OutOrStdout())
				if err != nil {
					return err
				}
			} else {
				printCheckResult(cmd, cfg, candidate, result)
			}

			ctx.Logger.Debug().Bool("valid", result.Valid()).Strs("violations", fields).Msg("commit input checked")

			if !result.Valid() {
				return fmt.Errorf("%w: %w", ErrInvalidCommitInput, result.Err())
			}

			return nil
		},
	}

	checkCmd.Flags().StringVarP(&typeValue, "type", "t", "", "Commit type value (e.g. feat)")
	checkCmd.Flags().StringVarP(&subject, "subject", "s", "", "Commit subject line")
	checkCmd.Flags().StringVarP(&body, "body", "b", "", "Commit body")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")

	return checkCmd
}

func printCheckResult(cmd *cobra.Command, cfg czconfig.Config, candidate czconfig.Candidate, result czconfig.Result) {
	out := cmd.OutOrStdout()

	if result.Valid() {
		if candidate.Type != nil {
			commitType, _ := cfg.Lookup(*candidate.Type)
			_, _ = fmt.Fprintf(out, "✓ %s\n", commitType.Name)
			return
		}

		_, _ = fmt.Fprintln(out, "✓ Commit input valid")
		return
	}

	for _, v := range result.Violations {
		_, _ = fmt.Fprintf(out, "✗ %s\n", v.Error())
	}

	if candidate.Type != nil && !cfg.ValidType(*candidate.Type) {
		_, _ = fmt.Fprintf(out, "\nAllowed types: %s\n", strings.Join(cfg.Values(), ", "))
	}
}
