// Package ci provides function to generate output for CI/CD pipelines.
package ci

import (
	"fmt"
	"os"
	"strings"
)

type OptionFunc func(*githubOutput)

type githubOutput struct {
	prefix string
	fields []string
}

// WithPrefix sets the prefix of every written variable, "CZ" by default.
func WithPrefix(prefix string) OptionFunc {
	return func(o *githubOutput) {
		o.prefix = prefix
	}
}

// WithViolations lists the fields that failed the check.
func WithViolations(fields []string) OptionFunc {
	return func(o *githubOutput) {
		o.fields = fields
	}
}

// GenerateGitHubOutput appends the check result to the file pointed by $GITHUB_OUTPUT, if any.
func GenerateGitHubOutput(valid bool, options ...OptionFunc) (err error) {
	path, exists := os.LookupEnv("GITHUB_OUTPUT")
	if !exists {
		return nil
	}

	o := &githubOutput{prefix: "CZ"}
	for _, option := range options {
		option(o)
	}

	prefix := strings.ToUpper(o.prefix)
	output := fmt.Sprintf("\n%s_CHECK_VALID=%t\n%s_CHECK_VIOLATIONS=%s\n", prefix, valid, prefix, strings.Join(o.fields, ","))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ci file: %w", err)
	}

	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing ci file: %w", closeErr)
		}
	}()

	_, err = f.WriteString(output)
	if err != nil {
		return fmt.Errorf("writing to ci file: %w", err)
	}

	return nil
}
