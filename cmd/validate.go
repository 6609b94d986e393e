package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/s0ders/cz-config/internal/appcontext"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

type ValidationResult struct {
	Errors   []string
	Warnings []string
}

func (v *ValidationResult) AddError(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *ValidationResult) AddWarning(format string, args ...interface{}) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v *ValidationResult) HasErrors() bool {
	return len(v.Errors) > 0
}

var knownKeys = map[string]struct{}{
	keyTypes:        {},
	keySubjectLimit: {},
	keyBodyLimit:    {},
}

func NewValidateCmd(ctx *appcontext.AppContext) *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate <CONFIGURATION_FILE_PATH>",
		Short: "Validate a configuration file",
		Long:  "Validate a JSON, YAML or TOML configuration file for syntax and semantic errors, reporting all of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := args[0]

			result, err := validateConfigFile(configPath)
			if err != nil {
				return err
			}

			printValidationResult(cmd, configPath, result)

			ctx.Logger.Debug().
				Str("path", configPath).
				Int("errors", len(result.Errors)).
				Int("warnings", len(result.Warnings)).
				Msg("configuration file validated")

			if result.HasErrors() {
				return fmt.Errorf("%w: %d error(s)", ErrInvalidConfiguration, len(result.Errors))
			}

			return nil
		},
	}

	return validateCmd
}

func validateConfigFile(path string) (*ValidationResult, error) {
	result := &ValidationResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config map[string]interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("invalid TOML syntax: %w", err)
		}
	case ".json", ".yaml", ".yml":
		// JSON documents are valid YAML.
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("invalid YAML syntax: %w", err)
		}
	case ".js":
		return nil, fmt.Errorf("%w: %s is a JavaScript module, which \"show --format js\" can produce but which cannot be validated", ErrUnsupportedConfigFormat, path)
	default:
		return nil, fmt.Errorf("%w: %s (expected one of %s)", ErrUnsupportedConfigFormat, path, strings.Join(configExtensions, ", "))
	}

	validateKeys(config, result)
	validateTypes(config[keyTypes], result)
	validateLimit(config, keySubjectLimit, result)
	validateLimit(config, keyBodyLimit, result)

	return result, nil
}

func validateKeys(config map[string]interface{}, result *ValidationResult) {
	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := knownKeys[key]; ok {
			continue
		}

		if known, ok := matchKeyFold(key); ok {
			result.AddWarning("key %q differs from %q only by case, did you mean %q?", key, known, known)
			continue
		}

		result.AddWarning("unknown key %q (expected %q, %q or %q)", key, keyTypes, keySubjectLimit, keyBodyLimit)
	}
}

func matchKeyFold(key string) (string, bool) {
	for known := range knownKeys {
		if strings.EqualFold(key, known) {
			return known, true
		}
	}

	return "", false
}

func validateTypes(types interface{}, result *ValidationResult) {
	if types == nil {
		result.AddWarning("no types configured, default types will be used")
		return
	}

	typeList, ok := toList(types)
	if !ok {
		result.AddError("types: expected an array, got %T", types)
		return
	}

	if len(typeList) == 0 {
		result.AddError("types: at least one commit type is required")
		return
	}

	seenValues := make(map[string]int)

	for i, item := range typeList {
		commitType, ok := item.(map[string]interface{})
		if !ok {
			if str, isStr := item.(string); isStr {
				result.AddError("types[%d]: expected object with \"value\" and \"name\" keys, got string %q (use \"- value: %s\" instead)", i, str, str)
			} else {
				result.AddError("types[%d]: expected object with \"value\" and \"name\" keys, got %T", i, item)
			}
			continue
		}

		value, ok := requiredString(commitType, "value", i, result)
		if !ok {
			continue
		}

		if first, exists := seenValues[value]; exists {
			result.AddError("types[%d]: duplicate value %q (already used by types[%d])", i, value, first)
		} else {
			seenValues[value] = i
		}

		if suggestion := suggestCommitType(value); suggestion != "" {
			result.AddWarning("types[%d]: unconventional value %q (did you mean %q?)", i, value, suggestion)
		}

		name, ok := requiredString(commitType, "name", i, result)
		if ok && !strings.HasPrefix(name, value) {
			result.AddWarning("types[%d]: name %q does not start with its value %q", i, name, value)
		}

		for key := range commitType {
			if key != "value" && key != "name" {
				result.AddWarning("types[%d]: unknown key %q", i, key)
			}
		}
	}
}

func requiredString(item map[string]interface{}, key string, index int, result *ValidationResult) (string, bool) {
	raw, ok := item[key]
	if !ok {
		result.AddError("types[%d]: %q key is required", index, key)
		return "", false
	}

	str, ok := raw.(string)
	if !ok {
		result.AddError("types[%d]: %q must be a string, got %T", index, key, raw)
		return "", false
	}

	if str == "" {
		result.AddError("types[%d]: %q cannot be empty", index, key)
		return "", false
	}

	return str, true
}

func validateLimit(config map[string]interface{}, key string, result *ValidationResult) {
	raw, ok := config[key]
	if !ok {
		return
	}

	limit, ok := toInt(raw)
	if !ok {
		result.AddError("%s: expected an integer, got %T", key, raw)
		return
	}

	if limit <= 0 {
		result.AddError("%s: must be a positive integer, got %d", key, limit)
	}
}

func toList(v interface{}) ([]interface{}, bool) {
	switch list := v.(type) {
	case []interface{}:
		return list, true
	case []map[string]interface{}:
		out := make([]interface{}, len(list))
		for i, item := range list {
			out[i] = item
		}
		return out, true
	default:
		return nil, false
	}
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func suggestCommitType(input string) string {
	input = strings.ToLower(input)

	suggestions := map[string]string{
		"feature":  "feat",
		"features": "feat",
		"bugfix":   "fix",
		"bug":      "fix",
		"fixes":    "fix",
		"document": "docs",
		"doc":      "docs",
		"testing":  "test",
		"tests":    "test",
		"styles":   "style",
		"refact":   "refactor",
		"chores":   "chore",
	}

	return suggestions[input]
}

func printValidationResult(cmd *cobra.Command, path string, result *ValidationResult) {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Validating %s...\n\n", path)

	if !result.HasErrors() && len(result.Warnings) == 0 {
		_, _ = fmt.Fprintln(out, "✓ Configuration valid")
		_, _ = fmt.Fprintf(out, "\n0 errors, 0 warnings\n")
		return
	}

	for _, err := range result.Errors {
		_, _ = fmt.Fprintf(out, "✗ %s\n", err)
	}

	for _, warn := range result.Warnings {
		_, _ = fmt.Fprintf(out, "⚠ %s\n", warn)
	}

	_, _ = fmt.Fprintf(out, "\n%d error(s), %d warning(s)\n", len(result.Errors), len(result.Warnings))
}
