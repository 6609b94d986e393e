package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0ders/cz-config/czconfig"
	"github.com/s0ders/cz-config/internal/appcontext"
	"github.com/s0ders/cz-config/internal/worktree"
)

const (
	configName = ".cz-config"

	keyTypes        = "types"
	keySubjectLimit = "subjectLimit"
	keyBodyLimit    = "bodyLimit"
)

var ErrUnsupportedConfigFormat = errors.New("unsupported configuration file format")

// configExtensions lists the configuration file formats, in discovery order.
var configExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// configureCommitPrompt resolves the effective configuration. Flags take precedence over the configuration file,
// which takes precedence over the built-in defaults.
func configureCommitPrompt(ctx *appcontext.AppContext) (czconfig.Config, error) {
	defaults := czconfig.Load()

	if err := readConfigFile(ctx); err != nil {
		return defaults, err
	}

	v := ctx.Viper
	v.SetDefault(keySubjectLimit, defaults.SubjectLimit)
	v.SetDefault(keyBodyLimit, defaults.BodyLimit)

	var (
		cfg czconfig.Config
		err error
	)

	cfg.SubjectLimit, err = configuredLimit(v, keySubjectLimit, czconfig.ErrInvalidSubjectLimit)
	if err != nil {
		return cfg, fmt.Errorf("validating configuration: %w", err)
	}

	cfg.BodyLimit, err = configuredLimit(v, keyBodyLimit, czconfig.ErrInvalidBodyLimit)
	if err != nil {
		return cfg, fmt.Errorf("validating configuration: %w", err)
	}

	switch {
	case ctx.TypesSet:
		ctx.Logger.Debug().Msg("using commit types from flag")
		cfg.Types = slices.Clone(ctx.TypesFlag.Types())
	case v.IsSet(keyTypes):
		ctx.Logger.Debug().Msg("using commit types from configuration file")
		if err := v.UnmarshalKey(keyTypes, &cfg.Types); err != nil {
			return cfg, fmt.Errorf("unmarshalling commit types: %w", err)
		}
	default:
		cfg.Types = defaults.Types
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating configuration: %w", err)
	}

	ctx.Logger.Debug().
		Strs("types", cfg.Values()).
		Int("subject-limit", cfg.SubjectLimit).
		Int("body-limit", cfg.BodyLimit).
		Msg("configuration loaded")

	return cfg, nil
}

// configuredLimit reads a limit without coercion: strings and fractional numbers are rejected.
func configuredLimit(v *viper.Viper, key string, sentinel error) (int, error) {
	raw := v.Get(key)

	limit, ok := toInt(raw)
	if !ok {
		return 0, fmt.Errorf("%s: expected an integer, got %T (%v): %w", key, raw, raw, sentinel)
	}

	return limit, nil
}

func readConfigFile(ctx *appcontext.AppContext) error {
	v := ctx.Viper

	path := ctx.CfgFile
	if path == "" {
		found, err := findConfigFile(ctx)
		if err != nil {
			return err
		}

		if found == "" {
			ctx.Logger.Debug().Msg("no configuration file found, using defaults")
			return nil
		}

		path = found
	}

	if !slices.Contains(configExtensions, strings.ToLower(filepath.Ext(path))) {
		return fmt.Errorf("%w: %s (expected one of %s)", ErrUnsupportedConfigFormat, path, strings.Join(configExtensions, ", "))
	}

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading configuration file: %w", err)
	}

	ctx.Logger.Debug().Str("path", v.ConfigFileUsed()).Msg("using configuration file")

	return nil
}

// findConfigFile looks for .cz-config.<ext> at the worktree root, then in the home directory. It returns an empty
// path when there is none.
func findConfigFile(ctx *appcontext.AppContext) (string, error) {
	dir := ctx.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}

	var searchPaths []string

	root, err := worktree.Root(dir)
	switch {
	case err == nil:
		searchPaths = append(searchPaths, root)
	case errors.Is(err, worktree.ErrNotRepository):
		ctx.Logger.Debug().Str("dir", dir).Msg("not inside a git worktree")
	default:
		return "", fmt.Errorf("locating worktree root: %w", err)
	}

	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}

	for _, searchPath := range searchPaths {
		for _, ext := range configExtensions {
			candidate := filepath.Join(searchPath, configName+ext)

			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}

	return "", nil
}
