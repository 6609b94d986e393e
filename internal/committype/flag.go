// Package committype provides a command-line flag holding an ordered list of commit types.
package committype

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/s0ders/cz-config/czconfig"
)

const FlagType = "commitTypes"

// Flag is a JSON array of {"value": ..., "name": ...} objects. Order is preserved.
type Flag []czconfig.CommitType

func (f *Flag) String() string {
	if f == nil || len(*f) == 0 {
		return "[]"
	}

	b, err := json.Marshal(f)
	if err != nil {
		return "[]"
	}

	return string(b)
}

func (f *Flag) Set(value string) error {
	*f = Flag{}

	if value == "" || value == "[]" {
		return nil
	}

	var types []czconfig.CommitType
	if err := json.Unmarshal([]byte(value), &types); err != nil {
		return fmt.Errorf("unmarshalling %s flag value: %w", FlagType, err)
	}

	*f = types
	return nil
}

func (f *Flag) Type() string {
	return FlagType
}

// Types returns the parsed commit types.
func (f *Flag) Types() []czconfig.CommitType {
	if f == nil {
		return nil
	}
	return *f
}

var _ pflag.Value = (*Flag)(nil)
