package export

import (
	"github.com/thediveo/enumflag/v2"
)

// Format is the serialization used to export a configuration.
type Format enumflag.Flag

const (
	JSON Format = iota
	YAML
	TOML
	// JS is the CommonJS module read by cz-customizable (.cz-config.js).
	JS
)

var FormatIds = map[Format][]string{
	JSON: {"json"},
	YAML: {"yaml", "yml"},
	TOML: {"toml"},
	JS:   {"js", "javascript"},
}

func (f Format) String() string {
	if ids, ok := FormatIds[f]; ok {
		return ids[0]
	}
	return "unknown"
}
