// Package appcontext provides a structure to store the current application execution context.
//
// The use of this structure allows avoiding the use of global variables to share the states of variables across
// structures and functions.
package appcontext

import (
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/s0ders/cz-config/internal/committype"
)

type AppContext struct {
	Viper     *viper.Viper
	TypesFlag committype.Flag
	Logger    zerolog.Logger
	CfgFile   string
	WorkDir   string
	Verbose   bool
	// TypesSet records that --types was given, even as an empty array.
	TypesSet bool
}

func New() *AppContext {
	return &AppContext{
		Viper:  viper.New(),
		Logger: zerolog.Nop(),
	}
}
