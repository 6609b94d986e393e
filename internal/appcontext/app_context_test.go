package appcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	ctx := New()

	assert.NotNil(t, ctx)
	assert.NotNil(t, ctx.Viper)
}

func TestAppContext_DefaultValues(t *testing.T) {
	ctx := New()

	assert.Empty(t, ctx.CfgFile)
	assert.Empty(t, ctx.WorkDir)
	assert.Empty(t, ctx.TypesFlag)
	assert.False(t, ctx.TypesSet)
	assert.False(t, ctx.Verbose)
}
