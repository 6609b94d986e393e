package committype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s0ders/cz-config/czconfig"
)

func TestFlag_String(t *testing.T) {
	assert := assert.New(t)

	typesFlag := Flag{
		{Value: "feat", Name: "feat: new"},
		{Value: "fix", Name: "fix: bug"},
	}

	var emptyFlag Flag
	var nilFlag *Flag

	type test struct {
		got  *Flag
		want string
	}

	tests := []test{
		{got: &typesFlag, want: "[{\"value\":\"feat\",\"name\":\"feat: new\"},{\"value\":\"fix\",\"name\":\"fix: bug\"}]"},
		{got: &emptyFlag, want: "[]"},
		{got: nilFlag, want: "[]"},
	}

	for _, tc := range tests {
		assert.Equal(tc.want, tc.got.String())
	}
}

func TestFlag_Set(t *testing.T) {
	var flag Flag

	err := flag.Set(`[{"value": "feat", "name": "feat: new"}, {"value": "docs", "name": "docs: write"}]`)
	assert.NoError(t, err, "should not have errored")
	assert.Equal(t, []czconfig.CommitType{{Value: "feat", Name: "feat: new"}, {Value: "docs", Name: "docs: write"}}, flag.Types())

	err = flag.Set(`{"value": "feat"}`)
	assert.Error(t, err, "should have errored, not a JSON array")
}

func TestFlag_SetEmptyValues(t *testing.T) {
	var f Flag

	err := f.Set("")
	assert.NoError(t, err)
	assert.Len(t, f, 0)

	err = f.Set("[]")
	assert.NoError(t, err)
	assert.Len(t, f, 0)
}

func TestFlag_SetClearsPreviousValues(t *testing.T) {
	var f Flag

	err := f.Set(`[{"value":"first","name":"first"},{"value":"second","name":"second"}]`)
	assert.NoError(t, err)
	assert.Len(t, f, 2)

	err = f.Set(`[{"value":"third","name":"third"}]`)
	assert.NoError(t, err)
	assert.Len(t, f, 1)
	assert.Equal(t, "third", f[0].Value)
}

func TestFlag_Type(t *testing.T) {
	var f Flag

	assert.Equal(t, FlagType, f.Type())
}

func TestFlag_TypesNil(t *testing.T) {
	var nilFlag *Flag

	assert.Nil(t, nilFlag.Types())
}
