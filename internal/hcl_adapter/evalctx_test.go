package hcl_adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNewEvalContext_SkipsInvalidNames(t *testing.T) {
	t.Parallel()

	ctx := newEvalContext([]string{"HOME=/root", "BAD-NAME=1", "=empty", "NOEQUALS", "_ok=yes"})

	env := ctx.Variables["env"]
	require.True(t, env.Type().IsObjectType())
	attrs := env.AsValueMap()
	assert.Len(t, attrs, 2)
	assert.Equal(t, cty.StringVal("/root"), attrs["HOME"])
	assert.Equal(t, cty.StringVal("yes"), attrs["_ok"])
}
