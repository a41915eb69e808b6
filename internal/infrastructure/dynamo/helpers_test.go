package dynamo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateExpr_SetOnly(t *testing.T) {
	expr, names, values, err := buildUpdateExpr(map[string]interface{}{"verified": true}, nil)
	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", expr)
	assert.Equal(t, map[string]string{"#f0": "verified"}, names)
	assert.Len(t, values, 1)
}

func TestBuildUpdateExpr_RemoveOnly(t *testing.T) {
	expr, names, values, err := buildUpdateExpr(nil, []string{"reset_token", "reset_expires_at"})
	require.NoError(t, err)
	assert.Equal(t, "REMOVE #f0, #f1", expr)
	assert.Equal(t, map[string]string{"#f0": "reset_token", "#f1": "reset_expires_at"}, names)
	assert.Empty(t, values)
}

func TestBuildUpdateExpr_SetAndRemove(t *testing.T) {
	expr, names, values, err := buildUpdateExpr(
		map[string]interface{}{"verified": true},
		[]string{"verification_token", "verification_expires_at"},
	)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(expr, "SET "))
	assert.Contains(t, expr, " REMOVE ")
	assert.Len(t, names, 3)
	assert.Len(t, values, 1)
}

func TestBuildUpdateExpr_Empty(t *testing.T) {
	_, _, _, err := buildUpdateExpr(nil, nil)
	assert.Error(t, err)
}
