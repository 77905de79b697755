package theme_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nameforge/pkg/theme"
)

func TestRoleMarshalJSON(t *testing.T) {
	t.Parallel()

	for _, role := range theme.Roles() {
		b, err := json.Marshal(role)
		require.NoError(t, err)
		assert.Equal(t, `"`+role.String()+`"`, string(b))
	}

	b, err := json.Marshal(theme.Role(42))
	require.NoError(t, err)
	assert.Equal(t, `"unknown"`, string(b))
}
