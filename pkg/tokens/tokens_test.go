package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Issue(42, "Customer")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Customer", claims.Role)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Issue(1, "Admin")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Issue(1, "Customer")
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
