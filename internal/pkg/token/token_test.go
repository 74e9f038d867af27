package token

import (
	"testing"
	"time"

	"marketplace-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	signed, err := m.Issue(42, "provider", "pro@example.com")
	assert.NoError(t, err)

	claims, err := m.Parse(signed)
	assert.NoError(t, err)
	assert.Equal(t, "provider", claims.Role)
	assert.Equal(t, "pro@example.com", claims.Email)

	id, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseRejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	signed, _ := m.Issue(1, "client", "c@example.com")

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewManager("other", time.Hour).Parse(signed)
		assert.True(t, errors.Is(err, errors.KindUnauthorized))
	})

	t.Run("expired", func(t *testing.T) {
		later := NewManager("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Parse(signed)
		assert.True(t, errors.Is(err, errors.KindUnauthorized))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.True(t, errors.Is(err, errors.KindUnauthorized))
	})
}
