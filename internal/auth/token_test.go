package auth

import (
	"testing"
	"time"

	dom "MedDesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAccount = dom.Account{
	ID:       "7b0d2c0e-3f7e-4f6f-9d35-032b6e3a3a10",
	Username: "alice",
	IsAdmin:  true,
}

func TestIssueAndParseAccess(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, time.Hour)

	access, refresh, err := m.IssuePair(testAccount)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := m.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, testAccount.ID, claims.AccountID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, time.Hour)

	_, refresh, err := m.IssuePair(testAccount)
	require.NoError(t, err)

	_, err = m.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, time.Hour)

	access, _, err := m.IssuePair(testAccount)
	require.NoError(t, err)

	_, err = m.Refresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshIssuesWorkingAccessToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, time.Hour)

	_, refresh, err := m.IssuePair(testAccount)
	require.NoError(t, err)

	access, err := m.Refresh(refresh)
	require.NoError(t, err)

	claims, err := m.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, testAccount.ID, claims.AccountID)
	assert.True(t, claims.IsAdmin)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute, time.Hour)

	access, _, err := m.IssuePair(testAccount)
	require.NoError(t, err)

	_, err = m.ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, time.Hour)
	other := NewTokenManager("other-secret", time.Minute, time.Hour)

	access, _, err := m.IssuePair(testAccount)
	require.NoError(t, err)

	_, err = other.ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
