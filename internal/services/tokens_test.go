package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viltrumflow/taskflow-api/internal/constants"
)

func TestTokenManager_IssueVerify(t *testing.T) {
	m := NewTokenManager("secret", time.Minute, time.Hour)

	pair, err := m.Issue(42)
	require.NoError(t, err)
	assert.Equal(t, constants.TokenTypeBearer, pair.TokenType)

	id, err := m.Verify(pair.AccessToken, constants.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	id, err = m.Verify(pair.RefreshToken, constants.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Minute, time.Hour)
	pair, err := m.Issue(7)
	require.NoError(t, err)

	expired := NewTokenManager("secret", time.Minute, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue(7)
	require.NoError(t, err)

	otherKey, err := NewTokenManager("other", time.Minute, time.Hour).Issue(7)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Type: constants.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		kind  string
		want  error
	}{
		{name: "refresh used as access", token: pair.RefreshToken, kind: constants.TokenKindAccess, want: ErrWrongTokenKind},
		{name: "access used as refresh", token: pair.AccessToken, kind: constants.TokenKindRefresh, want: ErrWrongTokenKind},
		{name: "expired", token: old.AccessToken, kind: constants.TokenKindAccess, want: ErrInvalidToken},
		{name: "wrong key", token: otherKey.AccessToken, kind: constants.TokenKindAccess, want: ErrInvalidToken},
		{name: "alg none", token: unsigned, kind: constants.TokenKindAccess, want: ErrInvalidToken},
		{name: "garbage", token: "a.b.c", kind: constants.TokenKindAccess, want: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token, tt.kind)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
