package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) *TokenService {
	t.Helper()
	svc, err := NewTokenService(secret)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestService(t, "test_secret")

	token, err := svc.Issue("alice", "user-1", DefaultTokenTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "user-1", identity.UserID)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuing := newTestService(t, "issuing_secret")
	verifying := newTestService(t, "other_secret")

	token, err := issuing.Issue("alice", "user-1", DefaultTokenTTL)
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := newTestService(t, "test_secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "abc.def"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Verify(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenService_MissingClaims(t *testing.T) {
	svc := newTestService(t, "test_secret")

	// Signed with the right secret but stripped of the subject and uid claims.
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MissingExpiry(t *testing.T) {
	svc := newTestService(t, "test_secret")

	claims := tokenClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "alice",
			Issuer:  issuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	ttl := 20 * time.Minute

	svc := newTestService(t, "test_secret")
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("alice", "user-1", ttl)
	require.NoError(t, err)

	tests := []struct {
		name  string
		now   time.Time
		valid bool
	}{
		{name: "immediately after issuance", now: issuedAt, valid: true},
		{name: "one second before expiry", now: issuedAt.Add(ttl - time.Second), valid: true},
		{name: "at expiry instant", now: issuedAt.Add(ttl), valid: false},
		{name: "after expiry", now: issuedAt.Add(ttl + time.Second), valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc.now = func() time.Time { return tc.now }
			_, err := svc.Verify(token)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidToken)
			}
		})
	}
}
