package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "quill-api"

// DefaultTokenTTL is the lifetime of issued access tokens.
const DefaultTokenTTL = 20 * time.Minute

// ErrInvalidToken is returned by Verify for any token that cannot be
// accepted: bad signature, malformed structure, missing claims, or expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the subject a verified token resolves to.
type Identity struct {
	Username string
	UserID   string
}

// tokenClaims embeds the registered claim set and carries the subject user id.
// The username rides in the standard "sub" claim.
type tokenClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited identity tokens.
// Tokens are stateless; there is no revocation before expiry.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with the given HMAC secret.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret not configured")
	}
	return &TokenService{secret: []byte(secret), now: time.Now}, nil
}

// Issue creates a signed token for the given subject with an absolute expiry
// of issuance time plus ttl.
func (s *TokenService) Issue(username, userID string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string. It fails when the signature
// does not match, the token is malformed, required claims are missing, or the
// current time is at or past the embedded expiry. No clock skew leeway is
// granted; the expiry instant itself is already invalid.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if claims.Subject == "" || claims.UserID == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{Username: claims.Subject, UserID: claims.UserID}, nil
}
