package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, malformed token, expiry. Callers cannot tell which check
// failed, so neither can clients.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the token payload. Access tokens carry the subject's role;
// refresh tokens carry only the subject and therefore can never satisfy a
// role check.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed HS256 tokens. Tokens are
// self-contained; rotating the secret invalidates everything outstanding.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(secret []byte, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("token service: signing secret is empty")
	}
	return &TokenService{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// IssueAccessToken creates a short-lived token carrying the subject's role.
func (s *TokenService) IssueAccessToken(subjectID, role string) (string, error) {
	return s.issue(subjectID, role, s.accessTTL)
}

// IssueRefreshToken creates a long-lived token identifying the subject only.
func (s *TokenService) IssueRefreshToken(subjectID string) (string, error) {
	return s.issue(subjectID, "", s.refreshTTL)
}

func (s *TokenService) issue(subjectID, role string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the payload.
func (s *TokenService) Verify(tokenStr string) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return *claims, nil
}
