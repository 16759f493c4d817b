package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
)

// TokenTTL is the fixed validity of an issued admin token. There is no
// revocation list; a signed, unexpired token is trusted as-is.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers malformed, badly signed and expired tokens
// alike. Callers must not distinguish the cause.
var ErrInvalidToken = errors.New("invalid token")

// Claims embedded in the admin bearer token. Role is carried but never
// checked anywhere.
type Claims struct {
	ID    int64  `json:"id,string"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a HS256 token for the admin with a 7 day expiry.
func IssueToken(secret string, admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:    admin.ID,
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken parses and validates a bearer token, returning the
// embedded claims. Every failure mode maps to ErrInvalidToken.
func VerifyToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
