package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
)

var testAdmin = &domain.Admin{
	ID:    77,
	Email: "admin@juancito.local",
	Role:  "admin",
}

func TestTokenRoundtrip(t *testing.T) {
	token, err := IssueToken("secret", testAdmin)
	require.NoError(t, err)

	claims, err := VerifyToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(77), claims.ID)
	assert.Equal(t, "admin@juancito.local", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", testAdmin)
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	claims := &Claims{
		ID:    77,
		Email: testAdmin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = VerifyToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMalformed(t *testing.T) {
	for _, bad := range []string{"", "garbage", "a.b.c"} {
		_, err := VerifyToken("secret", bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
