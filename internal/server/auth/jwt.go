// Package auth implements the credential primitives of the server: HS256
// token issuance/validation and bcrypt password hashing.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"user-service/internal/common"
)

// Claims is the token payload: the identity the token vouches for plus the
// standard registered claims ("exp" carries the expiry).
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateToken issues an HS256-signed token naming username, valid for
// validityDuration from now. It returns the compact token string and the
// expiry it was signed with.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(validityDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// GetClaimsFromToken parses and verifies a token string. Only HS256 is
// accepted; tokens claiming any other algorithm (including "none") are
// rejected. Every failure mode — malformed structure, signature mismatch,
// missing or past expiry — collapses to common.ErrorInvalidToken so that no
// root-cause detail crosses the trust boundary.
func GetClaimsFromToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	return claims, nil
}
