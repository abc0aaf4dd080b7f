// Package auth mints and verifies the HS256 access tokens of the admin
// surface.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rcnapps/ordinand/internal/common"
)

// Claims includes the registered claims plus the admin account id.
type Claims struct {
	jwt.RegisteredClaims
	AdminID string
}

func GenerateToken(adminID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		AdminID: adminID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetAdminIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.AdminID, nil
}
