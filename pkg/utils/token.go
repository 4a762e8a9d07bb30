package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appErrors "car-selling-service/pkg/errors"
)

// Claims carries the standard registered claims plus the owning user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

func GenerateToken(userID string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: userID,
	})

	return token.SignedString(secret)
}

// ParseToken verifies the token signature and expiry and returns the embedded
// user ID. Failures are reported as the token sentinels in pkg/errors.
func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", appErrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", appErrors.ErrTokenSignatureInvalid
		default:
			return "", appErrors.ErrTokenMalformed
		}
	}

	if !token.Valid || claims.UserID == "" {
		return "", appErrors.ErrTokenMalformed
	}

	return claims.UserID, nil
}
