package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"butce/internal/config"
)

// Claims are the session token claims the API verifies. The subject is the
// provider-assigned user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func jwtKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// IssueToken signs an HS256 session token for the given identity. The
// local provider uses this; a remote provider issues its own tokens signed
// with the same configured secret.
func IssueToken(userID, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(config.Get().JWTExpirationDur)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "butce-api",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey())
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates a session token and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
