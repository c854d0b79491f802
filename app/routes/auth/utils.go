package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
)

const sessionDuration = 24 * time.Hour

type JWTClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func getJWTSecret() []byte {
	if config.AppConfig != nil {
		return []byte(config.AppConfig.JWTSecret)
	}
	return []byte(config.GetEnv("JWT_SECRET", "hotel-app-secret-key"))
}

// GenerateJWT issues the session token handed out after a successful login.
func GenerateJWT(username string) (string, error) {
	claims := JWTClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "hotel-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}
