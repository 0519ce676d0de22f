package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// SharerClaims is the body of the token the gateway attaches to every
// forwarded call. UserID mirrors the X-Sharer-User-Id header.
type SharerClaims struct {
	UserID int64 `json:"user_id"`
	jwt.StandardClaims
}

// AuthService issues and checks the short-lived tokens that prove a call
// to the server came through the gateway.
type AuthService struct {
	jwtSecret  []byte
	tokenDurat time.Duration
	now        func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(jwtSecret string, tokenDurat time.Duration) *AuthService {
	if tokenDurat <= 0 {
		tokenDurat = time.Minute
	}
	return &AuthService{
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: tokenDurat,
		now:        time.Now,
	}
}

// WithClock replaces the time source used for issuing tokens.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// IssueToken signs a token for userID.
func (s *AuthService) IssueToken(userID int64) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SharerClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Issuer:    "shareit-gateway",
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenDurat).Unix(),
		},
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses a token and returns the user id it was issued for.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	claims := &SharerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return 0, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}
