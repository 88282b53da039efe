// Package auth gates the one mutating endpoint this module's HTTP API
// exposes — saving a generated grid — behind bcrypt password hashing and
// HS256 JWTs, narrowed from this lineage's full user/session auth down to a
// single-identity "who may persist a grid" check.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrTokenExpired       = errors.New("auth: token expired")
	ErrInvalidToken       = errors.New("auth: invalid token")
)

// Claims identifies the caller a token was issued to.
type Claims struct {
	Subject string `json:"subject"`
	jwt.RegisteredClaims
}

// Service hashes/checks passwords and issues/validates JWTs.
type Service struct {
	jwtSecret     []byte
	tokenDuration time.Duration
}

// New returns a Service signing tokens with jwtSecret, valid for 24 hours.
func New(jwtSecret string) *Service {
	return &Service{
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
	}
}

// HashPassword hashes a password using bcrypt.
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a password against a hash.
func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken creates a new JWT token identifying subject.
func (s *Service) GenerateToken(subject string) (string, error) {
	claims := &Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "wordgrid",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RefreshToken issues a new token for the same subject with extended
// expiration.
func (s *Service) RefreshToken(claims *Claims) (string, error) {
	return s.GenerateToken(claims.Subject)
}
