package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/tsundokuhq/tsundoku/pkg/config"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing.
	BcryptCost = 12
	// TokenExpiry is how long JWT tokens are valid.
	TokenExpiry = 7 * 24 * time.Hour // 7 days

	adminSubject = "admin"
)

// JWTClaims represents the claims in a session token.
type JWTClaims struct {
	jwt.RegisteredClaims
}

// Service handles the single-admin authentication. The admin password comes
// from config and is hashed once at startup; there is no user table.
type Service struct {
	passwordHash []byte
	jwtSecret    []byte
}

// NewService creates a new auth service.
func NewService(cfg *config.Config) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), BcryptCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Service{
		passwordHash: hash,
		jwtSecret:    []byte(cfg.JWTSecret),
	}, nil
}

// Authenticate checks the supplied password against the admin password.
func (s *Service) Authenticate(password string) error {
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if err != nil {
		return errcodes.Unauthorized("Invalid password")
	}
	return nil
}

// GenerateToken creates a new signed session token.
func (s *Service) GenerateToken() (string, error) {
	now := time.Now()
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signedToken, nil
}

// ValidateToken validates a session token and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.Subject != adminSubject {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
