package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"smartkumbh-http-service/config"
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	Authenticate(username, password string) (string, error)
	GenerateToken(username, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
}

// JWTService issues and validates admin tokens. The single admin
// account comes from configuration; its password is bcrypt-hashed at
// service construction so the plaintext never sits in memory longer
// than startup.
type JWTService struct {
	secretKey     string
	issuer        string
	adminUsername string
	adminHash     []byte
}

// JWTClaims defines the token claims
type JWTClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails for out-of-range cost; DefaultCost cannot.
		panic(fmt.Sprintf("hash admin password: %v", err))
	}
	return &JWTService{
		secretKey:     cfg.JWTSecretKey,
		issuer:        "smartkumbh-http-service",
		adminUsername: cfg.AdminUsername,
		adminHash:     hash,
	}
}

// Authenticate checks the admin credentials and returns a signed token
func (s *JWTService) Authenticate(username, password string) (string, error) {
	if username != s.adminUsername {
		return "", errors.New("unknown user")
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return "", errors.New("incorrect password")
	}
	return s.GenerateToken(username, "admin")
}

// GenerateToken generates a JWT token valid for 24 hours
func (s *JWTService) GenerateToken(username, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken validates a JWT token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}
