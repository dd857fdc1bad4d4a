package services

import (
	"errors"
	"time"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/security"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong admin password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAuthNotConfigured is returned when no admin password hash is set.
var ErrAuthNotConfigured = errors.New("admin authentication is not configured")

const adminTokenTTL = 12 * time.Hour

// AuthService authenticates the admin surface with a single bcrypt-hashed
// password and short-lived JWTs.
type AuthService struct {
	jwtSecret         string
	adminPasswordHash string
	logger            *logging.ChanneledLogger
}

// NewAuthService creates a new auth application service
func NewAuthService(jwtSecret, adminPasswordHash string, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		jwtSecret:         jwtSecret,
		adminPasswordHash: adminPasswordHash,
		logger:            logger,
	}
}

// Login verifies the admin password and issues a session token.
func (s *AuthService) Login(password string) (string, error) {
	if s.adminPasswordHash == "" || s.jwtSecret == "" {
		return "", ErrAuthNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		s.logger.Auth().Warn("Admin login rejected")
		return "", ErrInvalidCredentials
	}

	token, err := security.GenerateAdminToken(s.jwtSecret, adminTokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Auth().Info("Admin login succeeded")
	return token, nil
}

// ValidateToken checks an admin session token.
func (s *AuthService) ValidateToken(token string) error {
	if s.jwtSecret == "" {
		return ErrAuthNotConfigured
	}

	claims, err := security.ValidateJWT(token, s.jwtSecret)
	if err != nil {
		return err
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return errors.New("token is not an admin token")
	}

	return nil
}
