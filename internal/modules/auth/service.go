package auth

import (
	"crypto/subtle"

	"gymmaster/internal/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service exchanges the desk's shared staff credentials for a bearer token.
type Service struct {
	username     string
	passwordHash []byte
	tokens       *jwt.Service
	log          *zap.Logger
}

func NewService(username, passwordHash string, tokens *jwt.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
		log:          log.Named("auth"),
	}
}

func (s *Service) Login(req LoginRequest) (*LoginResponse, error) {
	if s.tokens == nil || s.username == "" || len(s.passwordHash) == 0 {
		return nil, ErrLoginDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	// always compare the hash so a wrong username costs the same time
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		s.log.Warn("staff login rejected", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(req.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{AccessToken: token, TokenType: "Bearer"}, nil
}

// HashPassword produces a value suitable for STAFF_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
