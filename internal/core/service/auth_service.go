package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/kosaboard/board-api/internal/core/domain"
	"github.com/kosaboard/board-api/internal/core/ports"
)

// AuthService verifies credentials and mints HS256 bearer tokens carrying
// the member id, username and role as self-describing claims.
type AuthService struct {
	members   ports.MemberService
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(members ports.MemberService, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{members: members, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login resolves the member, checks the password and returns a signed token
// together with the authenticated member.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Member, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	member, err := s.members.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	ok, err := s.members.ValidatePassword(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		s.logger.Warn().Str("username", username).Msg("login failed: wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.mintToken(member)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, member, nil
}

func (s *AuthService) mintToken(member *domain.Member) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      member.ID,
		"username": member.Username,
		"role":     string(member.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
