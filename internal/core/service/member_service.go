package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kosaboard/board-api/internal/core/domain"
	"github.com/kosaboard/board-api/internal/core/ports"
)

// MemberService implements registration, lookup and profile updates.
type MemberService struct {
	repo   ports.MemberRepository
	hasher *PasswordHasher
	logger zerolog.Logger
}

func NewMemberService(repo ports.MemberRepository, hasher *PasswordHasher, logger zerolog.Logger) *MemberService {
	return &MemberService{repo: repo, hasher: hasher, logger: logger}
}

// Register creates a member with the default ROLE_USER role. A duplicate
// username, including one racing this insert, surfaces as ErrUsernameTaken
// from the store's uniqueness constraint.
func (s *MemberService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Member, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		Username:     input.Username,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", input.Username).Msg("registration failed")
		return nil, err
	}

	s.logger.Info().Str("id", created.ID).Str("username", created.Username).Msg("member registered")
	return created, nil
}

func (s *MemberService) FindByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *MemberService) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.repo.FindByID(ctx, id)
}

// ValidatePassword reports whether plain matches the stored hash for username.
func (s *MemberService) ValidatePassword(ctx context.Context, username, plain string) (bool, error) {
	member, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.hasher.Verify(plain, member.PasswordHash)
}

// UpdateProfile applies a partial update: blank fields are no-ops, a new name
// is trimmed, a new password is re-hashed before storage.
func (s *MemberService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.Member, error) {
	name := strings.TrimSpace(input.NewName)

	var hash string
	if strings.TrimSpace(input.NewPassword) != "" {
		h, err := s.hasher.Hash(input.NewPassword)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	updated, err := s.repo.UpdateProfile(ctx, input.Username, name, hash)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", input.Username).Msg("member profile updated")
	return updated, nil
}
