package ports

import (
	"context"

	"github.com/kosaboard/board-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a member account.
// Role is never part of the input: every new member starts as ROLE_USER.
type RegisterInput struct {
	Username string
	Password string
	Name     string
}

// UpdateProfileInput is a partial update: blank fields are no-ops.
type UpdateProfileInput struct {
	Username    string
	NewName     string
	NewPassword string
}

// MemberService defines use-case operations for member accounts.
type MemberService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Member, error)
	FindByUsername(ctx context.Context, username string) (*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	// ValidatePassword reports whether plain matches the stored hash for
	// username. Used at login time only, never exposed to clients.
	ValidatePassword(ctx context.Context, username, plain string) (bool, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Member, error)
}
