package ports

import (
	"context"

	"github.com/kosaboard/board-api/internal/core/domain"
)

// MemberRepository defines persistence operations for member records.
// Username uniqueness is enforced by the store; a racing duplicate insert
// must surface as domain.ErrUsernameTaken.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	FindByUsername(ctx context.Context, username string) (*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	// UpdateProfile overwrites name and/or password hash for the given
	// username. Empty arguments leave the corresponding field untouched.
	UpdateProfile(ctx context.Context, username, name, passwordHash string) (*domain.Member, error)
}
