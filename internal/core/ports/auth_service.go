package ports

import (
	"context"

	"github.com/kosaboard/board-api/internal/core/domain"
)

// AuthService verifies credentials and mints bearer tokens.
type AuthService interface {
	// Login returns a signed token and the authenticated member.
	// Unknown username → domain.ErrMemberNotFound; wrong password →
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.Member, error)
}
