package ports

import (
	"context"

	"github.com/kosaboard/board-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Read methods join
// the author document in the same query so callers never do per-row lookups.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByIDWithAuthor(ctx context.Context, id string) (*domain.PostWithAuthor, error)
	// ListWithAuthor returns all posts newest-first.
	ListWithAuthor(ctx context.Context) ([]*domain.PostWithAuthor, error)
}
