package ports

import (
	"context"
	"time"
)

// CreatePostInput carries the data needed to create a post. The author is
// always the authenticated caller, never client-supplied.
type CreatePostInput struct {
	Title          string
	Content        string
	AuthorUsername string
}

// PostSummary is the lightweight item used in list responses; content is
// omitted to keep payloads small.
type PostSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostDetail is the full post view including author identification, enough
// for clients to render the post and check edit rights.
type PostDetail struct {
	ID             string
	Title          string
	Content        string
	AuthorID       string
	AuthorUsername string
	AuthorName     string
	CreatedAt      time.Time
}

// PostService defines use-case operations for posts.
type PostService interface {
	// ListAll returns summaries newest-first, each carrying the author's
	// current display name.
	ListAll(ctx context.Context) ([]PostSummary, error)
	GetByID(ctx context.Context, id string) (*PostDetail, error)
	Create(ctx context.Context, input CreatePostInput) (*PostDetail, error)
	// IsAuthor reports whether username wrote the post. Authorization helper
	// for upcoming edit/delete endpoints.
	IsAuthor(ctx context.Context, postID, username string) (bool, error)
}
