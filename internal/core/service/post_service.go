package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kosaboard/board-api/internal/core/domain"
	"github.com/kosaboard/board-api/internal/core/ports"
)

// FeedCache abstracts the short-lived cache in front of the post feed query
// (Redis). A failing cache only degrades to a database read.
type FeedCache interface {
	// Get returns the cached feed and whether it was present.
	Get(ctx context.Context) ([]ports.PostSummary, bool, error)
	Set(ctx context.Context, feed []ports.PostSummary) error
	Invalidate(ctx context.Context) error
}

// PostService implements the board's content use cases.
type PostService struct {
	repo    ports.PostRepository
	members ports.MemberRepository
	cache   FeedCache
	logger  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, members ports.MemberRepository, cache FeedCache, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, members: members, cache: cache, logger: logger}
}

// ListAll returns post summaries newest-first. Each summary carries the
// author's current display name, joined in a single query.
func (s *PostService) ListAll(ctx context.Context) ([]ports.PostSummary, error) {
	if s.cache != nil {
		feed, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("feed cache read failed, falling back to database")
		} else if hit {
			return feed, nil
		}
	}

	posts, err := s.repo.ListWithAuthor(ctx)
	if err != nil {
		return nil, err
	}

	feed := make([]ports.PostSummary, len(posts))
	for i, p := range posts {
		feed[i] = ports.PostSummary{
			ID:         p.ID,
			Title:      p.Title,
			AuthorName: p.Author.Name,
			CreatedAt:  p.CreatedAt,
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, feed); err != nil {
			s.logger.Warn().Err(err).Msg("feed cache write failed")
		}
	}

	return feed, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*ports.PostDetail, error) {
	post, err := s.repo.FindByIDWithAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDetail(post), nil
}

// Create persists a post authored by the authenticated caller and returns
// the full detail.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*ports.PostDetail, error) {
	author, err := s.members.FindByUsername(ctx, input.AuthorUsername)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.AuthorUsername).Msg("failed to create post")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("feed cache invalidation failed")
		}
	}

	s.logger.Info().Str("id", created.ID).Str("username", input.AuthorUsername).Msg("post created")

	return &ports.PostDetail{
		ID:             created.ID,
		Title:          created.Title,
		Content:        created.Content,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		AuthorName:     author.Name,
		CreatedAt:      created.CreatedAt,
	}, nil
}

// IsAuthor reports whether username wrote the post identified by postID.
func (s *PostService) IsAuthor(ctx context.Context, postID, username string) (bool, error) {
	post, err := s.repo.FindByIDWithAuthor(ctx, postID)
	if err != nil {
		return false, err
	}
	return post.Author.Username == username, nil
}

func toDetail(p *domain.PostWithAuthor) *ports.PostDetail {
	return &ports.PostDetail{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		AuthorID:       p.Author.ID,
		AuthorUsername: p.Author.Username,
		AuthorName:     p.Author.Name,
		CreatedAt:      p.CreatedAt,
	}
}
