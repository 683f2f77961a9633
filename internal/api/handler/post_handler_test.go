package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kosaboard/board-api/internal/core/domain"
	"github.com/kosaboard/board-api/internal/core/ports"
)

type stubPostService struct {
	feed    []ports.PostSummary
	details map[string]*ports.PostDetail

	listErr   error
	createErr error
}

func (s *stubPostService) ListAll(_ context.Context) ([]ports.PostSummary, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.feed, nil
}

func (s *stubPostService) GetByID(_ context.Context, id string) (*ports.PostDetail, error) {
	d, ok := s.details[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return d, nil
}

func (s *stubPostService) Create(_ context.Context, input ports.CreatePostInput) (*ports.PostDetail, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &ports.PostDetail{
		ID:             "p1",
		Title:          input.Title,
		Content:        input.Content,
		AuthorID:       "m-" + input.AuthorUsername,
		AuthorUsername: input.AuthorUsername,
		AuthorName:     "Stub Author",
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func (s *stubPostService) IsAuthor(_ context.Context, postID, username string) (bool, error) {
	d, ok := s.details[postID]
	if !ok {
		return false, domain.ErrPostNotFound
	}
	return d.AuthorUsername == username, nil
}

func TestPostHandlerList(t *testing.T) {
	h := NewPostHandler(&stubPostService{
		feed: []ports.PostSummary{
			{ID: "p2", Title: "second", AuthorName: "Bob"},
			{ID: "p1", Title: "first", AuthorName: "Alice"},
		},
	})

	c, rec := newTestContext(http.MethodGet, "/api/posts", "")

	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("len(data) = %d, want 2", len(data))
	}
	first, _ := data[0].(map[string]any)
	if first["id"] != "p2" {
		t.Errorf("data[0].id = %v, want p2", first["id"])
	}
}

func TestPostHandlerGetNotFound(t *testing.T) {
	h := NewPostHandler(&stubPostService{details: map[string]*ports.PostDetail{}})

	c, _ := newTestContext(http.MethodGet, "/api/posts/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestPostHandlerCreate(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, rec := newTestContext(http.MethodPost, "/api/posts",
		`{"title":"hello board","content":"first post"}`)
	authenticate(c, &domain.Member{ID: "m1", Username: "alice", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	if data["title"] != "hello board" {
		t.Errorf("data.title = %v, want hello board", data["title"])
	}
	if data["author_username"] != "alice" {
		t.Errorf("data.author_username = %v, want alice", data["author_username"])
	}
}

func TestPostHandlerCreateUnauthenticated(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, _ := newTestContext(http.MethodPost, "/api/posts",
		`{"title":"hello","content":"body"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 HTTPError", err)
	}
}

func TestPostHandlerCreateValidation(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, _ := newTestContext(http.MethodPost, "/api/posts", `{"content":"no title"}`)
	authenticate(c, &domain.Member{ID: "m1", Username: "alice", Role: domain.RoleUser})

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}
