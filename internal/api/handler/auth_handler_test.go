package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kosaboard/board-api/internal/core/domain"
)

type stubAuthService struct {
	token  string
	member *domain.Member
	err    error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.Member, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.member, nil
}

func TestAuthHandlerLogin(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		token: "signed.jwt.token",
		member: &domain.Member{
			ID:       "m1",
			Username: "alice",
			Name:     "Alice Kim",
			Role:     domain.RoleUser,
		},
	})

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"right-password"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	if data["token"] != "signed.jwt.token" {
		t.Errorf("data.token = %v, want signed.jwt.token", data["token"])
	}
	member, _ := data["member"].(map[string]any)
	if member["username"] != "alice" {
		t.Errorf("data.member.username = %v, want alice", member["username"])
	}
}

func TestAuthHandlerLoginBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newTestContext(http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthHandlerLoginValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/auth/login", `{"username":"alice"}`)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}
