package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/kosaboard/board-api/internal/core/domain"
	"github.com/kosaboard/board-api/internal/core/ports"
)

func newAuthFixture(t *testing.T) (*AuthService, *MemberService) {
	t.Helper()
	members := newMemberService(newStubMemberRepo())
	auth := NewAuthService(members, "secret", time.Hour, zerolog.Nop())
	return auth, members
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, members := newAuthFixture(t)

	created, err := members.Register(context.Background(), ports.RegisterInput{Username: "user1", Password: "1234", Name: "Son"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, member, err := auth.Login(context.Background(), "user1", "1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if member.Username != "user1" {
		t.Fatalf("unexpected member: %+v", member)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "user1" {
		t.Fatalf("username claim = %v", claims["username"])
	}
	if claims["role"] != string(domain.RoleUser) {
		t.Fatalf("role claim = %v", claims["role"])
	}
	if claims["sub"] != created.ID {
		t.Fatalf("sub claim = %v, want %s", claims["sub"], created.ID)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, members := newAuthFixture(t)

	if _, err := members.Register(context.Background(), ports.RegisterInput{Username: "user1", Password: "1234", Name: "Son"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := auth.Login(context.Background(), "user1", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	auth, _ := newAuthFixture(t)

	if _, _, err := auth.Login(context.Background(), "ghost", "1234"); err != domain.ErrMemberNotFound {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	auth, _ := newAuthFixture(t)

	if _, _, err := auth.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
