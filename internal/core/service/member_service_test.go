package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kosaboard/board-api/internal/core/domain"
	"github.com/kosaboard/board-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubMemberRepo struct {
	byUsername map[string]*domain.Member
	nextID     int
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{byUsername: make(map[string]*domain.Member)}
}

func cloneMember(m *domain.Member) *domain.Member {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubMemberRepo) Create(_ context.Context, member *domain.Member) (*domain.Member, error) {
	if _, exists := r.byUsername[member.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	clone := cloneMember(member)
	r.nextID++
	clone.ID = fmt.Sprintf("id-%d", r.nextID)
	r.byUsername[clone.Username] = clone
	return cloneMember(clone), nil
}

func (r *stubMemberRepo) FindByUsername(_ context.Context, username string) (*domain.Member, error) {
	m, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return cloneMember(m), nil
}

func (r *stubMemberRepo) FindByID(_ context.Context, id string) (*domain.Member, error) {
	for _, m := range r.byUsername {
		if m.ID == id {
			return cloneMember(m), nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) UpdateProfile(_ context.Context, username, name, passwordHash string) (*domain.Member, error) {
	m, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	if name != "" {
		m.Name = name
	}
	if passwordHash != "" {
		m.PasswordHash = passwordHash
	}
	return cloneMember(m), nil
}

func newMemberService(repo ports.MemberRepository) *MemberService {
	return NewMemberService(repo, NewPasswordHasher(), zerolog.Nop())
}

// ---------------------------------------------------------------------------

func TestMemberService_Register_Success(t *testing.T) {
	svc := newMemberService(newStubMemberRepo())

	member, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "user1", Password: "1234", Name: "Son",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if member.ID == "" {
		t.Fatalf("expected generated id")
	}
	if member.Role != domain.RoleUser {
		t.Fatalf("default role = %s, want %s", member.Role, domain.RoleUser)
	}
	if member.PasswordHash == "1234" {
		t.Fatalf("password must be hashed")
	}
	if member.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
}

func TestMemberService_Register_DuplicateUsername(t *testing.T) {
	svc := newMemberService(newStubMemberRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "user1", Password: "1234", Name: "Son"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "user1", Password: "other", Name: "Kim"}); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestMemberService_ValidatePassword(t *testing.T) {
	svc := newMemberService(newStubMemberRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "user1", Password: "1234", Name: "Son"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ok, err := svc.ValidatePassword(context.Background(), "user1", "1234")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = svc.ValidatePassword(context.Background(), "user1", "wrong")
	if err != nil {
		t.Fatalf("mismatch must not error: %v", err)
	}
	if ok {
		t.Fatalf("wrong password must not validate")
	}

	if _, err := svc.ValidatePassword(context.Background(), "ghost", "1234"); err != domain.ErrMemberNotFound {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestMemberService_UpdateProfile_Partial(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "user1", Password: "1234", Name: "Son"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Name only; blank password is a no-op.
	updated, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{Username: "user1", NewName: "  Heung-min  "})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Heung-min" {
		t.Fatalf("name = %q, want trimmed %q", updated.Name, "Heung-min")
	}
	if ok, _ := svc.ValidatePassword(context.Background(), "user1", "1234"); !ok {
		t.Fatalf("password changed by name-only update")
	}

	// Password only; blank name is a no-op.
	if _, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{Username: "user1", NewPassword: "newpass"}); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if ok, _ := svc.ValidatePassword(context.Background(), "user1", "newpass"); !ok {
		t.Fatalf("new password does not validate")
	}
	if ok, _ := svc.ValidatePassword(context.Background(), "user1", "1234"); ok {
		t.Fatalf("old password still validates")
	}

	m, err := svc.FindByUsername(context.Background(), "user1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if m.Name != "Heung-min" {
		t.Fatalf("name reset by password-only update")
	}
}

func TestMemberService_FindByID_Parity(t *testing.T) {
	svc := newMemberService(newStubMemberRepo())

	created, err := svc.Register(context.Background(), ports.RegisterInput{Username: "user1", Password: "1234", Name: "Son"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	byID, err := svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	byName, err := svc.FindByUsername(context.Background(), "user1")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if byID.ID != byName.ID || byID.Username != byName.Username || byID.Role != byName.Role {
		t.Fatalf("lookup by id and username disagree: %+v vs %+v", byID, byName)
	}

	if _, err := svc.FindByID(context.Background(), "missing"); err != domain.ErrMemberNotFound {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}
