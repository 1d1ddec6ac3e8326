package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fiscal/tax-management-system/internal/core/domain"
	"github.com/fiscal/tax-management-system/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	now := time.Now().UTC()
	created, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_GetUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice", "alice@example.com", "pass123")

	user, err := svc.GetUser(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetUser(context.Background(), 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "bob", "bob@example.com", "oldpass")
	oldHash := seeded.PasswordHash

	updated, err := svc.UpdateUser(context.Background(), seeded.ID, ports.UpdateUserInput{
		Username: "bobby",
		Email:    "bobby@example.com",
		Password: "newpass",
	})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if updated.Username != "bobby" || updated.Email != "bobby@example.com" {
		t.Fatalf("fields not updated: %+v", updated)
	}
	if updated.PasswordHash == oldHash {
		t.Fatalf("expected password hash to change")
	}
	if updated.PasswordHash == "newpass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_UpdateUser_EmptyPasswordKeepsHash(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "carol", "carol@example.com", "pass123")

	updated, err := svc.UpdateUser(context.Background(), seeded.ID, ports.UpdateUserInput{
		Username: "carol",
		Email:    "carol@corp.example.com",
	})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if updated.PasswordHash != seeded.PasswordHash {
		t.Fatalf("expected hash untouched when password is empty")
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateUser(context.Background(), 42, ports.UpdateUserInput{
		Username: "ghost", Email: "ghost@example.com",
	}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "dave", "dave@example.com", "pass123")

	if err := svc.DeleteUser(context.Background(), seeded.ID); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.DeleteUser(context.Background(), 42); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("delete should not be called for a missing user")
	}
}
