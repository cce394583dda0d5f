package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

type fakeUserStore struct {
	users map[string]User
}

func (f *fakeUserStore) FindUserByEmail(ctx context.Context, email string) (User, error) {
	u, ok := f.users[email]
	if !ok {
		return User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserStore) UpdateLastLogin(ctx context.Context, userID int64) error {
	return nil
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	hash, err := HashPassword("ChangeMe123!")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	store := &fakeUserStore{users: map[string]User{
		"manager@hris.local": {ID: 7, Email: "manager@hris.local", PasswordHash: hash, Role: RoleManager, EmployeeID: "EMP007"},
	}}
	svc := NewService(store, "test-secret")

	result, err := svc.Login(context.Background(), "manager@hris.local", "ChangeMe123!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, err := ParseToken("test-secret", result.Token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Role != RoleManager || claims.EmployeeID != "EMP007" || claims.UserID != 7 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsWrongPasswordAndUnknownUser(t *testing.T) {
	hash, _ := HashPassword("right")
	store := &fakeUserStore{users: map[string]User{"a@b.c": {ID: 1, Email: "a@b.c", PasswordHash: hash, Role: RoleAdmin}}}
	svc := NewService(store, "s")

	if _, err := svc.Login(context.Background(), "a@b.c", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@b.c", "right"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	token, err := GenerateToken("one", Claims{UserID: 1, Role: RoleAdmin}, time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken("two", token); err == nil {
		t.Fatal("expected signature error")
	}
}
