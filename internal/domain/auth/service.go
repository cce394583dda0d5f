package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"hris/internal/platform/querier"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 12 * time.Hour

type StoreAPI interface {
	FindUserByEmail(ctx context.Context, email string) (User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

type Service struct {
	store  StoreAPI
	secret string
}

func NewService(store StoreAPI, secret string) *Service {
	return &Service{store: store, secret: secret}
}

type LoginResult struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
	ExpiresAt  string `json:"expiresAt"`
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.store.FindUserByEmail(ctx, strings.TrimSpace(email))
	if querier.IsNoRows(err) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}
	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.secret, Claims{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
	}, tokenTTL)
	if err != nil {
		return LoginResult{}, err
	}
	if err := s.store.UpdateLastLogin(ctx, user.ID); err != nil {
		slog.Warn("update last login failed", "userId", user.ID, "err", err)
	}
	return LoginResult{
		Token:      token,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
		ExpiresAt:  time.Now().Add(tokenTTL).UTC().Format(time.RFC3339),
	}, nil
}
