package auth

import (
	"context"

	"hris/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	EmployeeID   string
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (User, error) {
	var out User
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash, role, COALESCE(employee_id, '')
    FROM users
    WHERE lower(email) = lower($1)
  `, email).Scan(&out.ID, &out.Email, &out.PasswordHash, &out.Role, &out.EmployeeID)
	return out, err
}

func (s *Store) CreateUser(ctx context.Context, email, passwordHash, role, employeeID string) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (email, password_hash, role, employee_id)
    VALUES ($1, $2, $3, NULLIF($4, ''))
    RETURNING id
  `, email, passwordHash, role, employeeID).Scan(&id)
	return id, err
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}
