package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"

	"hris/internal/domain/auth"
	"hris/internal/platform/config"
)

type seedDepartment struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type seedComponent struct {
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type"`
	Amount float64 `yaml:"amount"`
}

type seedFile struct {
	Version           int              `yaml:"version"`
	Departments       []seedDepartment `yaml:"departments"`
	PayrollComponents []seedComponent  `yaml:"payrollComponents"`
}

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.SeedFile) == "" {
		return nil
	}

	fixtures, err := loadSeedFile(cfg.SeedFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := ensureDepartments(ctx, pool, fixtures.Departments); err != nil {
		return err
	}
	return ensurePayrollComponents(ctx, pool, fixtures.PayrollComponents)
}

func loadSeedFile(path string) (seedFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return seedFile{}, err
	}
	return parseSeed(b)
}

func parseSeed(b []byte) (seedFile, error) {
	var sf seedFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return seedFile{}, err
	}
	if sf.Version != 1 {
		return seedFile{}, errors.New("seed: unsupported version")
	}
	for _, d := range sf.Departments {
		if strings.TrimSpace(d.Name) == "" {
			return seedFile{}, errors.New("seed: department name is required")
		}
	}
	for _, c := range sf.PayrollComponents {
		if strings.TrimSpace(c.Name) == "" {
			return seedFile{}, errors.New("seed: payroll component name is required")
		}
		if c.Type != "Allowance" && c.Type != "Deduction" {
			return seedFile{}, fmt.Errorf("seed: payroll component %q has invalid type %q", c.Name, c.Type)
		}
	}
	return sf, nil
}

func ensureDepartments(ctx context.Context, pool *pgxpool.Pool, departments []seedDepartment) error {
	for _, d := range departments {
		_, err := pool.Exec(ctx, `
    INSERT INTO departments (name, description)
    VALUES ($1, NULLIF($2, ''))
    ON CONFLICT (name) DO NOTHING
  `, d.Name, d.Description)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensurePayrollComponents(ctx context.Context, pool *pgxpool.Pool, components []seedComponent) error {
	for _, c := range components {
		_, err := pool.Exec(ctx, `
    INSERT INTO payroll_components (name, type, amount)
    VALUES ($1, $2, $3)
    ON CONFLICT (name) DO NOTHING
  `, c.Name, c.Type, c.Amount)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id int64
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, "INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING", email, hash, auth.RoleAdmin)
	return err
}
