package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/domain/auth"
	"ems/internal/domain/model"
	"ems/internal/platform/config"
)

// Seed makes sure a usable admin account and the starter departments and
// designations exist. Every step is idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdminUser(ctx, pool, cfg); err != nil {
		return err
	}
	if err := ensureDepartments(ctx, pool); err != nil {
		return err
	}
	return ensureDesignations(ctx, pool)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE username = $1", cfg.SeedAdminUsername).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.SeedAdminPassword
	if password == "" {
		if cfg.Environment == "production" {
			return fmt.Errorf("seed admin password required in production")
		}
		password = "ChangeMe123"
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (username, password_hash, email, role, created_at, created_by, is_active, is_deleted)
    VALUES ($1, $2, $3, $4, now(), 'System', true, false)
  `, cfg.SeedAdminUsername, hash, cfg.SeedAdminEmail, model.RoleAdmin)
	return err
}

func ensureDepartments(ctx context.Context, pool *pgxpool.Pool) error {
	departments := []struct {
		name string
		code string
	}{
		{"Human Resources", "HR"},
		{"Engineering", "ENG"},
		{"Finance", "FIN"},
		{"Operations", "OPS"},
	}
	for _, d := range departments {
		if _, err := pool.Exec(ctx, `
      INSERT INTO departments (name, code, created_at, created_by, is_active, is_deleted)
      SELECT $1, $2, now(), 'System', true, false
      WHERE NOT EXISTS (SELECT 1 FROM departments WHERE code = $2)
    `, d.name, d.code); err != nil {
			return err
		}
	}
	return nil
}

func ensureDesignations(ctx context.Context, pool *pgxpool.Pool) error {
	designations := []struct {
		title string
		code  string
		level int
	}{
		{"Junior Associate", "JA", 1},
		{"Associate", "AS", 2},
		{"Senior Associate", "SA", 3},
		{"Manager", "MG", 4},
		{"Director", "DR", 5},
	}
	for _, d := range designations {
		if _, err := pool.Exec(ctx, `
      INSERT INTO designations (title, code, level, created_at, created_by, is_active, is_deleted)
      SELECT $1, $2, $3, now(), 'System', true, false
      WHERE NOT EXISTS (SELECT 1 FROM designations WHERE code = $2)
    `, d.title, d.code, d.level); err != nil {
			return err
		}
	}
	return nil
}
