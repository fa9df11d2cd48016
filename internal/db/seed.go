package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/internal/auth"
	"hrdesk/internal/platform/config"
)

// Seed creates the initial admin user when none exists. It is a no-op unless
// both seed credentials are configured.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", cfg.SeedAdminEmail).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	var id string
	if err := pool.QueryRow(ctx, `
    INSERT INTO users (email, name, password_hash, is_admin)
    VALUES ($1,$2,$3,true)
    RETURNING id
  `, cfg.SeedAdminEmail, "Admin", hash).Scan(&id); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO balances (employee_id, total_days)
    VALUES ($1,$2)
    ON CONFLICT (employee_id) DO NOTHING
  `, id, cfg.DefaultTotalDays); err != nil {
		return err
	}

	slog.Info("seeded admin user", "email", cfg.SeedAdminEmail)
	return nil
}
