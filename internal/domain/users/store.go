package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hrdesk/internal/platform/querier"
)

var ErrNotFound = errors.New("user not found")

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, u User) (User, error) {
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO users (email, name, password_hash, is_admin)
    VALUES ($1,$2,$3,$4)
    RETURNING id, created_at
  `, u.Email, u.Name, u.PasswordHash, u.Admin).Scan(&u.ID, &u.CreatedAt); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Store) Get(ctx context.Context, id string) (User, error) {
	return s.scan(ctx, "WHERE id = $1", id)
}

func (s *Store) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.scan(ctx, "WHERE email = $1", email)
}

func (s *Store) scan(ctx context.Context, where string, arg any) (User, error) {
	var u User
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, name, password_hash, is_admin, created_at
    FROM users `+where, arg).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Admin, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Store) List(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, email, name, password_hash, is_admin, created_at
    FROM users
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Admin, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
