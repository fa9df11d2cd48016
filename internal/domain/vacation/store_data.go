package vacation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateRequest(ctx context.Context, req Request) (Request, error) {
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO vacations (employee_id, category, start_at, end_at, approval)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id, created_at, updated_at
  `, req.EmployeeID, int(req.Category), req.StartAt, req.EndAt, int(req.Approval)).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Store) UpdateRequest(ctx context.Context, req Request) (Request, error) {
	if err := s.DB.QueryRow(ctx, `
    UPDATE vacations
    SET category = $2, start_at = $3, end_at = $4, approval = $5, updated_at = now()
    WHERE id = $1
    RETURNING updated_at
  `, req.ID, int(req.Category), req.StartAt, req.EndAt, int(req.Approval)).Scan(&req.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Request{}, ErrNotFound
		}
		return Request{}, err
	}
	return req, nil
}

func (s *Store) GetRequest(ctx context.Context, id string) (Request, error) {
	var req Request
	if err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, category, start_at, end_at, approval, created_at, updated_at
    FROM vacations
    WHERE id = $1
  `, id).Scan(&req.ID, &req.EmployeeID, &req.Category, &req.StartAt, &req.EndAt, &req.Approval, &req.CreatedAt, &req.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Request{}, ErrNotFound
		}
		return Request{}, err
	}
	return req, nil
}

func (s *Store) DeleteRequest(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM vacations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListRequests(ctx context.Context, filter RequestFilter) ([]Request, error) {
	query := `
    SELECT id, employee_id, category, start_at, end_at, approval, created_at, updated_at
    FROM vacations
    WHERE 1=1
  `
	var args []any

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if len(filter.Categories) > 0 {
		query += " AND category IN " + intSet(&args, categoryValues(filter.Categories))
	}
	if len(filter.ExcludeCategories) > 0 {
		query += " AND category NOT IN " + intSet(&args, categoryValues(filter.ExcludeCategories))
	}
	if len(filter.Approvals) > 0 {
		query += " AND approval IN " + intSet(&args, approvalValues(filter.Approvals))
	}
	if filter.Year != 0 {
		args = append(args, time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC))
		query += fmt.Sprintf(" AND start_at >= $%d", len(args))
		args = append(args, time.Date(filter.Year, time.December, 31, 23, 59, 59, 0, time.UTC))
		query += fmt.Sprintf(" AND start_at <= $%d", len(args))
	}
	if filter.ExcludeID != "" {
		args = append(args, filter.ExcludeID)
		query += fmt.Sprintf(" AND id <> $%d", len(args))
	}
	query += " ORDER BY start_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.Category, &req.StartAt, &req.EndAt, &req.Approval, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *Store) GetBalance(ctx context.Context, employeeID string) (Balance, error) {
	bal, err := s.scanBalance(ctx, employeeID)
	if err == nil {
		return bal, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Balance{}, err
	}

	if _, err := s.DB.Exec(ctx, `
    INSERT INTO balances (employee_id, total_days)
    VALUES ($1,$2)
    ON CONFLICT (employee_id) DO NOTHING
  `, employeeID, s.DefaultTotalDays); err != nil {
		return Balance{}, err
	}
	return s.scanBalance(ctx, employeeID)
}

func (s *Store) scanBalance(ctx context.Context, employeeID string) (Balance, error) {
	var bal Balance
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, total_days, used_days, sick_days, comp_days, updated_at
    FROM balances
    WHERE employee_id = $1
  `, employeeID).Scan(&bal.EmployeeID, &bal.TotalDays, &bal.UsedDays, &bal.SickDays, &bal.CompDays, &bal.UpdatedAt)
	return bal, err
}

func (s *Store) SaveBalance(ctx context.Context, bal Balance) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO balances (employee_id, total_days, used_days, sick_days, comp_days)
    VALUES ($1,$2,$3,$4,$5)
    ON CONFLICT (employee_id) DO UPDATE
    SET total_days = EXCLUDED.total_days,
        used_days  = EXCLUDED.used_days,
        sick_days  = EXCLUDED.sick_days,
        comp_days  = EXCLUDED.comp_days,
        updated_at = now()
  `, bal.EmployeeID, bal.TotalDays, bal.UsedDays, bal.SickDays, bal.CompDays)
	return err
}

func (s *Store) SetTotalDays(ctx context.Context, employeeID string, totalDays float64) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO balances (employee_id, total_days)
    VALUES ($1,$2)
    ON CONFLICT (employee_id) DO UPDATE SET total_days = EXCLUDED.total_days, updated_at = now()
  `, employeeID, totalDays)
	return err
}

func intSet(args *[]any, values []int) string {
	placeholders := make([]string, 0, len(values))
	for _, v := range values {
		*args = append(*args, v)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(*args)))
	}
	return "(" + strings.Join(placeholders, ",") + ")"
}

func categoryValues(cats []Category) []int {
	out := make([]int, 0, len(cats))
	for _, c := range cats {
		out = append(out, int(c))
	}
	return out
}

func approvalValues(states []Approval) []int {
	out := make([]int, 0, len(states))
	for _, a := range states {
		out = append(out, int(a))
	}
	return out
}
