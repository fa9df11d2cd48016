package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateRecord(ctx context.Context, rec Record) (Record, error) {
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, start_at, ip_address, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, rec.EmployeeID, rec.Date, rec.StartAt, rec.IPAddress, int(rec.Status)).Scan(&rec.ID); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// FindByDate returns the employee's record for the calendar date, if any.
func (s *Store) FindByDate(ctx context.Context, employeeID string, date time.Time) (Record, bool, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, date, start_at, end_at, ip_address, status
    FROM attendance
    WHERE employee_id = $1 AND date = $2
  `, employeeID, date).Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.StartAt, &rec.EndAt, &rec.IPAddress, &rec.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

func (s *Store) CloseRecord(ctx context.Context, id string, endAt time.Time) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE attendance
    SET end_at = $2, status = $3
    WHERE id = $1 AND end_at IS NULL
  `, id, endAt, int(StatusAccepted))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoOpenRecord
	}
	return nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, date, start_at, end_at, ip_address, status
    FROM attendance
    WHERE employee_id = $1 AND date >= $2 AND date <= $3
    ORDER BY date DESC
  `, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.StartAt, &rec.EndAt, &rec.IPAddress, &rec.Status); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
