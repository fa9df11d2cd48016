package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hrdesk/internal/platform/calendar"
)

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNoOpenRecord      = errors.New("no open attendance record")
	ErrAddressNotAllowed = errors.New("address not allowed to check in")
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type Service struct {
	Store StoreAPI
	Clock Clock

	// AllowedPrefixes restricts check-ins to office addresses. Matching is a
	// plain string-prefix test, so "10.1." covers the whole office subnet.
	// An empty list allows every address.
	AllowedPrefixes []string
}

func NewService(store StoreAPI, clock Clock, allowedPrefixes []string) *Service {
	return &Service{Store: store, Clock: clock, AllowedPrefixes: allowedPrefixes}
}

// CheckIn opens today's record. One record per employee per calendar day.
func (s *Service) CheckIn(ctx context.Context, employeeID, ip string) (Record, error) {
	if !s.addressAllowed(ip) {
		return Record{}, ErrAddressNotAllowed
	}

	now := s.Clock.Now()
	today := calendar.DateOf(now)
	if _, exists, err := s.Store.FindByDate(ctx, employeeID, today); err != nil {
		return Record{}, fmt.Errorf("find attendance: %w", err)
	} else if exists {
		return Record{}, ErrAlreadyCheckedIn
	}

	return s.Store.CreateRecord(ctx, Record{
		EmployeeID: employeeID,
		Date:       today,
		StartAt:    now,
		IPAddress:  ip,
		Status:     StatusSubmitted,
	})
}

// CheckOut stamps the end of today's open record.
func (s *Service) CheckOut(ctx context.Context, employeeID string) (Record, error) {
	now := s.Clock.Now()
	today := calendar.DateOf(now)
	rec, exists, err := s.Store.FindByDate(ctx, employeeID, today)
	if err != nil {
		return Record{}, fmt.Errorf("find attendance: %w", err)
	}
	if !exists || rec.EndAt != nil {
		return Record{}, ErrNoOpenRecord
	}

	if err := s.Store.CloseRecord(ctx, rec.ID, now); err != nil {
		return Record{}, err
	}
	rec.EndAt = &now
	rec.Status = StatusAccepted
	return rec, nil
}

// ListMonth returns the employee's records for the given month.
func (s *Service) ListMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Record, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.Store.ListByEmployee(ctx, employeeID, from, to)
}

func (s *Service) addressAllowed(ip string) bool {
	if len(s.AllowedPrefixes) == 0 {
		return true
	}
	for _, prefix := range s.AllowedPrefixes {
		if strings.HasPrefix(ip, prefix) {
			return true
		}
	}
	return false
}
