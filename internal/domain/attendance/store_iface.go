package attendance

import (
	"context"
	"time"
)

type StoreAPI interface {
	CreateRecord(ctx context.Context, rec Record) (Record, error)
	FindByDate(ctx context.Context, employeeID string, date time.Time) (Record, bool, error)
	CloseRecord(ctx context.Context, id string, endAt time.Time) error
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}
