package vacation

import "context"

// RequestFilter narrows ListRequests. Zero values mean "no constraint".
type RequestFilter struct {
	EmployeeID        string
	Categories        []Category
	ExcludeCategories []Category
	Approvals         []Approval
	Year              int
	ExcludeID         string
}

type StoreAPI interface {
	CreateRequest(ctx context.Context, req Request) (Request, error)
	UpdateRequest(ctx context.Context, req Request) (Request, error)
	GetRequest(ctx context.Context, id string) (Request, error)
	DeleteRequest(ctx context.Context, id string) error
	ListRequests(ctx context.Context, filter RequestFilter) ([]Request, error)

	// GetBalance creates the row with default allowance on first access.
	GetBalance(ctx context.Context, employeeID string) (Balance, error)
	SaveBalance(ctx context.Context, bal Balance) error
	SetTotalDays(ctx context.Context, employeeID string, totalDays float64) error
}
