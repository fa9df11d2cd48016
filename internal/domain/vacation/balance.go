package vacation

import (
	"context"
	"fmt"

	"hrdesk/internal/platform/calendar"
)

// Tracker maintains the per-employee balance caches. Every recompute reads
// the authoritative request records, derives the counter and writes the
// balance row immediately, so calling it twice without an intervening record
// change is a no-op.
type Tracker struct {
	store StoreAPI
	cal   *calendar.Calendar
}

func NewTracker(store StoreAPI, cal *calendar.Calendar) *Tracker {
	return &Tracker{store: store, cal: cal}
}

// RecomputeUsedDays recomputes the vacation counter over every category that
// draws from the shared allowance (everything except sick and comp days),
// restricted to the given approval states.
func (t *Tracker) RecomputeUsedDays(ctx context.Context, employeeID string, states []Approval, year int) (float64, error) {
	records, err := t.store.ListRequests(ctx, RequestFilter{
		EmployeeID:        employeeID,
		ExcludeCategories: []Category{CategorySickDay, CategoryCompDay},
		Approvals:         states,
	})
	if err != nil {
		return 0, fmt.Errorf("list vacation records: %w", err)
	}

	total := UsedDays(t.cal, records, year)
	if err := t.writeBalance(ctx, employeeID, func(bal *Balance) { bal.UsedDays = total }); err != nil {
		return 0, err
	}
	return total, nil
}

// RecomputeSickDays recomputes the approved sick-day counter. Sick days do
// not draw from the shared allowance.
func (t *Tracker) RecomputeSickDays(ctx context.Context, employeeID string, year int) (float64, error) {
	return t.recomputeCategory(ctx, employeeID, CategorySickDay, year, func(bal *Balance, total float64) {
		bal.SickDays = total
	})
}

// RecomputeCompDays recomputes the approved comp-day counter.
func (t *Tracker) RecomputeCompDays(ctx context.Context, employeeID string, year int) (float64, error) {
	return t.recomputeCategory(ctx, employeeID, CategoryCompDay, year, func(bal *Balance, total float64) {
		bal.CompDays = total
	})
}

// RecomputeAll refreshes used, sick and comp counters in that order and
// returns the resulting balance. The order is fixed for determinism only;
// the three computations are independent.
func (t *Tracker) RecomputeAll(ctx context.Context, employeeID string, year int) (Balance, error) {
	if _, err := t.RecomputeUsedDays(ctx, employeeID, []Approval{ApprovalApproved}, year); err != nil {
		return Balance{}, err
	}
	if _, err := t.RecomputeSickDays(ctx, employeeID, year); err != nil {
		return Balance{}, err
	}
	if _, err := t.RecomputeCompDays(ctx, employeeID, year); err != nil {
		return Balance{}, err
	}
	return t.store.GetBalance(ctx, employeeID)
}

func (t *Tracker) recomputeCategory(ctx context.Context, employeeID string, cat Category, year int, assign func(*Balance, float64)) (float64, error) {
	records, err := t.store.ListRequests(ctx, RequestFilter{
		EmployeeID: employeeID,
		Categories: []Category{cat},
		Approvals:  []Approval{ApprovalApproved},
	})
	if err != nil {
		return 0, fmt.Errorf("list %s records: %w", cat, err)
	}

	total := UsedDays(t.cal, records, year)
	if err := t.writeBalance(ctx, employeeID, func(bal *Balance) { assign(bal, total) }); err != nil {
		return 0, err
	}
	return total, nil
}

func (t *Tracker) writeBalance(ctx context.Context, employeeID string, mutate func(*Balance)) error {
	bal, err := t.store.GetBalance(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}
	mutate(&bal)
	if err := t.store.SaveBalance(ctx, bal); err != nil {
		return fmt.Errorf("save balance: %w", err)
	}
	return nil
}
