package vacation

import (
	"context"
	"fmt"
	"time"
)

// Clock abstracts time.Now so the submission rules can be tested against a
// fixed instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Notifier receives human-readable event messages. Delivery is best effort;
// implementations must not return errors into the request path.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

type Service struct {
	Store         StoreAPI
	Tracker       *Tracker
	Clock         Clock
	Notifier      Notifier
	PrenoticeDays int
}

func NewService(store StoreAPI, tracker *Tracker, clock Clock, notifier Notifier, prenoticeDays int) *Service {
	return &Service{
		Store:         store,
		Tracker:       tracker,
		Clock:         clock,
		Notifier:      notifier,
		PrenoticeDays: prenoticeDays,
	}
}

// Submit validates and persists a new request. Rejected submissions leave no
// record behind. Sub-day requests that pass come back already approved.
func (s *Service) Submit(ctx context.Context, employeeID string, cat Category, interval IntervalInput) (Request, error) {
	if !cat.Valid() {
		return Request{}, ErrUnsupportedCategory
	}
	start, end, err := NormalizeInterval(interval, cat)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		EmployeeID: employeeID,
		Category:   cat,
		StartAt:    start,
		EndAt:      end,
		Approval:   ApprovalOnHold,
	}
	if err := s.runValidation(ctx, &req); err != nil {
		return Request{}, err
	}

	created, err := s.Store.CreateRequest(ctx, req)
	if err != nil {
		return Request{}, fmt.Errorf("create request: %w", err)
	}

	if _, err := s.Tracker.RecomputeUsedDays(ctx, employeeID, []Approval{ApprovalOnHold, ApprovalApproved}, created.StartAt.Year()); err != nil {
		return Request{}, err
	}
	s.notify(ctx, fmt.Sprintf("%s requested %s from %s to %s", employeeID, cat, created.StartAt.Format("2006-01-02"), created.EndAt.Format("2006-01-02")))
	return created, nil
}

// Update re-validates an employee's own pending request with new dates or
// category. The record under edit is excluded from its own overlap check.
func (s *Service) Update(ctx context.Context, id string, cat Category, interval IntervalInput) (Request, error) {
	if !cat.Valid() {
		return Request{}, ErrUnsupportedCategory
	}
	req, err := s.Store.GetRequest(ctx, id)
	if err != nil {
		return Request{}, err
	}

	start, end, err := NormalizeInterval(interval, cat)
	if err != nil {
		return Request{}, err
	}
	req.Category = cat
	req.StartAt = start
	req.EndAt = end
	if err := s.runValidation(ctx, &req); err != nil {
		return Request{}, err
	}

	updated, err := s.Store.UpdateRequest(ctx, req)
	if err != nil {
		return Request{}, fmt.Errorf("update request: %w", err)
	}
	if _, err := s.Tracker.RecomputeUsedDays(ctx, updated.EmployeeID, []Approval{ApprovalOnHold, ApprovalApproved}, updated.StartAt.Year()); err != nil {
		return Request{}, err
	}
	return updated, nil
}

// Delete removes a request and refreshes the owner's counters.
func (s *Service) Delete(ctx context.Context, id string) error {
	req, err := s.Store.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteRequest(ctx, id); err != nil {
		return err
	}
	if _, err := s.Tracker.RecomputeUsedDays(ctx, req.EmployeeID, []Approval{ApprovalOnHold, ApprovalApproved}, req.StartAt.Year()); err != nil {
		return err
	}
	s.notify(ctx, fmt.Sprintf("%s withdrew a %s request starting %s", req.EmployeeID, req.Category, req.StartAt.Format("2006-01-02")))
	return nil
}

// SetApproval moves a request into the given state. Approvals are checked
// against the allowance after the fact: if the approved usage overshoots the
// employee's total, the decision is rolled back to on hold and the caller
// gets an insufficient-balance error. Without record locking a concurrent
// approval can still slip through; the rollback narrows the window, it does
// not close it.
func (s *Service) SetApproval(ctx context.Context, id string, state Approval) (Request, error) {
	if !state.Valid() {
		return Request{}, fmt.Errorf("unknown approval state %d", state)
	}
	req, err := s.Store.GetRequest(ctx, id)
	if err != nil {
		return Request{}, err
	}
	req.Approval = state
	updated, err := s.Store.UpdateRequest(ctx, req)
	if err != nil {
		return Request{}, fmt.Errorf("update approval: %w", err)
	}

	year := updated.StartAt.Year()
	if state == ApprovalApproved && updated.Category != CategorySickDay && updated.Category != CategoryCompDay {
		used, err := s.Tracker.RecomputeUsedDays(ctx, updated.EmployeeID, []Approval{ApprovalApproved}, year)
		if err != nil {
			return Request{}, err
		}
		bal, err := s.Store.GetBalance(ctx, updated.EmployeeID)
		if err != nil {
			return Request{}, err
		}
		if bal.TotalDays-used < 0 {
			updated.Approval = ApprovalOnHold
			if _, err := s.Store.UpdateRequest(ctx, updated); err != nil {
				return Request{}, fmt.Errorf("roll back approval: %w", err)
			}
			if _, err := s.Tracker.RecomputeUsedDays(ctx, updated.EmployeeID, []Approval{ApprovalApproved}, year); err != nil {
				return Request{}, err
			}
			return Request{}, ErrInsufficientBalance
		}
	}

	if _, err := s.Tracker.RecomputeAll(ctx, updated.EmployeeID, year); err != nil {
		return Request{}, err
	}
	s.notify(ctx, fmt.Sprintf("request %s for %s is now %s", updated.ID, updated.EmployeeID, updated.Approval))
	return updated, nil
}

// GetBalance refreshes and returns the employee's counters for the year.
func (s *Service) GetBalance(ctx context.Context, employeeID string, year int) (Balance, error) {
	return s.Tracker.RecomputeAll(ctx, employeeID, year)
}

// Get returns a single request by id.
func (s *Service) Get(ctx context.Context, id string) (Request, error) {
	return s.Store.GetRequest(ctx, id)
}

// ListYear returns the employee's requests whose start falls in the year,
// refreshing the counters first so balance and listing agree.
func (s *Service) ListYear(ctx context.Context, employeeID string, year int) ([]Request, error) {
	if _, err := s.Tracker.RecomputeAll(ctx, employeeID, year); err != nil {
		return nil, err
	}
	return s.Store.ListRequests(ctx, RequestFilter{EmployeeID: employeeID, Year: year})
}

// PendingDayOffs lists every on-hold day-granularity request, for the review
// queue.
func (s *Service) PendingDayOffs(ctx context.Context) ([]Request, error) {
	return s.Store.ListRequests(ctx, RequestFilter{
		ExcludeCategories: []Category{CategoryHalfDayOff, CategoryQuarterDayOff},
		Approvals:         []Approval{ApprovalOnHold},
	})
}

// SetTotalDays adjusts an employee's yearly allowance.
func (s *Service) SetTotalDays(ctx context.Context, employeeID string, totalDays float64) (Balance, error) {
	if totalDays < 0 {
		return Balance{}, fmt.Errorf("total days must not be negative")
	}
	if err := s.Store.SetTotalDays(ctx, employeeID, totalDays); err != nil {
		return Balance{}, fmt.Errorf("set total days: %w", err)
	}
	return s.Store.GetBalance(ctx, employeeID)
}

// AdminCreate records a request on an employee's behalf, pre-approved and
// exempt from the balance and lead-time rules. Chronology and overlap still
// apply.
func (s *Service) AdminCreate(ctx context.Context, employeeID string, cat Category, interval IntervalInput) (Request, error) {
	if !cat.Valid() {
		return Request{}, ErrUnsupportedCategory
	}
	start, end, err := NormalizeInterval(interval, cat)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		EmployeeID: employeeID,
		Category:   cat,
		StartAt:    start,
		EndAt:      end,
		Approval:   ApprovalApproved,
	}
	existing, err := s.Store.ListRequests(ctx, RequestFilter{
		EmployeeID: employeeID,
		Categories: []Category{CategoryDayOff},
	})
	if err != nil {
		return Request{}, fmt.Errorf("list requests: %w", err)
	}
	if err := ValidateAdminEdit(&req, existing); err != nil {
		return Request{}, err
	}

	created, err := s.Store.CreateRequest(ctx, req)
	if err != nil {
		return Request{}, fmt.Errorf("create request: %w", err)
	}
	if _, err := s.Tracker.RecomputeAll(ctx, employeeID, created.StartAt.Year()); err != nil {
		return Request{}, err
	}
	return created, nil
}

// AdminUpdate edits an existing record under the relaxed reviewer rules.
func (s *Service) AdminUpdate(ctx context.Context, id string, cat Category, interval IntervalInput) (Request, error) {
	if !cat.Valid() {
		return Request{}, ErrUnsupportedCategory
	}
	req, err := s.Store.GetRequest(ctx, id)
	if err != nil {
		return Request{}, err
	}

	start, end, err := NormalizeInterval(interval, cat)
	if err != nil {
		return Request{}, err
	}
	req.Category = cat
	req.StartAt = start
	req.EndAt = end

	existing, err := s.Store.ListRequests(ctx, RequestFilter{
		EmployeeID: req.EmployeeID,
		Categories: []Category{CategoryDayOff},
		ExcludeID:  req.ID,
	})
	if err != nil {
		return Request{}, fmt.Errorf("list requests: %w", err)
	}
	if err := ValidateAdminEdit(&req, existing); err != nil {
		return Request{}, err
	}

	updated, err := s.Store.UpdateRequest(ctx, req)
	if err != nil {
		return Request{}, fmt.Errorf("update request: %w", err)
	}
	if _, err := s.Tracker.RecomputeAll(ctx, updated.EmployeeID, updated.StartAt.Year()); err != nil {
		return Request{}, err
	}
	return updated, nil
}

// runValidation gathers the validator's inputs in the documented order:
// commit the pending-and-approved usage to the balance cache first, then read
// the balance back and fetch the overlap candidates.
func (s *Service) runValidation(ctx context.Context, req *Request) error {
	year := req.StartAt.Year()
	committed, err := s.Tracker.RecomputeUsedDays(ctx, req.EmployeeID, []Approval{ApprovalOnHold, ApprovalApproved}, year)
	if err != nil {
		return err
	}
	bal, err := s.Store.GetBalance(ctx, req.EmployeeID)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}
	existing, err := s.Store.ListRequests(ctx, RequestFilter{
		EmployeeID: req.EmployeeID,
		Categories: []Category{CategoryDayOff},
		ExcludeID:  req.ID,
	})
	if err != nil {
		return fmt.Errorf("list requests: %w", err)
	}

	return ValidateRequest(req, Input{
		Now:           s.Clock.Now(),
		Balance:       bal,
		CommittedDays: committed,
		Existing:      existing,
		PrenoticeDays: s.PrenoticeDays,
	})
}

func (s *Service) notify(ctx context.Context, message string) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Notify(ctx, message)
}
