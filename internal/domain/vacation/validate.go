package vacation

import (
	"math"
	"time"
)

// Input carries everything the validator needs, already fetched. The
// validator itself is pure computation: same input, same verdict.
type Input struct {
	Now           time.Time
	Balance       Balance
	CommittedDays float64 // usage over the employee's on-hold and approved records
	Existing      []Request
	PrenoticeDays int
}

// ValidateRequest runs the submission checks in fixed order; the first
// failure wins. On success a sub-day request comes back force-approved,
// since those never need review.
func ValidateRequest(req *Request, in Input) error {
	cost := TentativeCost(req.Category, req.StartAt, req.EndAt)
	if in.Balance.TotalDays < cost+in.CommittedDays {
		return ErrInsufficientBalance
	}
	if req.StartAt.Before(in.Now) {
		return ErrStartInPast
	}
	if req.StartAt.After(req.EndAt) {
		return ErrStartAfterEnd
	}
	if overlapsAny(*req, in.Existing) {
		return ErrOverlappedInterval
	}
	if !req.Category.DayGranularity() {
		req.Approval = ApprovalApproved
		return nil
	}
	if wholeDaysBetween(in.Now, req.StartAt) < in.PrenoticeDays {
		return ErrNotPrenotified
	}
	return nil
}

// ValidateAdminEdit is the relaxed variant used when a reviewer edits a
// record on someone's behalf: chronology within the interval and overlap
// only, no balance or lead-time checks.
func ValidateAdminEdit(req *Request, existing []Request) error {
	if req.StartAt.After(req.EndAt) {
		return ErrStartAfterEnd
	}
	if overlapsAny(*req, existing) {
		return ErrOverlappedInterval
	}
	return nil
}

// TentativeCost is the day cost charged against the balance before the
// request is persisted. Day-granularity categories cost the whole days
// between start and end; sub-day categories cost their fixed weight.
func TentativeCost(cat Category, start, end time.Time) float64 {
	switch cat {
	case CategoryHalfDayOff:
		return 0.5
	case CategoryQuarterDayOff:
		return 0.25
	}
	return float64(wholeDaysBetween(start, end))
}

// Overlaps reports whether two requests share at least one inclusive day.
func Overlaps(a, b Request) bool {
	latestStart := a.StartAt
	if b.StartAt.After(latestStart) {
		latestStart = b.StartAt
	}
	earliestEnd := a.EndAt
	if b.EndAt.Before(earliestEnd) {
		earliestEnd = b.EndAt
	}
	return wholeDaysBetween(latestStart, earliestEnd)+1 > 0
}

// Only day-off requests participate in double-booking detection; sick, comp
// and sub-day records are exempt.
func overlapsAny(req Request, existing []Request) bool {
	for _, other := range existing {
		if other.ID != "" && other.ID == req.ID {
			continue
		}
		if other.Category != CategoryDayOff {
			continue
		}
		if Overlaps(req, other) {
			return true
		}
	}
	return false
}

// wholeDaysBetween floors to whole days, matching the pre-notice boundary:
// three days minus one minute counts as two days.
func wholeDaysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
