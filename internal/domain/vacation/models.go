package vacation

import "time"

type Category int

const (
	CategoryDayOff        Category = 1
	CategorySickDay       Category = 2
	CategoryHalfDayOff    Category = 3
	CategoryQuarterDayOff Category = 4
	CategoryCompDay       Category = 5
)

func (c Category) Valid() bool {
	return c >= CategoryDayOff && c <= CategoryCompDay
}

// DayGranularity reports whether the category is consumed in whole-day units.
// Half and quarter days are consumed in fractional units instead.
func (c Category) DayGranularity() bool {
	switch c {
	case CategoryDayOff, CategorySickDay, CategoryCompDay:
		return true
	}
	return false
}

func (c Category) String() string {
	switch c {
	case CategoryDayOff:
		return "day_off"
	case CategorySickDay:
		return "sick_day"
	case CategoryHalfDayOff:
		return "half_day_off"
	case CategoryQuarterDayOff:
		return "quarter_day_off"
	case CategoryCompDay:
		return "comp_day"
	}
	return "unknown"
}

type Approval int

const (
	ApprovalOnHold   Approval = 0
	ApprovalApproved Approval = 1
	ApprovalDenied   Approval = 2
)

func (a Approval) Valid() bool {
	return a >= ApprovalOnHold && a <= ApprovalDenied
}

func (a Approval) String() string {
	switch a {
	case ApprovalOnHold:
		return "on_hold"
	case ApprovalApproved:
		return "approved"
	case ApprovalDenied:
		return "denied"
	}
	return "unknown"
}

type Request struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Category   Category  `json:"category"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Approval   Approval  `json:"approval"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UseDays is the inclusive calendar-day span of the request.
func (r Request) UseDays() int {
	return int(r.EndAt.Sub(r.StartAt).Hours()/24) + 1
}

// Balance carries a per-employee allowance and its derived consumption
// counters. The used/sick/comp fields are caches recomputed from the request
// records, never incremented in place.
type Balance struct {
	EmployeeID string    `json:"employeeId"`
	TotalDays  float64   `json:"totalDays"`
	UsedDays   float64   `json:"usedDays"`
	SickDays   float64   `json:"sickDays"`
	CompDays   float64   `json:"compDays"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (b Balance) AvailableDays() float64 {
	return b.TotalDays - b.UsedDays
}
