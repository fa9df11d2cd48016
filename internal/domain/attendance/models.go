package attendance

import "time"

type Status int

const (
	StatusSubmitted Status = 0
	StatusAccepted  Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusSubmitted:
		return "submitted"
	case StatusAccepted:
		return "accepted"
	}
	return "unknown"
}

// Record is one working day: the check-in stamps StartAt, the check-out
// stamps EndAt. EndAt stays nil while the day is open.
type Record struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       time.Time  `json:"date"`
	StartAt    time.Time  `json:"startAt"`
	EndAt      *time.Time `json:"endAt,omitempty"`
	IPAddress  string     `json:"ipAddress"`
	Status     Status     `json:"status"`
}
