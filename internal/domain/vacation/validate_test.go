package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var validationNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC) // Monday

func validInput() Input {
	return Input{
		Now:           validationNow,
		Balance:       Balance{TotalDays: 15},
		PrenoticeDays: 3,
	}
}

func TestValidateRequestAccepts(t *testing.T) {
	req := dayOff(day(2026, 6, 9), day(2026, 6, 11))
	req.Approval = ApprovalOnHold
	require.NoError(t, ValidateRequest(&req, validInput()))
	require.Equal(t, ApprovalOnHold, req.Approval)
}

func TestValidateRequestInsufficientBalance(t *testing.T) {
	in := validInput()
	in.Balance.TotalDays = 5
	in.CommittedDays = 4

	// Cost is the whole-day span, here two days.
	req := dayOff(day(2026, 6, 9), day(2026, 6, 11))
	require.ErrorIs(t, ValidateRequest(&req, in), ErrInsufficientBalance)

	in.CommittedDays = 3
	require.NoError(t, ValidateRequest(&req, in))
}

func TestValidateRequestStartInPast(t *testing.T) {
	req := dayOff(day(2026, 5, 28), day(2026, 6, 9))
	require.ErrorIs(t, ValidateRequest(&req, validInput()), ErrStartInPast)
}

func TestValidateRequestStartAfterEnd(t *testing.T) {
	req := dayOff(day(2026, 6, 11), day(2026, 6, 9))
	require.ErrorIs(t, ValidateRequest(&req, validInput()), ErrStartAfterEnd)
}

func TestValidateRequestOverlap(t *testing.T) {
	in := validInput()
	in.Existing = []Request{dayOff(day(2026, 6, 9), day(2026, 6, 11))}

	req := dayOff(day(2026, 6, 11), day(2026, 6, 15))
	require.ErrorIs(t, ValidateRequest(&req, in), ErrOverlappedInterval)

	req = dayOff(day(2026, 6, 12), day(2026, 6, 15))
	require.NoError(t, ValidateRequest(&req, in))
}

func TestValidateRequestOverlapIgnoresSelf(t *testing.T) {
	existing := dayOff(day(2026, 6, 9), day(2026, 6, 11))
	existing.ID = "rec-1"
	in := validInput()
	in.Existing = []Request{existing}

	req := existing
	req.EndAt = day(2026, 6, 12)
	require.NoError(t, ValidateRequest(&req, in))
}

func TestValidateRequestOverlapOnlyAgainstDayOffs(t *testing.T) {
	sick := Request{Category: CategorySickDay, StartAt: day(2026, 6, 9), EndAt: day(2026, 6, 11), Approval: ApprovalApproved}
	in := validInput()
	in.Existing = []Request{sick}

	req := dayOff(day(2026, 6, 9), day(2026, 6, 11))
	require.NoError(t, ValidateRequest(&req, in))
}

func TestValidateRequestSubDayConflictsWithDayOff(t *testing.T) {
	in := validInput()
	in.Existing = []Request{dayOff(day(2026, 6, 9), day(2026, 6, 11))}

	start := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	req := Request{Category: CategoryHalfDayOff, StartAt: start, EndAt: start.Add(HalfDayDuration)}
	require.ErrorIs(t, ValidateRequest(&req, in), ErrOverlappedInterval)
}

func TestValidateRequestSubDayApprovedWithoutNotice(t *testing.T) {
	// Starts tomorrow, well inside the notice window, yet passes and is
	// approved on the spot.
	start := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)
	req := Request{Category: CategoryQuarterDayOff, StartAt: start, EndAt: start.Add(QuarterDayDuration)}
	require.NoError(t, ValidateRequest(&req, validInput()))
	require.Equal(t, ApprovalApproved, req.Approval)
}

func TestValidateRequestPrenoticeBoundary(t *testing.T) {
	req := dayOff(validationNow.Add(72*time.Hour), validationNow.Add(96*time.Hour))
	require.NoError(t, ValidateRequest(&req, validInput()))

	req = dayOff(validationNow.Add(72*time.Hour-time.Minute), validationNow.Add(96*time.Hour))
	require.ErrorIs(t, ValidateRequest(&req, validInput()), ErrNotPrenotified)
}

func TestValidateRequestBalanceCheckedFirst(t *testing.T) {
	// Overlapping and over budget at once: the balance failure wins.
	in := validInput()
	in.Balance.TotalDays = 0
	in.Existing = []Request{dayOff(day(2026, 6, 9), day(2026, 6, 11))}

	req := dayOff(day(2026, 6, 10), day(2026, 6, 12))
	require.ErrorIs(t, ValidateRequest(&req, in), ErrInsufficientBalance)
}

func TestValidateAdminEdit(t *testing.T) {
	existing := []Request{dayOff(day(2026, 6, 9), day(2026, 6, 11))}

	// In the past and within the notice window, still fine for a reviewer.
	req := dayOff(day(2026, 5, 4), day(2026, 5, 6))
	require.NoError(t, ValidateAdminEdit(&req, existing))

	req = dayOff(day(2026, 6, 10), day(2026, 6, 12))
	require.ErrorIs(t, ValidateAdminEdit(&req, existing), ErrOverlappedInterval)

	req = dayOff(day(2026, 6, 20), day(2026, 6, 18))
	require.ErrorIs(t, ValidateAdminEdit(&req, existing), ErrStartAfterEnd)
}

func TestTentativeCost(t *testing.T) {
	require.Equal(t, 2.0, TentativeCost(CategoryDayOff, day(2026, 6, 9), day(2026, 6, 11)))
	require.Equal(t, 0.0, TentativeCost(CategoryDayOff, day(2026, 6, 9), day(2026, 6, 9)))
	require.Equal(t, 0.5, TentativeCost(CategoryHalfDayOff, validationNow, validationNow.Add(HalfDayDuration)))
	require.Equal(t, 0.25, TentativeCost(CategoryQuarterDayOff, validationNow, validationNow.Add(QuarterDayDuration)))
}

func TestOverlapsSymmetry(t *testing.T) {
	a := dayOff(day(2026, 6, 9), day(2026, 6, 11))
	b := dayOff(day(2026, 6, 11), day(2026, 6, 15))
	require.True(t, Overlaps(a, b))
	require.True(t, Overlaps(b, a))

	c := dayOff(day(2026, 6, 12), day(2026, 6, 15))
	require.False(t, Overlaps(a, c))
	require.False(t, Overlaps(c, a))
}
