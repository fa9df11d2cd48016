package vacation

import (
	"time"

	"hrdesk/internal/platform/calendar"
)

// UsedDays computes how many leave days the given records consume within the
// target calendar year.
//
// Day-granularity records are clipped to the year, expanded to business days
// and collected into one date set, so overlapping records never double-count
// a day. Holidays are then removed. Sub-day records contribute fixed weights
// (0.5 per half day, 0.25 per quarter day) with no year or holiday filtering.
func UsedDays(cal *calendar.Calendar, records []Request, year int) float64 {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	taken := make(map[time.Time]struct{})
	halves, quarters := 0, 0

	for _, rec := range records {
		switch rec.Category {
		case CategoryHalfDayOff:
			halves++
		case CategoryQuarterDayOff:
			quarters++
		default:
			from, to := calendar.DateOf(rec.StartAt), calendar.DateOf(rec.EndAt)
			if from.Before(yearStart) {
				from = yearStart
			}
			if to.After(yearEnd) {
				to = yearEnd
			}
			if from.After(to) {
				continue
			}
			for _, day := range cal.BusinessDays(from, to) {
				taken[day] = struct{}{}
			}
		}
	}

	remaining := cal.ExcludeHolidays(taken)
	return float64(len(remaining)) + 0.5*float64(halves) + 0.25*float64(quarters)
}
