package experience

import (
	"math"
	"time"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
)

const daysPerYear = 365.25

// EstimateYears returns the span in whole years from the earliest start date to the
// latest end date across records. Records whose start does not parse are skipped.
// A missing, ongoing or unparseable end counts as now. Gaps and overlaps are not
// accounted for: the result is a span, not a sum. Zero when nothing usable remains.
func EstimateYears(records []types.EmploymentRecord, now time.Time) int {
	var minStart, maxEnd time.Time
	found := false

	for _, r := range records {
		if r.Start == nil {
			continue
		}
		start, ok := ParseDate(*r.Start)
		if !ok {
			continue
		}
		end := now
		if r.End != nil {
			if parsed, ok := ParseDate(*r.End); ok {
				end = parsed
			}
		}

		if !found || start.Before(minStart) {
			minStart = start
		}
		if !found || end.After(maxEnd) {
			maxEnd = end
		}
		found = true
	}

	if !found || !maxEnd.After(minStart) {
		return 0
	}

	days := maxEnd.Sub(minStart).Hours() / 24
	return int(math.RoundToEven(days / daysPerYear))
}
