package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/dev-rohit-gupta/resume-buddy/internal/dateutil"
)

// JobStats tracks how many analyzed postings matched a user's resume.
// Weekly counters roll over on Sunday-start week boundaries: the first
// qualifying match of a new week moves this_week into previous_week.
type JobStats struct {
	UserID              uuid.UUID `json:"user_id"`
	TotalMatched        int       `json:"totalMatched"`
	ThisWeekMatched     int       `json:"thisWeekMatched"`
	PreviousWeekMatched int       `json:"previousWeekMatched"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Normalized returns a copy with the weekly counters rolled forward to
// now, so a reader never sees last week's count presented as current.
// Stored rows roll over lazily on write; reads normalize in memory.
func (s JobStats) Normalized(now time.Time) JobStats {
	if dateutil.IsSameWeek(now, s.UpdatedAt) {
		return s
	}
	if dateutil.IsSameWeek(now.AddDate(0, 0, -7), s.UpdatedAt) {
		s.PreviousWeekMatched = s.ThisWeekMatched
	} else {
		// Two or more silent weeks mean the previous week had no matches.
		s.PreviousWeekMatched = 0
	}
	s.ThisWeekMatched = 0
	return s
}
