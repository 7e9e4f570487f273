package scheduler

import (
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

// reviewOffsets are the spaced-repetition day offsets applied after
// every theory unit.
var reviewOffsets = []int{2, 7, 21}

// reviewQueue maps a day key to the subjects due for review that day.
type reviewQueue map[string][]string

// enqueue adds a subject to a day's review list, deduplicating.
func (q reviewQueue) enqueue(dayKey, subjectID string) {
	for _, id := range q[dayKey] {
		if id == subjectID {
			return
		}
	}
	q[dayKey] = append(q[dayKey], subjectID)
}

// enqueueReviews schedules the spaced-repetition reminders for a
// subject after a theory unit on date, clipped to the range end.
func (q reviewQueue) enqueueReviews(date, rangeEnd time.Time, subjectID string) {
	for _, off := range reviewOffsets {
		due := date.AddDate(0, 0, off)
		if due.After(rangeEnd) {
			continue
		}
		q.enqueue(studyplan.DayKey(due), subjectID)
	}
}

// due returns the subjects queued for a day.
func (q reviewQueue) due(dayKey string) []string {
	return q[dayKey]
}

// consume removes a subject from a day's queue after it was served.
func (q reviewQueue) consume(dayKey, subjectID string) {
	ids := q[dayKey]
	for i, id := range ids {
		if id == subjectID {
			q[dayKey] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}
