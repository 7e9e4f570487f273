package backlog

import (
	"math"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

// weekendBonus favors weekend days when siting rescheduled mock exams.
const weekendBonus = 200

// Input configures one redistribution run.
type Input struct {
	Units    []studyplan.StudyUnit
	Subjects []studyplan.Subject
	Today    time.Time

	CapacityByDate    map[string]int // day key → minutes
	DefaultDayMinutes int            // fallback when no override exists
	AllowedWeekdays   []time.Weekday

	// QuotaRatio is the fraction of a day's capacity backlog units may
	// consume; defaults to 0.3.
	QuotaRatio float64

	// LookaheadDays is the placement horizon; defaults to 14.
	LookaheadDays int

	// MaxBacklogSubjectsPerDay caps distinct backlog subjects placed on
	// one day; defaults to 2.
	MaxBacklogSubjectsPerDay int

	// DayStart is where appended units begin on an otherwise empty day.
	DayStart studyplan.Clock
}

func (in *Input) applyDefaults() {
	if in.QuotaRatio <= 0 {
		in.QuotaRatio = 0.3
	}
	if in.LookaheadDays <= 0 {
		in.LookaheadDays = 14
	}
	if in.MaxBacklogSubjectsPerDay <= 0 {
		in.MaxBacklogSubjectsPerDay = 2
	}
	if in.DefaultDayMinutes <= 0 {
		in.DefaultDayMinutes = 120
	}
	if in.DayStart == 0 {
		in.DayStart = studyplan.NewClock(8, 0)
	}
	if len(in.AllowedWeekdays) == 0 {
		in.AllowedWeekdays = []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}
	}
}

// Outcome reports what a redistribution run did.
type Outcome struct {
	Units              []studyplan.StudyUnit
	MovedCount         int
	InsertedTodayCount int
	BacklogBefore      int
	BacklogAfter       int
	Suggestion         Suggestion
}

// day is the mutable placement state for one candidate day.
type day struct {
	key      string
	date     time.Time
	capacity int
	quota    int // floor(capacity × quotaRatio)

	used        int // study minutes already on the day
	backlogUsed int // backlog minutes placed by this run
	subjects    map[string]bool
	lastEnd     studyplan.Clock
}

func (d *day) free() int {
	return d.capacity - d.used
}

func (d *day) freeQuota() int {
	q := d.quota - d.backlogUsed
	if q < 0 {
		return 0
	}
	return q
}

// AutoReschedule moves overdue and skipped units into future capacity
// under the quota and diversity constraints. Pure: operates on copies
// of the input units.
func AutoReschedule(in Input) Outcome {
	in.applyDefaults()

	units := make([]studyplan.StudyUnit, len(in.Units))
	copy(units, in.Units)
	byID := make(map[string]int, len(units))
	for i, u := range units {
		byID[u.ID] = i
	}

	entries := Detect(units, in.Subjects, in.Today)
	before := len(entries)
	totalBacklogMinutes := 0
	for _, e := range entries {
		totalBacklogMinutes += e.Unit.DurationMinutes
	}

	r := &run{
		in:      in,
		units:   units,
		byID:    byID,
		weights: subjectWeights(in.Subjects),
		days:    buildDays(in, units),
	}

	// Mock exams first: each goes to the single best-scoring day.
	var queue []Entry
	for _, e := range entries {
		if e.Unit.Kind.IsMockExam() {
			if !r.placeExam(e) {
				queue = append(queue, e)
			}
			continue
		}
		queue = append(queue, e)
	}

	// Remaining backlog, day by day.
	r.placeQueue(queue)

	after := Detect(r.units, in.Subjects, in.Today)

	return Outcome{
		Units:              r.units,
		MovedCount:         r.moved,
		InsertedTodayCount: r.insertedToday,
		BacklogBefore:      before,
		BacklogAfter:       len(after),
		Suggestion:         buildSuggestion(r.units, len(after), totalBacklogMinutes, in.LookaheadDays),
	}
}

type run struct {
	in      Input
	units   []studyplan.StudyUnit
	byID    map[string]int
	weights map[string]float64
	days    []*day

	moved         int
	insertedToday int
}

// buildDays prepares the candidate-day list for the lookahead window,
// restricted to allowed weekdays, preloaded with the existing load.
func buildDays(in Input, units []studyplan.StudyUnit) []*day {
	allowed := make(map[time.Weekday]bool, len(in.AllowedWeekdays))
	for _, w := range in.AllowedWeekdays {
		allowed[w] = true
	}

	today := studyplan.DateOnly(in.Today)
	var days []*day
	for i := 0; i < in.LookaheadDays; i++ {
		date := today.AddDate(0, 0, i)
		if !allowed[date.Weekday()] {
			continue
		}
		key := studyplan.DayKey(date)
		capacity := in.DefaultDayMinutes
		if c, ok := in.CapacityByDate[key]; ok {
			capacity = c
		}
		d := &day{
			key:      key,
			date:     date,
			capacity: capacity,
			quota:    int(math.Floor(float64(capacity) * in.QuotaRatio)),
			subjects: make(map[string]bool),
			lastEnd:  in.DayStart,
		}
		for _, u := range units {
			if u.IsBreak || studyplan.DayKey(u.Date) != key {
				continue
			}
			d.used += u.DurationMinutes
			if u.End > d.lastEnd {
				d.lastEnd = u.End
			}
		}
		days = append(days, d)
	}
	return days
}

// placeExam sites one backlog exam on the day maximizing
// 2×freeCapacity + freeBacklogQuota + weekendBonus.
func (r *run) placeExam(e Entry) bool {
	need := e.Unit.DurationMinutes
	var best *day
	bestScore := math.Inf(-1)
	for _, d := range r.days {
		// Exams filter on plain capacity only; the quota term shapes
		// the score but never disqualifies a day.
		if d.free() < need {
			continue
		}
		score := float64(2*d.free() + d.freeQuota())
		if wd := d.date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			score += weekendBonus
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	if best == nil {
		return false
	}
	r.place(e.Unit.ID, best, true)
	return true
}

// placeQueue walks the candidate days chronologically, repeatedly
// popping the highest-priority queued unit and placing it under the
// quota, diversity and capacity constraints. Units no day accepts stay
// in the backlog.
func (r *run) placeQueue(queue []Entry) {
	for _, d := range r.days {
		deferred := make(map[string]bool)
		for {
			idx := r.nextQueued(queue, d, deferred)
			if idx < 0 {
				break
			}
			e := queue[idx]
			if !r.tryPlaceOn(d, e) {
				// This unit does not fit here; defer it to later days
				// and let the next entry try the remaining room.
				deferred[e.Unit.ID] = true
				continue
			}
			queue = append(queue[:idx], queue[idx+1:]...)
		}
	}
}

// nextQueued picks the next queue index for a day: the highest-priority
// entry not yet deferred on it, restricted to subjects already holding
// a backlog slot once the per-day distinct-subject cap is reached.
// Returns -1 when nothing can go on this day.
func (r *run) nextQueued(queue []Entry, d *day, deferred map[string]bool) int {
	capReached := len(d.subjects) >= r.in.MaxBacklogSubjectsPerDay
	for i, e := range queue {
		if deferred[e.Unit.ID] {
			continue
		}
		if capReached && !d.subjects[subjectKey(e.Unit)] {
			continue
		}
		return i
	}
	return -1
}

// tryPlaceOn attempts one placement, displacing low-priority tail units
// when plain capacity is short.
func (r *run) tryPlaceOn(d *day, e Entry) bool {
	need := e.Unit.DurationMinutes
	if d.freeQuota() < need {
		return false
	}
	if !d.subjects[subjectKey(e.Unit)] && len(d.subjects) >= r.in.MaxBacklogSubjectsPerDay {
		return false
	}
	if d.free() < need {
		r.displaceTail(d, need-d.free())
		if d.free() < need {
			return false
		}
	}
	r.place(e.Unit.ID, d, true)
	return true
}

// displaceTail moves the day's lowest-priority non-review, non-exam
// tail units to later days to free at least the given minutes. Only
// successful relocations count toward the freed total.
func (r *run) displaceTail(d *day, needed int) {
	type cand struct {
		idx   int
		score float64
	}
	var cands []cand
	for i, u := range r.units {
		if u.IsBreak || studyplan.DayKey(u.Date) != d.key {
			continue
		}
		if u.Kind == studyplan.KindReview || u.Kind.IsMockExam() {
			continue
		}
		if u.Status == studyplan.StatusCompleted || u.Status == studyplan.StatusInProgress {
			continue
		}
		cands = append(cands, cand{idx: i, score: priorityScore(u, 0, r.weights)})
	}
	// Lowest priority leaves first; later start breaks ties (the tail).
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			ci, cj := cands[i], cands[j]
			if cj.score < ci.score ||
				(cj.score == ci.score && r.units[cj.idx].Start > r.units[ci.idx].Start) {
				cands[i], cands[j] = cands[j], cands[i]
			}
		}
	}

	freed := 0
	for _, c := range cands {
		if freed >= needed {
			return
		}
		u := r.units[c.idx]
		if target := r.laterDayWithRoom(d, u.DurationMinutes); target != nil {
			d.used -= u.DurationMinutes
			r.place(u.ID, target, false)
			freed += u.DurationMinutes
		}
	}
}

// laterDayWithRoom finds the first day after the given one with plain
// free capacity for the duration. Displaced plan units consume free
// capacity only, not backlog quota.
func (r *run) laterDayWithRoom(after *day, minutes int) *day {
	seen := false
	for _, d := range r.days {
		if d == after {
			seen = true
			continue
		}
		if !seen {
			continue
		}
		if d.free() >= minutes {
			return d
		}
	}
	return nil
}

// place moves a unit onto a day, appending it after the day's last
// ending unit and stamping the reschedule bookkeeping.
func (r *run) place(unitID string, d *day, againstQuota bool) {
	i := r.byID[unitID]
	u := &r.units[i]

	if u.OriginalDate.IsZero() {
		u.OriginalDate = u.Date
	}
	u.Date = d.date
	u.Start = d.lastEnd
	u.End = d.lastEnd.Add(u.DurationMinutes)
	u.Status = studyplan.StatusRescheduled
	u.RescheduleCount++
	u.UpdatedAt = r.in.Today

	d.used += u.DurationMinutes
	d.lastEnd = u.End
	if againstQuota {
		d.backlogUsed += u.DurationMinutes
		d.subjects[subjectKey(*u)] = true
	}

	r.moved++
	if d.key == studyplan.DayKey(r.in.Today) {
		r.insertedToday++
	}
}
