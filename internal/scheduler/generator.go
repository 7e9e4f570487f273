package scheduler

import (
	"strconv"
	"time"

	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/studyplan"
)

// forcedReviewAfter is how many consecutive study units may be placed
// without a review before the next lesson-having subject is forced into
// one.
const forcedReviewAfter = 3

// Generate synthesizes a chronological plan for the input's date range.
// It is a pure function: no I/O, no shared state, no randomness beyond
// unit ids. Degenerate configuration (inverted range, empty window, no
// active weekdays) yields an empty result rather than an error.
func Generate(in Input) *Result {
	g := newGenerator(in)

	res := &Result{
		SubjectDistribution: make(map[string]float64),
		PhaseByDate:         make(map[string]string),
	}

	if len(in.Subjects) == 0 || in.Window.Minutes() <= 0 || in.Range.Days() == 0 {
		return res
	}

	rest := make(map[string]bool, len(in.RestDays))
	for _, d := range in.RestDays {
		rest[d] = true
	}

	for d := studyplan.DateOnly(in.Range.Start); !d.After(studyplan.DateOnly(in.Range.End)); d = d.AddDate(0, 0, 1) {
		key := studyplan.DayKey(d)
		res.PhaseByDate[key] = phaseForDate(in.Range.Start, d)

		if rest[key] || !in.Preferences.weekdayActive(d.Weekday()) {
			continue
		}
		g.runDay(d, g.dayCapacity(key))
	}

	res.Units = g.units
	for _, u := range g.units {
		if u.IsBreak {
			continue
		}
		res.TotalHours += float64(u.DurationMinutes) / 60
		res.SubjectDistribution[distributionKey(u)] += float64(u.DurationMinutes) / 60
	}
	return res
}

func distributionKey(u studyplan.StudyUnit) string {
	if u.SubjectID == studyplan.MockExamSubjectID && u.RelatedSubjectID != "" {
		return u.RelatedSubjectID
	}
	return u.SubjectID
}

// generator threads all cross-day accumulator state through the run
// explicitly; there is no package-level mutable state.
type generator struct {
	in           Input
	subjectsByID map[string]studyplan.Subject
	factors      map[string]scoring.Factors

	cycles       map[string]CycleState
	lessons      map[string]int // prior + planned lessons per subject
	totalLessons int
	reviews      reviewQueue
	gate         *examGate

	rotation     int
	globalRecent []string // subject ids of the last 5 study units
	sinceReview  int
	covered      map[string]bool

	prevDayFirst    string
	prevDaySubjects map[string]bool

	units []studyplan.StudyUnit
	seq   int
}

// nextID derives a deterministic unit id from the day and the emission
// sequence, keeping Generate a pure function of its input.
func (g *generator) nextID(dayKey string) string {
	g.seq++
	return studyplan.DeterministicUnitID(dayKey, strconv.Itoa(g.seq))
}

func newGenerator(in Input) *generator {
	g := &generator{
		in:              in,
		subjectsByID:    make(map[string]studyplan.Subject, len(in.Subjects)),
		factors:         make(map[string]scoring.Factors, len(in.Subjects)),
		cycles:          make(map[string]CycleState),
		lessons:         make(map[string]int),
		reviews:         make(reviewQueue),
		gate:            newExamGate(in.MockExamRules, in.Range.Start, in.Subjects),
		covered:         make(map[string]bool),
		prevDaySubjects: make(map[string]bool),
	}

	profiles := make(map[string]*scoring.Profile, len(in.Profiles))
	for _, p := range in.Profiles {
		if p != nil {
			profiles[p.SubjectID] = p
		}
	}
	for _, s := range in.Subjects {
		g.subjectsByID[s.ID] = s
		g.factors[s.ID] = scoring.ComputeFactors(
			s, profiles[s.ID], in.Range.Start, in.Preferences.ExamDate, in.Preferences.LearnerLevel)
	}

	g.totalLessons = in.Flags.CompletedLessons
	for id, n := range in.Flags.CompletedLessonsBySubject {
		g.lessons[id] = n
	}
	return g
}

// dayCapacity returns the study-minute budget for a day.
func (g *generator) dayCapacity(dayKey string) int {
	if c, ok := g.in.CapacityOverrides[dayKey]; ok {
		return c
	}
	budget := int(g.in.Preferences.HoursPerDay * 60)
	if budget < 0 {
		return 0
	}
	if w := g.in.Window.Minutes(); budget > w {
		return w
	}
	return budget
}

// runDay packs one day's window with units, walking a time cursor.
func (g *generator) runDay(date time.Time, capacity int) {
	cursor := g.in.Window.Start
	used := 0
	usedToday := make(map[string]int)
	var dayRecent []string
	dayFirst := ""
	lastSubject := ""
	dayKey := studyplan.DayKey(date)
	phase := phaseForDate(g.in.Range.Start, date)
	daySubjects := make(map[string]bool)

	for {
		remainingWindow := g.in.Window.End.Minutes() - cursor.Minutes()
		remainingCap := capacity - used
		if remainingWindow < minUnitMinutes || remainingCap < minUnitMinutes {
			break
		}

		ctx := rankContext{
			rotationArea:    rotationArea(g.rotation),
			lastSubjectID:   lastSubject,
			dayRecent:       dayRecent,
			globalRecent:    g.globalRecent,
			prevDayFirst:    g.prevDayFirst,
			prevDaySubjects: g.prevDaySubjects,
			usedToday:       usedToday,
			dailyCap:        g.in.Preferences.dailyRepeatCap(),
			cursor:          cursor,
			lessons:         g.lessons,
			factors:         g.factors,
		}

		subject, fromReview, ok := g.pickCandidate(dayKey, ctx)
		if !ok {
			break
		}

		kind, sessionType, advanceCycle := g.resolveStage(subject, date, fromReview)

		blockCap := g.in.Window.MaxUnitMinutes
		minutes := unitDuration(subject, kind, blockCap)
		minutes = capDuration(minutes, remainingWindow, remainingCap)
		if minutes < minUnitMinutes {
			break
		}

		cs := g.cycles[subject.ID]
		unit := studyplan.StudyUnit{
			ID:              g.nextID(dayKey),
			SubjectID:       subject.ID,
			Date:            date,
			Start:           cursor,
			End:             cursor.Add(minutes),
			DurationMinutes: minutes,
			Kind:            kind,
			SessionType:     sessionType,
			Status:          studyplan.StatusScheduled,
			Phase:           phase,
			OriginalDate:    date,
			StageIndex:      int(cs.Stage),
			StageTarget:     repeatTarget(cs.Stage, subject.Level),
		}
		if kind == studyplan.KindReview || kind.IsMockExam() {
			unit.RelatedSubjectID = subject.ID
		}
		if kind.IsMockExam() {
			unit.SubjectID = studyplan.MockExamSubjectID
		}
		if kind == studyplan.KindLesson {
			unit.TopicName = g.nextTopic(subject.ID)
		}

		g.units = append(g.units, unit)
		cursor = cursor.Add(minutes)
		used += minutes

		// Bookkeeping keyed by the real subject, exam units included.
		usedToday[subject.ID]++
		daySubjects[subject.ID] = true
		g.covered[subject.ID] = true
		if dayFirst == "" {
			dayFirst = subject.ID
		}
		lastSubject = subject.ID
		dayRecent = pushCapped(dayRecent, subject.ID, 3)
		g.globalRecent = pushCapped(g.globalRecent, subject.ID, 5)
		g.rotation++

		if advanceCycle {
			g.cycles[subject.ID] = advance(cs, subject.Level)
		}

		switch {
		case kind == studyplan.KindLesson:
			g.lessons[subject.ID]++
			g.totalLessons++
			g.reviews.enqueueReviews(date, g.in.Range.End, subject.ID)
			g.sinceReview++
		case kind == studyplan.KindReview:
			g.sinceReview = 0
		default:
			g.sinceReview++
		}

		if kind.IsMockExam() {
			if kind == studyplan.KindFullMockExam {
				g.gate.recordFull(date)
			}
			if placed := g.placeAnalysis(date, subject, cursor, capacity-used, phase); placed > 0 {
				cursor = cursor.Add(placed)
				used += placed
				g.rotation++
				g.sinceReview++
			}
		}

		// A break after every study unit, when it fits in the window.
		if b := g.in.Window.BreakMinutes; b > 0 && cursor.Add(b).Minutes() <= g.in.Window.End.Minutes() {
			g.units = append(g.units, studyplan.StudyUnit{
				ID:              g.nextID(dayKey),
				Date:            date,
				Start:           cursor,
				End:             cursor.Add(b),
				DurationMinutes: b,
				IsBreak:         true,
				Status:          studyplan.StatusScheduled,
				Phase:           phase,
				OriginalDate:    date,
			})
			cursor = cursor.Add(b)
		}
	}

	if dayFirst != "" {
		g.prevDayFirst = dayFirst
		g.prevDaySubjects = daySubjects
	}
}

// pickCandidate chooses the next subject, preferring due spaced
// repetition reviews over the general pool.
func (g *generator) pickCandidate(dayKey string, ctx rankContext) (studyplan.Subject, bool, bool) {
	eligible := g.eligibleSubjects(ctx.usedToday, ctx.dailyCap)
	if len(eligible) == 0 {
		return studyplan.Subject{}, false, false
	}

	// Review precedence: queued subjects that already have a lesson.
	var reviewable []studyplan.Subject
	for _, id := range g.reviews.due(dayKey) {
		for _, s := range eligible {
			if s.ID == id && g.lessons[id] > 0 {
				reviewable = append(reviewable, s)
				break
			}
		}
	}
	if len(reviewable) > 0 {
		s, _ := pickSubject(reviewable, ctx)
		g.reviews.consume(dayKey, s.ID)
		return s, true, true
	}

	s, ok := pickSubject(eligible, ctx)
	return s, false, ok
}

// eligibleSubjects filters out subjects at their daily repeat cap and
// applies the first-cycle narrowing flag.
func (g *generator) eligibleSubjects(usedToday map[string]int, dailyCap int) []studyplan.Subject {
	var out []studyplan.Subject
	for _, s := range g.in.Subjects {
		if usedToday[s.ID] < dailyCap {
			out = append(out, s)
		}
	}
	if g.in.Flags.FirstCycleAllSubjects {
		var fresh []studyplan.Subject
		for _, s := range out {
			if g.lessons[s.ID] == 0 {
				fresh = append(fresh, s)
			}
		}
		if len(fresh) > 0 {
			return fresh
		}
	}
	return out
}

// resolveStage turns a subject's cycle position into the unit kind to
// emit, honoring forced reviews, forced theory before the first lesson,
// and mock-exam gating. The returned flag reports whether the emission
// advances the cycle.
func (g *generator) resolveStage(subject studyplan.Subject, date time.Time, fromReview bool) (studyplan.UnitKind, studyplan.SessionType, bool) {
	cs := g.cycles[subject.ID]
	hasLesson := g.lessons[subject.ID] > 0

	forcedReview := fromReview ||
		(g.sinceReview >= forcedReviewAfter && len(g.covered) >= 2 && hasLesson)

	switch {
	case forcedReview && hasLesson:
		// A forced interruption advances the cycle only when it matches
		// the expected stage.
		return studyplan.KindReview, studyplan.SessionReview, cs.Stage == StageReview

	case !hasLesson:
		return studyplan.KindLesson, studyplan.SessionTheory, cs.Stage == StageTheory

	case cs.Stage == StageMockExam:
		if kind, ok := g.gate.resolve(date, g.totalLessons, g.lessons); ok {
			return kind, studyplan.SessionMockExam, true
		}
		// Not yet eligible: practice instead, cycle stays put.
		return studyplan.KindExercise, studyplan.SessionPractice, false
	}

	kind, sessionType := stageKind(cs.Stage)
	return kind, sessionType, true
}

// analysisMinMinutes bounds the post-exam analysis unit from below;
// leftovers shorter than this are not worth a dedicated analysis block.
const analysisMinMinutes = 45

// placeAnalysis appends the post-exam analysis unit when the remaining
// time allows. Returns the minutes consumed, 0 when skipped.
func (g *generator) placeAnalysis(date time.Time, subject studyplan.Subject, cursor studyplan.Clock, remainingCap int, phase string) int {
	remainingWindow := g.in.Window.End.Minutes() - cursor.Minutes()
	remaining := remainingWindow
	if remainingCap < remaining {
		remaining = remainingCap
	}
	if remaining < analysisMinMinutes {
		return 0
	}

	// Bounded 45-90.
	minutes := remaining
	if minutes > 90 {
		minutes = 90
	}

	// Analysis belongs to the exam's stage of the related subject.
	g.units = append(g.units, studyplan.StudyUnit{
		ID:               g.nextID(studyplan.DayKey(date)),
		SubjectID:        studyplan.MockExamSubjectID,
		Date:             date,
		Start:            cursor,
		End:              cursor.Add(minutes),
		DurationMinutes:  minutes,
		Kind:             studyplan.KindAnalysis,
		SessionType:      studyplan.SessionReview,
		Status:           studyplan.StatusScheduled,
		Phase:            phase,
		OriginalDate:     date,
		RelatedSubjectID: subject.ID,
		StageIndex:       int(StageMockExam),
		StageTarget:      repeatTarget(StageMockExam, subject.Level),
	})
	return minutes
}

// nextTopic walks the subject's topic catalog in lesson order.
func (g *generator) nextTopic(subjectID string) string {
	topics := g.in.Flags.TopicCatalog[subjectID]
	if len(topics) == 0 {
		return ""
	}
	return topics[g.lessons[subjectID]%len(topics)]
}

func pushCapped(list []string, v string, limit int) []string {
	list = append(list, v)
	if len(list) > limit {
		list = list[len(list)-limit:]
	}
	return list
}
