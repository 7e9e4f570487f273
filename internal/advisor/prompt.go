package advisor

import (
	"fmt"
	"strings"
)

const coachSystemPrompt = `You are a pragmatic study coach for a competitive-exam candidate. You see their schedule, backlog and per-subject performance. Give direct, specific advice grounded in the numbers you are shown.`

func buildAdviceUserMessage(input AdviceInput) string {
	var b strings.Builder

	b.WriteString("Subjects:\n")
	for _, s := range input.Subjects {
		b.WriteString(fmt.Sprintf("- %s: priority %d/10, difficulty %d/10, exam weight %.0f%%\n",
			s.Name, s.Priority, s.Difficulty, s.ExamWeight*100))
	}

	if len(input.Profiles) > 0 {
		names := make(map[string]string, len(input.Subjects))
		for _, s := range input.Subjects {
			names[s.ID] = s.Name
		}
		b.WriteString("\nPerformance:\n")
		for _, p := range input.Profiles {
			name := names[p.SubjectID]
			if name == "" {
				name = p.SubjectID
			}
			trend := "stable"
			switch {
			case p.Trend > 0.02:
				trend = "improving"
			case p.Trend < -0.02:
				trend = "declining"
			}
			b.WriteString(fmt.Sprintf("- %s: accuracy %.0f%%, %d sessions, trend %s\n",
				name, p.AccuracyRate*100, p.SessionCount, trend))
		}
	}

	b.WriteString("\nBacklog:\n")
	if input.BacklogCount == 0 {
		b.WriteString("None\n")
	} else {
		b.WriteString(fmt.Sprintf("%d overdue units (%d minutes of work)\n",
			input.BacklogCount, input.BacklogMinutes))
	}
	if input.RecoveryMode {
		b.WriteString("Recovery mode is active: units have been rescheduled repeatedly.\n")
	}

	b.WriteString("\nUpcoming plan:\n")
	b.WriteString(fmt.Sprintf("%d units, %.1f hours, %d mock exams\n",
		input.PlannedUnits, input.PlannedHours, input.MockExamsNext))
	if input.DaysToExam >= 0 {
		b.WriteString(fmt.Sprintf("Days until exam: %d\n", input.DaysToExam))
	}

	if q := strings.TrimSpace(input.Question); q != "" {
		b.WriteString(fmt.Sprintf("\nThe learner asks: %q\n", q))
	}

	b.WriteString(`
Instructions:
1. Summarize the situation in 3-5 sentences. Name the biggest risk first. If the learner asked a question, answer it here.
2. Pick 1-3 subjects to focus on, favoring high exam weight with weak or declining accuracy.
3. Suggest 2-4 concrete adjustments (e.g. "shift one hour from X to Y", "schedule the pending mock exam this weekend"). Base every suggestion on the numbers above.
4. Close with one or two sentences of grounded encouragement tied to a real improvement in the data, if any.`)

	return b.String()
}
