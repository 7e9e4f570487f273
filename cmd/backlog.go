package cmd

import (
	"fmt"
	"time"

	"github.com/rsoarez/planista/internal/backlog"
	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/spf13/cobra"
)

var backlogCmd = &cobra.Command{
	Use:   "backlog",
	Short: "Show overdue units and optionally redistribute them",
	RunE:  runBacklog,
}

func init() {
	backlogCmd.Flags().Bool("fix", false, "Redistribute the backlog into future capacity")
	backlogCmd.Flags().Int("lookahead", 14, "Days ahead to place rescheduled units")
}

func runBacklog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fix, _ := cmd.Flags().GetBool("fix")
	lookahead, _ := cmd.Flags().GetInt("lookahead")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	pending, err := st.UnitRepo().ListPending(ctx)
	if err != nil {
		return fmt.Errorf("list pending units: %w", err)
	}
	subjects, err := st.SubjectRepo().List(ctx)
	if err != nil {
		return fmt.Errorf("list subjects: %w", err)
	}

	today := studyplan.DateOnly(time.Now())
	entries := backlog.Detect(pending, subjects, today)
	if len(entries) == 0 {
		fmt.Println("No overdue units. You are on track.")
		return nil
	}

	names := make(map[string]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	fmt.Printf("%d overdue units:\n", len(entries))
	for _, e := range entries {
		name := names[e.Unit.SubjectID]
		if name == "" {
			name = e.Unit.SubjectID
		}
		fmt.Printf("  %s  %-14s %-24s %2d days overdue (priority %.0f)\n",
			e.Unit.Date.Format("02 Jan"), string(e.Unit.Kind), name,
			e.DaysOverdue, e.PriorityScore)
	}

	if !fix {
		fmt.Println("\nRun with --fix to redistribute.")
		return nil
	}

	scores := make(map[string]float64, len(entries))
	for _, e := range entries {
		scores[e.Unit.ID] = e.PriorityScore
	}

	outcome := backlog.AutoReschedule(backlog.Input{
		Units:         pending,
		Subjects:      subjects,
		Today:         today,
		LookaheadDays: lookahead,
	})

	before := make(map[string]studyplan.StudyUnit, len(pending))
	for _, u := range pending {
		before[u.ID] = u
	}
	var moved []studyplan.StudyUnit
	for _, u := range outcome.Units {
		prev, ok := before[u.ID]
		if !ok || prev.Date.Equal(u.Date) && prev.Start == u.Start {
			continue
		}
		moved = append(moved, u)
	}

	if err := st.UnitRepo().ApplyMoves(ctx, moved); err != nil {
		return fmt.Errorf("apply moves: %w", err)
	}
	for _, u := range moved {
		prev := before[u.ID]
		over := studyplan.DaysBetween(prev.Date, today)
		if over < 0 {
			over = 0
		}
		reason := "overdue"
		if _, wasBacklog := scores[u.ID]; !wasBacklog {
			reason = "displaced"
		}
		if err := st.EventRepo().AppendReschedule(ctx, store.RescheduleEventData{
			UnitID:        u.ID,
			SubjectID:     u.SubjectID,
			FromDate:      prev.Date,
			ToDate:        u.Date,
			DaysOverdue:   over,
			PriorityScore: scores[u.ID],
			Reason:        reason,
		}); err != nil {
			return fmt.Errorf("record reschedule: %w", err)
		}
	}

	fmt.Printf("\nRescheduled %d units (%d placed today). Backlog %d → %d.\n",
		outcome.MovedCount, outcome.InsertedTodayCount,
		outcome.BacklogBefore, outcome.BacklogAfter)

	sug := outcome.Suggestion
	if sug.ShouldSuggestReplan {
		fmt.Println("Backlog is heavy: consider regenerating the plan with `planista plan`.")
	}
	if sug.SuggestedReduceNewContent {
		fmt.Println("Consider pausing new lessons until the backlog clears.")
	}
	if sug.ShouldSuggestRecoveryMode {
		fmt.Println("Recovery mode: some units keep slipping.")
	}
	if sug.SuggestedExtraMinutesPerDay > 0 {
		fmt.Printf("Adding %d minutes per day would absorb the rest.\n", sug.SuggestedExtraMinutesPerDay)
	}
	return nil
}
