package cmd

import (
	"fmt"
	"time"

	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <unit-id>",
	Short: "Mark a study unit done and apply the adaptive update",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func init() {
	completeCmd.Flags().Int("minutes", 0, "Minutes actually spent (default: planned duration)")
	completeCmd.Flags().Bool("skip", false, "Mark the unit skipped instead of completed")
}

func runComplete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	minutes, _ := cmd.Flags().GetInt("minutes")
	skip, _ := cmd.Flags().GetBool("skip")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	unit, err := st.UnitRepo().Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("look up unit: %w", err)
	}
	if unit.IsBreak {
		return fmt.Errorf("unit %s is a break", unit.ID)
	}
	if unit.Status == studyplan.StatusCompleted {
		fmt.Println("Unit is already completed.")
		return nil
	}

	now := time.Now()
	if minutes <= 0 {
		minutes = unit.DurationMinutes
	}

	// Events carry the real subject so snapshot replay matches the live
	// update; full mock exams keep the pseudo-subject and get no
	// adaptive update.
	resolved := subjectIDFor(unit)

	if skip {
		if err := st.UnitRepo().SetStatus(ctx, unit.ID, studyplan.StatusSkipped, now); err != nil {
			return fmt.Errorf("mark skipped: %w", err)
		}
		if err := st.EventRepo().AppendCompletion(ctx, store.CompletionEventData{
			UnitID:         unit.ID,
			SubjectID:      resolved,
			Kind:           string(unit.Kind),
			TopicName:      unit.TopicName,
			PlannedMinutes: unit.DurationMinutes,
			Skipped:        true,
		}); err != nil {
			return fmt.Errorf("record skip: %w", err)
		}
		fmt.Println("Unit skipped. It will surface in the backlog.")
		return nil
	}

	data := store.CompletionEventData{
		UnitID:         unit.ID,
		SubjectID:      resolved,
		Kind:           string(unit.Kind),
		TopicName:      unit.TopicName,
		PlannedMinutes: unit.DurationMinutes,
		SpentMinutes:   minutes,
	}

	if resolved == studyplan.MockExamSubjectID {
		if err := st.UnitRepo().SetStatus(ctx, unit.ID, studyplan.StatusCompleted, now); err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
		if err := st.EventRepo().AppendCompletion(ctx, data); err != nil {
			return fmt.Errorf("record completion: %w", err)
		}
		fmt.Printf("Completed %s (%d min).\n", unitLabel(unit), minutes)
		return nil
	}

	subjects, err := st.SubjectRepo().List(ctx)
	if err != nil {
		return fmt.Errorf("list subjects: %w", err)
	}
	subject, err := st.SubjectRepo().Get(ctx, resolved)
	if err != nil {
		return fmt.Errorf("look up subject: %w", err)
	}
	tracker, err := store.LoadTracker(ctx, st, subjects)
	if err != nil {
		return fmt.Errorf("load adaptive state: %w", err)
	}
	snap := tracker.RecordCompletion(unit, subject, minutes, now)
	data.Accuracy = snap.Accuracy

	if err := st.UnitRepo().SetStatus(ctx, unit.ID, studyplan.StatusCompleted, now); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	if err := st.EventRepo().AppendCompletion(ctx, data); err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	// Snapshot after the event is appended so its sequence covers the
	// completion; otherwise the next replay would apply it twice.
	if err := store.SaveTrackerSnapshot(ctx, st, tracker, now); err != nil {
		return fmt.Errorf("save adaptive state: %w", err)
	}

	profile := tracker.Profile(subject.ID)
	fmt.Printf("Completed %s (%d min). %s accuracy now %.0f%%.\n",
		unitLabel(unit), minutes, subject.Name, profile.AccuracyRate*100)
	return nil
}

// subjectIDFor resolves the real subject behind a unit, following
// mock-exam units back through RelatedSubjectID.
func subjectIDFor(u studyplan.StudyUnit) string {
	if u.SubjectID == studyplan.MockExamSubjectID && u.RelatedSubjectID != "" {
		return u.RelatedSubjectID
	}
	return u.SubjectID
}

func unitLabel(u studyplan.StudyUnit) string {
	if u.TopicName != "" {
		return u.TopicName
	}
	return string(u.Kind)
}
