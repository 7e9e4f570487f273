package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/rsoarez/planista/internal/plancache"
	"github.com/rsoarez/planista/internal/scheduler"
	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and persist a study plan",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().String("start", "", "First day of the plan (YYYY-MM-DD, default today)")
	planCmd.Flags().Int("days", 14, "Number of calendar days to plan")
	planCmd.Flags().Float64("hours", 4, "Study hours per day")
	planCmd.Flags().String("goal", scheduler.GoalExam, "Study goal (exam or general)")
	planCmd.Flags().String("level", string(studyplan.LevelIntermediate), "Learner level: basic, intermediate or advanced")
	planCmd.Flags().StringSlice("rest-day", nil, "Days to skip entirely (YYYY-MM-DD, repeatable)")
	planCmd.Flags().Bool("sundays", false, "Schedule on Sundays too")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	subjects, err := st.SubjectRepo().List(ctx)
	if err != nil {
		return fmt.Errorf("list subjects: %w", err)
	}
	if len(subjects) == 0 {
		fmt.Println("No subjects yet. Add one with: planista subjects add")
		return nil
	}

	in, err := buildPlanInput(cmd, subjects)
	if err != nil {
		return err
	}

	tracker, err := store.LoadTracker(ctx, st, subjects)
	if err != nil {
		return fmt.Errorf("load adaptive state: %w", err)
	}
	in.Profiles = tracker.All()

	cache := plancache.New()
	result, hit, err := cache.Generate(in)
	if err != nil {
		return fmt.Errorf("generate plan: %w", err)
	}

	if err := st.UnitRepo().ReplacePlan(ctx, in.Range.Start, in.Range.End, result.Units); err != nil {
		return fmt.Errorf("persist plan: %w", err)
	}

	fp, err := plancache.Fingerprint(in)
	if err != nil {
		return fmt.Errorf("fingerprint plan input: %w", err)
	}
	if err := st.EventRepo().AppendPlan(ctx, store.PlanEventData{
		Fingerprint: fp,
		RangeStart:  in.Range.Start,
		RangeEnd:    in.Range.End,
		UnitCount:   len(result.Units),
		TotalHours:  result.TotalHours,
		CacheHit:    hit,
	}); err != nil {
		return fmt.Errorf("record plan event: %w", err)
	}

	printPlanSummary(in, result)
	return nil
}

// buildPlanInput translates the command flags into a generation input.
func buildPlanInput(cmd *cobra.Command, subjects []studyplan.Subject) (scheduler.Input, error) {
	days, _ := cmd.Flags().GetInt("days")
	hours, _ := cmd.Flags().GetFloat64("hours")
	goal, _ := cmd.Flags().GetString("goal")
	level, _ := cmd.Flags().GetString("level")
	restDays, _ := cmd.Flags().GetStringSlice("rest-day")
	sundays, _ := cmd.Flags().GetBool("sundays")

	start := studyplan.DateOnly(time.Now())
	if raw, _ := cmd.Flags().GetString("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return scheduler.Input{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", raw, err)
		}
		start = studyplan.DateOnly(t)
	}
	if days < 1 {
		return scheduler.Input{}, fmt.Errorf("--days must be at least 1, got %d", days)
	}

	examDate, err := parseExamDate(cmd)
	if err != nil {
		return scheduler.Input{}, err
	}

	weekdays := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
	if sundays {
		weekdays = append(weekdays, time.Sunday)
	}

	var rest []string
	for _, raw := range restDays {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return scheduler.Input{}, fmt.Errorf("invalid rest day %q (want YYYY-MM-DD): %w", raw, err)
		}
		rest = append(rest, studyplan.DayKey(t))
	}

	return scheduler.Input{
		Subjects: subjects,
		Preferences: scheduler.Preferences{
			HoursPerDay:    hours,
			ActiveWeekdays: weekdays,
			Goal:           goal,
			ExamDate:       examDate,
			LearnerLevel:   studyplan.Level(level),
		},
		Range: scheduler.DateRange{
			Start: start,
			End:   start.AddDate(0, 0, days-1),
		},
		Window: scheduler.DayWindow{
			Start:          studyplan.NewClock(8, 0),
			End:            studyplan.NewClock(18, 0),
			MaxUnitMinutes: 50,
			BreakMinutes:   10,
		},
		RestDays:      rest,
		MockExamRules: scheduler.DefaultMockExamRules(),
	}, nil
}

func printPlanSummary(in scheduler.Input, result *scheduler.Result) {
	study := 0
	for _, u := range result.Units {
		if !u.IsBreak {
			study++
		}
	}
	fmt.Printf("Planned %s – %s: %d study units, %.1f hours.\n",
		in.Range.Start.Format("02 Jan"), in.Range.End.Format("02 Jan"),
		study, result.TotalHours)

	if len(result.SubjectDistribution) == 0 {
		return
	}
	ids := make([]string, 0, len(result.SubjectDistribution))
	for id := range result.SubjectDistribution {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	names := make(map[string]string, len(in.Subjects))
	for _, s := range in.Subjects {
		names[s.ID] = s.Name
	}
	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		fmt.Printf("  %-24s %5.1f h\n", name, result.SubjectDistribution[id])
	}
}
