package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rsoarez/planista/internal/advisor"
	"github.com/rsoarez/planista/internal/app"
	"github.com/rsoarez/planista/internal/llm"
	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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
	tracker, err := store.LoadTracker(ctx, st, subjects)
	if err != nil {
		return fmt.Errorf("load adaptive state: %w", err)
	}

	examDate, err := parseExamDate(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{
		Subjects: st.SubjectRepo(),
		Units:    st.UnitRepo(),
		Events:   st.EventRepo(),
		Tracker:  tracker,
		ExamDate: examDate,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The study coach will be unavailable.")
	} else {
		opts.Advisor = advisor.NewService(provider, advisor.DefaultConfig())
	}

	return app.Run(opts)
}

// parseExamDate reads the --exam-date flag, nil when unset.
func parseExamDate(cmd *cobra.Command) (*time.Time, error) {
	raw, _ := cmd.Flags().GetString("exam-date")
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid exam date %q (want YYYY-MM-DD): %w", raw, err)
	}
	d := studyplan.DateOnly(t)
	return &d, nil
}
