package cmd

import (
	"fmt"
	"strings"

	"github.com/rsoarez/planista/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-subject performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
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

		tracker, err := store.LoadTracker(ctx, st, subjects)
		if err != nil {
			return fmt.Errorf("load adaptive state: %w", err)
		}

		fmt.Printf("%-24s  %8s  %8s  %6s  %8s  %s\n",
			"Subject", "Sessions", "Accuracy", "Focus", "Trend", "Last studied")
		fmt.Println(strings.Repeat("─", 76))

		for _, s := range subjects {
			p := tracker.Profile(s.ID)
			last := "never"
			if p.LastStudiedAt != nil {
				last = p.LastStudiedAt.Local().Format("02 Jan 15:04")
			}
			fmt.Printf("%-24s  %8d  %7.0f%%  %6.2f  %8s  %s\n",
				s.Name, p.SessionCount, p.AccuracyRate*100,
				p.AverageFocus, trendLabel(p.Trend), last)
		}
		return nil
	},
}

func trendLabel(trend float64) string {
	switch {
	case trend > 0.02:
		return "rising"
	case trend < -0.02:
		return "falling"
	default:
		return "steady"
	}
}
