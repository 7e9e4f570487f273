package cmd

import (
	"fmt"
	"strings"

	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Manage the subjects being studied",
}

var subjectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		subjects, err := st.SubjectRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list subjects: %w", err)
		}
		if len(subjects) == 0 {
			fmt.Println("No subjects yet. Add one with: planista subjects add")
			return nil
		}

		fmt.Printf("%-16s  %-24s  %-10s  %3s  %4s  %6s\n",
			"ID", "Name", "Area", "Pri", "Diff", "Weight")
		fmt.Println(strings.Repeat("─", 76))
		for _, s := range subjects {
			fmt.Printf("%-16s  %-24s  %-10s  %3d  %4d  %5.0f%%\n",
				s.ID, s.Name, string(studyplan.InferArea(s)),
				s.Priority, s.Difficulty, s.ExamWeight*100)
		}
		return nil
	},
}

var subjectsAddCmd = &cobra.Command{
	Use:   "add <id> <name>",
	Short: "Add or update a subject",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, _ := cmd.Flags().GetInt("priority")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		weight, _ := cmd.Flags().GetFloat64("weight")
		hours, _ := cmd.Flags().GetFloat64("hours")
		area, _ := cmd.Flags().GetString("area")
		level, _ := cmd.Flags().GetString("level")

		if priority < 1 || priority > 10 {
			return fmt.Errorf("--priority must be 1-10, got %d", priority)
		}
		if difficulty < 1 || difficulty > 10 {
			return fmt.Errorf("--difficulty must be 1-10, got %d", difficulty)
		}
		if weight < 0 || weight > 1 {
			return fmt.Errorf("--weight must be 0-1, got %g", weight)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s := studyplan.Subject{
			ID:                args[0],
			Name:              args[1],
			Priority:          priority,
			Difficulty:        difficulty,
			WeeklyTargetHours: hours,
			Area:              studyplan.Area(area),
			Level:             studyplan.Level(level),
			ExamWeight:        weight,
		}
		if err := st.SubjectRepo().Save(cmd.Context(), s); err != nil {
			return fmt.Errorf("save subject: %w", err)
		}
		fmt.Printf("Saved subject %s (%s).\n", s.ID, s.Name)
		return nil
	},
}

var subjectsArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Hide a subject from planning without deleting its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SubjectRepo().Archive(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("archive subject: %w", err)
		}
		fmt.Printf("Archived subject %s.\n", args[0])
		return nil
	},
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func init() {
	subjectsAddCmd.Flags().Int("priority", 5, "Priority 1-10")
	subjectsAddCmd.Flags().Int("difficulty", 5, "Perceived difficulty 1-10")
	subjectsAddCmd.Flags().Float64("weight", 0, "Exam weight 0-1")
	subjectsAddCmd.Flags().Float64("hours", 0, "Weekly target hours")
	subjectsAddCmd.Flags().String("area", "", "Subject area (quant, language, writing, science, humanities)")
	subjectsAddCmd.Flags().String("level", string(studyplan.LevelIntermediate), "Learner level: basic, intermediate or advanced")

	subjectsCmd.AddCommand(subjectsListCmd)
	subjectsCmd.AddCommand(subjectsAddCmd)
	subjectsCmd.AddCommand(subjectsArchiveCmd)
}
