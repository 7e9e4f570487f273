package cmd

import (
	"github.com/rsoarez/planista/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planista",
	Short: "Adaptive study planner for exam preparation",
	Long:  "Planista — terminal study planner that allocates your available time across subjects and keeps the plan healthy as reality diverges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PLANISTA_DB env var)")
	rootCmd.PersistentFlags().String("exam-date", "", "Target exam date (YYYY-MM-DD)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(backlogCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PLANISTA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
