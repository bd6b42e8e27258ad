package fitstreak

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's streak, calories, and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			streak := tr.Streak()
			day := tr.Today()
			goal := tr.Goal()
			r := renderer()

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", day.Date)
			fmt.Fprintln(cmd.OutOrStdout(), r.Flame(streak.Current))
			fmt.Fprintf(cmd.OutOrStdout(), "Longest streak: %d days\n", streak.Longest)
			fmt.Fprintf(cmd.OutOrStdout(), "Consumed: %d kcal\n", day.Consumed)
			fmt.Fprintf(cmd.OutOrStdout(), "Burned: %d kcal\n", day.Burned)
			fmt.Fprintf(cmd.OutOrStdout(), "Net: %d kcal\n", day.Net())
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %d kcal\n", goal)

			percent := day.ProgressPercent(goal)
			fmt.Fprintln(cmd.OutOrStdout(), r.ProgressBar(percent, 24))
			if percent > 100 {
				fmt.Fprintf(cmd.OutOrStdout(), "Over goal by %d kcal\n", day.Consumed-goal)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %d kcal\n", goal-day.Consumed)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
