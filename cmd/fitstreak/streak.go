package fitstreak

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/tracker"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show current and longest workout streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			streak := tr.Streak()
			fmt.Fprintln(cmd.OutOrStdout(), renderer().Flame(streak.Current))
			fmt.Fprintf(cmd.OutOrStdout(), "Longest streak: %d days\n", streak.Longest)
			if streak.LastWorkout != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Last workout: %s\n", streak.LastWorkout)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts logged yet.")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
