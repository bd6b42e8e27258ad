package fitstreak

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/tracker"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the daily calorie goal",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <calories>",
	Short: "Set the daily calorie goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid goal %q", args[0])
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.SetGoal(goal); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie goal set to %d kcal\n", goal)
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the daily calorie goal and today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			goal := tr.Goal()
			day := tr.Today()
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %d kcal\n", goal)
			fmt.Fprintln(cmd.OutOrStdout(), renderer().ProgressBar(day.ProgressPercent(goal), 24))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalShowCmd)
}
