package fitstreak

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/model"
	"github.com/Berucha/FitStreak/internal/tracker"
)

var intakeMeal string

var intakeCmd = &cobra.Command{
	Use:   "intake",
	Short: "Track calories consumed today",
}

var intakeAddCmd = &cobra.Command{
	Use:   "add <calories>",
	Short: "Add a consumed-calorie entry to today's ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid calorie amount %q", args[0])
		}
		return withTracker(func(tr *tracker.Tracker) error {
			entry, err := tr.RecordIntake(amount, strings.ToLower(strings.TrimSpace(intakeMeal)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s: %d kcal", entry.ID, entry.Amount)
			if entry.Meal != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", entry.Meal)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		})
	},
}

var intakeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's calorie entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			day := tr.Today()
			if len(day.Entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries today.")
				return nil
			}
			for _, entry := range day.Entries {
				label := string(entry.Type)
				if entry.Type == model.EntryConsumed && entry.Meal != "" {
					label = entry.Meal
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-10s %5d kcal\n",
					entry.ID, entry.Timestamp.Format("15:04"), label, entry.Amount)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Consumed: %d kcal | Burned: %d kcal | Net: %d kcal\n",
				day.Consumed, day.Burned, day.Net())
			return nil
		})
	},
}

var intakeDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a calorie entry from today's ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.RemoveEntry(strings.TrimSpace(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Entry deleted.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(intakeCmd)
	intakeCmd.AddCommand(intakeAddCmd)
	intakeCmd.AddCommand(intakeListCmd)
	intakeCmd.AddCommand(intakeDeleteCmd)
	intakeAddCmd.Flags().StringVar(&intakeMeal, "meal", "", "Meal label (breakfast|lunch|dinner|snack)")
}
