package fitstreak

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/catalog"
	"github.com/Berucha/FitStreak/internal/model"
	"github.com/Berucha/FitStreak/internal/tracker"
)

var (
	workoutExercises []string
	historyLimit     int
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log workouts and browse workout history",
}

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a workout from the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(workoutExercises) == 0 {
			return fmt.Errorf("at least one --exercise is required (e.g. --exercise \"Chest/Push-ups\")")
		}
		selected := make([]model.ExerciseSnapshot, 0, len(workoutExercises))
		for _, ref := range workoutExercises {
			snap, err := catalog.Find(ref)
			if err != nil {
				return err
			}
			selected = append(selected, snap)
		}
		return withTracker(func(tr *tracker.Tracker) error {
			record, err := tr.LogWorkout(selected)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %s (%d exercises, %d kcal burned)\n",
				record.ID, len(record.Exercises), record.TotalCalories)
			streak := tr.Streak()
			fmt.Fprintln(cmd.OutOrStdout(), renderer().Flame(streak.Current))
			return nil
		})
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged workouts, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := historyLimit
		if limit <= 0 {
			limit = appConfig.HistoryDisplayLimit
		}
		return withTracker(func(tr *tracker.Tracker) error {
			records := tr.History(limit)
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts logged yet.")
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d kcal\n", rec.Date, rec.ID, rec.TotalCalories)
				for _, ex := range rec.Exercises {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s %s (%s, %d kcal)\n", ex.Icon, ex.Name, ex.BodyPart, ex.Calories)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutHistoryCmd)
	workoutLogCmd.Flags().StringArrayVar(&workoutExercises, "exercise", nil, `Exercise reference "BodyPart/Name" (repeatable)`)
	workoutHistoryCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum records to show (default from config)")
}
