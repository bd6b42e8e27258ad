package fitstreak

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/tracker"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Show the friends streak leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			friends, err := tr.Friends()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderer().Leaderboard(friends))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(friendsCmd)
}
