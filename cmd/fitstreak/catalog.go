package fitstreak

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [body-part]",
	Short: "Browse the exercise catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts := catalog.BodyParts()
		if len(args) == 1 {
			matched := ""
			for _, part := range parts {
				if strings.EqualFold(part, args[0]) {
					matched = part
					break
				}
			}
			if matched == "" {
				return fmt.Errorf("unknown body part %q (choose from %v)", args[0], parts)
			}
			parts = []string{matched}
		}
		for _, part := range parts {
			defs, _ := catalog.Exercises(part)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", part)
			for _, ex := range defs {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %-18s %4d kcal  %s\n", ex.Icon, ex.Name, ex.Calories, ex.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
