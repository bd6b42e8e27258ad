package fitstreak

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/app"
	"github.com/Berucha/FitStreak/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local fitstreak state store",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appConfig.StorePath
		if err := app.EnsureStoreDir(path); err != nil {
			return err
		}
		st, err := store.Open(path)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized fitstreak store at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
