package fitstreak

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Berucha/FitStreak/internal/config"
)

var (
	cfgFile   string
	storePath string
	noColor   bool
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fitstreak",
	Short: "fitstreak tracks workouts, streaks, and calories from your terminal",
	Long:  "fitstreak is a local-first fitness tracker: log workouts from a fixed exercise catalog, keep a consecutive-day streak going, and balance calories consumed against calories burned.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if storePath != "" {
			cfg.StorePath = storePath
		}
		if noColor {
			cfg.NoColor = true
		}
		appConfig = cfg
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the SQLite state store")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.SilenceUsage = true
}
