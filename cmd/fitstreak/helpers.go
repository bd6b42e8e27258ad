package fitstreak

import (
	"github.com/Berucha/FitStreak/internal/app"
	"github.com/Berucha/FitStreak/internal/store"
	"github.com/Berucha/FitStreak/internal/tracker"
	"github.com/Berucha/FitStreak/internal/ui"
)

func withTracker(run func(*tracker.Tracker) error) error {
	path := appConfig.StorePath
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	tr, err := tracker.New(st, tracker.WithDefaultGoal(appConfig.DefaultGoal))
	if err != nil {
		return err
	}
	return run(tr)
}

func renderer() *ui.Renderer {
	return ui.NewRenderer(appConfig.NoColor)
}
