package tracker

import "github.com/Berucha/FitStreak/internal/model"

// appendHistory prepends a workout record (most-recent-first order) and
// evicts from the back once the retention cap is exceeded. History is
// append/evict only; records are never edited.
func (t *Tracker) appendHistory(record model.WorkoutRecord) {
	t.history = append([]model.WorkoutRecord{record}, t.history...)
	if len(t.history) > historyCap {
		t.history = t.history[:historyCap]
	}
}
