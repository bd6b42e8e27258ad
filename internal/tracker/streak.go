package tracker

import "github.com/Berucha/FitStreak/internal/dateutil"

// checkStreakValidity zeroes the current streak when more than one whole
// day has passed since the last workout. Longest and the last workout date
// are left alone, so the check is idempotent and safe to run at any time.
// Reports whether state changed.
func (t *Tracker) checkStreakValidity(now dateutil.Date) bool {
	if t.streak.LastWorkout == nil {
		return false
	}
	if dateutil.DayDifference(*t.streak.LastWorkout, now) > 1 && t.streak.Current != 0 {
		t.streak.Current = 0
		return true
	}
	return false
}

// recordWorkout advances the streak for a workout logged on now and returns
// the resulting current streak. A second workout on the same day changes
// nothing. A difference of exactly one day is the only increment path;
// any larger gap restarts the streak at 1.
func (t *Tracker) recordWorkout(now dateutil.Date) int {
	switch {
	case t.streak.LastWorkout == nil:
		t.streak.Current = 1
	case t.streak.LastWorkout.Equal(now):
		return t.streak.Current
	case dateutil.DayDifference(*t.streak.LastWorkout, now) == 1:
		t.streak.Current++
	default:
		t.streak.Current = 1
	}

	last := now
	t.streak.LastWorkout = &last
	if t.streak.Current > t.streak.Longest {
		t.streak.Longest = t.streak.Current
	}
	return t.streak.Current
}
