package model

import (
	"time"

	"github.com/Berucha/FitStreak/internal/dateutil"
)

// EntryType tags a calorie ledger entry as intake or exercise.
type EntryType string

const (
	EntryConsumed EntryType = "consumed"
	EntryBurned   EntryType = "burned"
)

// StreakState tracks consecutive workout days. Longest never drops below
// Current after an update. LastWorkout is nil before the first-ever workout.
type StreakState struct {
	Current     int            `json:"current_streak"`
	Longest     int            `json:"longest_streak"`
	LastWorkout *dateutil.Date `json:"last_workout_date,omitempty"`
}

// CalorieEntry is one timestamped add to the day's ledger. Entries are
// never mutated in place, only created and deleted.
type CalorieEntry struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	Type      EntryType `json:"type"`
	Meal      string    `json:"meal,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CalorieDay is the active day's ledger. Consumed and Burned are
// denormalized caches of the entry sums, kept in lockstep by the tracker.
// A record whose Date is not today is stale and gets replaced by an empty
// record before any mutation.
type CalorieDay struct {
	Date     dateutil.Date  `json:"date"`
	Consumed int            `json:"consumed"`
	Burned   int            `json:"burned"`
	Entries  []CalorieEntry `json:"entries"`
}

// Net returns consumed minus burned calories.
func (d CalorieDay) Net() int {
	return d.Consumed - d.Burned
}

// ProgressPercent returns consumed as a percentage of goal. The ratio may
// exceed 100 so callers can detect an over-goal day; clamping is a display
// concern.
func (d CalorieDay) ProgressPercent(goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(d.Consumed) / float64(goal) * 100
}

// ExerciseSnapshot is a copy of catalog exercise data embedded in a workout
// record at logging time, immune to later catalog edits.
type ExerciseSnapshot struct {
	Name        string `json:"name"`
	BodyPart    string `json:"body_part"`
	Calories    int    `json:"calories"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
}

// WorkoutRecord is an immutable log of one completed workout.
// TotalCalories equals the sum of the snapshot calorie costs at creation
// and never changes.
type WorkoutRecord struct {
	ID            string             `json:"id"`
	Date          dateutil.Date      `json:"date"`
	LoggedAt      time.Time          `json:"logged_at"`
	Exercises     []ExerciseSnapshot `json:"exercises"`
	TotalCalories int                `json:"total_calories"`
}

// Friend is one row of the (mock) friends leaderboard feed.
type Friend struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Avatar        string        `json:"avatar"`
	CurrentStreak int           `json:"current_streak"`
	LastWorkout   dateutil.Date `json:"last_workout_date"`
}
