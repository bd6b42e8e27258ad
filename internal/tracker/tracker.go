// Package tracker is the accounting core of FitStreak: the workout streak
// engine, the daily calorie ledger, and the bounded workout history, all
// coordinated behind one facade. The Tracker owns every piece of persisted
// state and is the only component that talks to the store.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/Berucha/FitStreak/internal/dateutil"
	"github.com/Berucha/FitStreak/internal/model"
	"github.com/Berucha/FitStreak/internal/store"
)

// Store record keys.
const (
	streakKey  = "streak"
	dailyKey   = "daily_calories"
	goalKey    = "calorie_goal"
	historyKey = "workout_history"
	friendsKey = "friends"
)

const (
	// DefaultGoal is the daily calorie goal before the user sets one.
	DefaultGoal = 2000

	// historyCap bounds the workout history; oldest records are evicted.
	historyCap = 100

	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 10
)

// Rejection errors. These are ordinary outcomes, never panics.
var (
	ErrEmptyWorkout  = errors.New("workout needs at least one exercise")
	ErrInvalidAmount = errors.New("calorie amount must be > 0")
	ErrInvalidGoal   = errors.New("calorie goal must be > 0")
	ErrEntryNotFound = errors.New("calorie entry not found")
)

// Tracker loads all state at construction, mutates it in memory, and writes
// changed records back after every operation. A coarse mutex serializes
// mutations; the operation rate is button presses, not traffic.
type Tracker struct {
	mu    sync.Mutex
	store *store.Store
	now   func() time.Time
	logf  func(format string, args ...any)

	streak  model.StreakState
	day     model.CalorieDay
	goal    int
	history []model.WorkoutRecord
	friends []model.Friend
}

type Option func(*Tracker)

// WithClock overrides the time source. Tests use this to move across days.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithDefaultGoal sets the calorie goal used when none has been stored yet.
func WithDefaultGoal(goal int) Option {
	return func(t *Tracker) {
		if goal > 0 {
			t.goal = goal
		}
	}
}

// New loads persisted state from st, substituting defaults for missing or
// corrupt records, then runs the streak validity check and the calorie
// rollover for the current day.
func New(st *store.Store, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		store: st,
		now:   time.Now,
		logf:  log.Printf,
		goal:  DefaultGoal,
	}
	for _, opt := range opts {
		opt(t)
	}

	loadRecord(t, streakKey, &t.streak)
	loadRecord(t, dailyKey, &t.day)
	loadRecord(t, goalKey, &t.goal)
	loadRecord(t, historyKey, &t.history)
	loadRecord(t, friendsKey, &t.friends)
	if t.goal <= 0 {
		t.goal = DefaultGoal
	}

	today := t.today()
	changed := map[string]any{}
	if t.checkStreakValidity(today) {
		changed[streakKey] = t.streak
	}
	if t.rollover(today) {
		changed[dailyKey] = t.day
	}
	if len(changed) > 0 {
		if err := t.store.SaveAll(changed); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LogWorkout records one completed workout: it snapshots the selected
// exercises, advances the streak, books the burned calories in today's
// ledger, and prepends the record to history. All three mutations land in
// the store as one write.
func (t *Tracker) LogWorkout(selected []model.ExerciseSnapshot) (*model.WorkoutRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(selected) == 0 {
		return nil, ErrEmptyWorkout
	}

	today := t.today()
	t.rollover(today)

	total := 0
	exercises := make([]model.ExerciseSnapshot, len(selected))
	copy(exercises, selected)
	for _, ex := range exercises {
		total += ex.Calories
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	record := model.WorkoutRecord{
		ID:            id,
		Date:          today,
		LoggedAt:      t.now(),
		Exercises:     exercises,
		TotalCalories: total,
	}

	t.recordWorkout(today)
	if _, err := t.addEntry(total, model.EntryBurned, ""); err != nil {
		return nil, err
	}
	t.appendHistory(record)

	if err := t.store.SaveAll(map[string]any{
		streakKey:  t.streak,
		dailyKey:   t.day,
		historyKey: t.history,
	}); err != nil {
		return nil, err
	}
	return &record, nil
}

// RecordIntake adds a consumed-calorie entry to today's ledger.
func (t *Tracker) RecordIntake(amount int, meal string) (*model.CalorieEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollover(t.today())
	entry, err := t.addEntry(amount, model.EntryConsumed, meal)
	if err != nil {
		return nil, err
	}
	if err := t.store.Save(dailyKey, t.day); err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveEntry deletes a calorie entry from today's ledger by id and
// decrements the matching running total. Entries from prior days are gone
// with the rollover and cannot be addressed.
func (t *Tracker) RemoveEntry(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollover(t.today())
	if err := t.deleteEntry(id); err != nil {
		return err
	}
	return t.store.Save(dailyKey, t.day)
}

// SetGoal stores a new daily calorie goal. The goal survives rollover.
func (t *Tracker) SetGoal(goal int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if goal <= 0 {
		return ErrInvalidGoal
	}
	t.goal = goal
	return t.store.Save(goalKey, t.goal)
}

// Goal returns the active daily calorie goal.
func (t *Tracker) Goal() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.goal
}

// Streak returns the current streak state, re-running the validity check so
// a streak broken since the last workout reads as 0 without waiting for the
// next log.
func (t *Tracker) Streak() model.StreakState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.checkStreakValidity(t.today()) {
		if err := t.store.Save(streakKey, t.streak); err != nil {
			t.logf("persist streak reset: %v", err)
		}
	}
	return t.streak
}

// Today returns today's calorie ledger, rolling a stale record over first.
func (t *Tracker) Today() model.CalorieDay {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.rollover(t.today()) {
		if err := t.store.Save(dailyKey, t.day); err != nil {
			t.logf("persist calorie rollover: %v", err)
		}
	}
	return copyDay(t.day)
}

// History returns up to limit workout records, most recent first. A non-
// positive limit returns everything retained.
func (t *Tracker) History(limit int) []model.WorkoutRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.history)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.WorkoutRecord, n)
	copy(out, t.history[:n])
	return out
}

// Friends returns the leaderboard feed sorted by current streak descending,
// seeding the mock roster on first access. The tracker never mutates the
// feed beyond that seed.
func (t *Tracker) Friends() ([]model.Friend, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.friends) == 0 {
		seeded, err := seedFriends(t.today())
		if err != nil {
			return nil, err
		}
		t.friends = seeded
		if err := t.store.Save(friendsKey, t.friends); err != nil {
			return nil, err
		}
	}
	out := make([]model.Friend, len(t.friends))
	copy(out, t.friends)
	sortFriendsByStreak(out)
	return out, nil
}

func (t *Tracker) today() dateutil.Date {
	return dateutil.DateOf(t.now())
}

// loadRecord fills target from the stored record, leaving it untouched on a
// miss. A corrupt record is discarded with a warning, falling back to the
// default rather than failing startup. Decoding goes through a zero temp
// value so a record that partially decodes before erroring cannot leave
// partial state behind.
func loadRecord[T any](t *Tracker, key string, target *T) {
	raw, ok, err := t.store.Load(key)
	if err != nil {
		t.logf("load %s record: %v", key, err)
		return
	}
	if !ok {
		return
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.logf("discarding corrupt %s record: %v", key, err)
		return
	}
	*target = decoded
}

func copyDay(day model.CalorieDay) model.CalorieDay {
	out := day
	out.Entries = make([]model.CalorieEntry, len(day.Entries))
	copy(out.Entries, day.Entries)
	return out
}

func newID() (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}
