package tracker

import (
	"fmt"

	"github.com/Berucha/FitStreak/internal/dateutil"
	"github.com/Berucha/FitStreak/internal/model"
)

// rollover swaps a stale day record for a fresh empty one dated now.
// The goal is not part of the day record and is untouched. Reports whether
// a swap happened. Callers persist the new record; rollover itself is pure
// in-memory state transition.
func (t *Tracker) rollover(now dateutil.Date) bool {
	if t.day.Date.Equal(now) {
		return false
	}
	t.day = model.CalorieDay{
		Date:    now,
		Entries: []model.CalorieEntry{},
	}
	return true
}

// addEntry appends a ledger entry and bumps the matching running total.
// amount must be positive. The caller is responsible for rolling over first
// and for persisting afterwards.
func (t *Tracker) addEntry(amount int, typ model.EntryType, meal string) (*model.CalorieEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidAmount, amount)
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}
	entry := model.CalorieEntry{
		ID:        id,
		Amount:    amount,
		Type:      typ,
		Meal:      meal,
		Timestamp: t.now(),
	}
	t.day.Entries = append(t.day.Entries, entry)
	switch typ {
	case model.EntryConsumed:
		t.day.Consumed += amount
	case model.EntryBurned:
		t.day.Burned += amount
	}
	return &entry, nil
}

// deleteEntry removes the entry with the given id from today's record and
// decrements the matching total by its amount.
func (t *Tracker) deleteEntry(id string) error {
	for i, entry := range t.day.Entries {
		if entry.ID != id {
			continue
		}
		switch entry.Type {
		case model.EntryConsumed:
			t.day.Consumed -= entry.Amount
		case model.EntryBurned:
			t.day.Burned -= entry.Amount
		}
		t.day.Entries = append(t.day.Entries[:i], t.day.Entries[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}
