package tracker

import (
	"sort"

	"github.com/Berucha/FitStreak/internal/dateutil"
	"github.com/Berucha/FitStreak/internal/model"
)

// seedFriends builds the mock roster stored on first access. There is no
// social backend; the feed exists so the leaderboard has something to show.
func seedFriends(today dateutil.Date) ([]model.Friend, error) {
	roster := []struct {
		name    string
		avatar  string
		streak  int
		daysAgo int
	}{
		{name: "Alex Johnson", avatar: "👤", streak: 12, daysAgo: 0},
		{name: "Sarah Williams", avatar: "👩", streak: 8, daysAgo: 0},
		{name: "Mike Chen", avatar: "👨", streak: 25, daysAgo: 1},
		{name: "Emma Davis", avatar: "👧", streak: 5, daysAgo: 0},
	}
	friends := make([]model.Friend, 0, len(roster))
	for _, f := range roster {
		id, err := newID()
		if err != nil {
			return nil, err
		}
		friends = append(friends, model.Friend{
			ID:            id,
			Name:          f.name,
			Avatar:        f.avatar,
			CurrentStreak: f.streak,
			LastWorkout:   today.AddDays(-f.daysAgo),
		})
	}
	return friends, nil
}

func sortFriendsByStreak(friends []model.Friend) {
	sort.SliceStable(friends, func(i, j int) bool {
		return friends[i].CurrentStreak > friends[j].CurrentStreak
	})
}
