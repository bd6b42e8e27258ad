package tests

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var entryIDPattern = regexp.MustCompile(`Added entry ([0-9a-z]+):`)

func TestDayInTheLifeFlow(t *testing.T) {
	binPath := buildFitstreakBinary(t)
	storePath := filepath.Join(t.TempDir(), "fitstreak.db")

	initStore(t, binPath, storePath)

	_, stderr, exit := runFitstreak(t, binPath, storePath, "goal", "set", "2000")
	if exit != 0 {
		t.Fatalf("goal set failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit := runFitstreak(t, binPath, storePath,
		"intake", "add", "500", "--meal", "breakfast")
	if exit != 0 {
		t.Fatalf("intake add failed: exit=%d stderr=%s", exit, stderr)
	}
	match := entryIDPattern.FindStringSubmatch(stdout)
	if match == nil {
		t.Fatalf("expected entry id in output, got %s", stdout)
	}
	breakfastID := match[1]

	_, stderr, exit = runFitstreak(t, binPath, storePath,
		"intake", "add", "700", "--meal", "lunch")
	if exit != 0 {
		t.Fatalf("intake add failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit = runFitstreak(t, binPath, storePath,
		"workout", "log",
		"--exercise", "Chest/Push-ups",
		"--exercise", "Cardio/Running",
	)
	if exit != 0 {
		t.Fatalf("workout log failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "350 kcal burned") {
		t.Fatalf("expected 350 kcal burned (100 + 250), got %s", stdout)
	}
	if !strings.Contains(stdout, "1 day streak") {
		t.Fatalf("expected first-day streak, got %s", stdout)
	}

	stdout, stderr, exit = runFitstreak(t, binPath, storePath, "status")
	if exit != 0 {
		t.Fatalf("status failed: exit=%d stderr=%s", exit, stderr)
	}
	for _, want := range []string{
		"Consumed: 1200 kcal",
		"Burned: 350 kcal",
		"Net: 850 kcal",
		"Goal: 2000 kcal",
		"60%",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("status missing %q:\n%s", want, stdout)
		}
	}

	// Logging a second workout on the same day must not grow the streak.
	stdout, stderr, exit = runFitstreak(t, binPath, storePath,
		"workout", "log", "--exercise", "Core/Planks")
	if exit != 0 {
		t.Fatalf("second workout failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "1 day streak") {
		t.Fatalf("same-day workout must hold streak at 1, got %s", stdout)
	}

	_, stderr, exit = runFitstreak(t, binPath, storePath, "intake", "delete", breakfastID)
	if exit != 0 {
		t.Fatalf("intake delete failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit = runFitstreak(t, binPath, storePath, "status")
	if exit != 0 {
		t.Fatalf("status failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Consumed: 700 kcal") {
		t.Fatalf("expected consumed 700 after delete:\n%s", stdout)
	}

	stdout, stderr, exit = runFitstreak(t, binPath, storePath, "workout", "history")
	if exit != 0 {
		t.Fatalf("history failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Push-ups") || !strings.Contains(stdout, "Planks") {
		t.Fatalf("history missing workouts:\n%s", stdout)
	}

	stdout, stderr, exit = runFitstreak(t, binPath, storePath, "friends")
	if exit != 0 {
		t.Fatalf("friends failed: exit=%d stderr=%s", exit, stderr)
	}
	mike := strings.Index(stdout, "Mike Chen")
	emma := strings.Index(stdout, "Emma Davis")
	if mike == -1 || emma == -1 || mike > emma {
		t.Fatalf("expected leaderboard sorted by streak:\n%s", stdout)
	}
}
