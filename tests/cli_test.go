package tests

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildFitstreakBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "fitstreak")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build fitstreak binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runFitstreak(t *testing.T, binPath, storePath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--store", storePath, "--no-color"}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run fitstreak command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func initStore(t *testing.T, binPath, storePath string) {
	t.Helper()
	_, stderr, exit := runFitstreak(t, binPath, storePath, "init")
	if exit != 0 {
		t.Fatalf("init store failed: exit=%d stderr=%s", exit, stderr)
	}
}

func TestCLIRejectsNonPositiveIntake(t *testing.T) {
	binPath := buildFitstreakBinary(t)
	storePath := filepath.Join(t.TempDir(), "fitstreak.db")
	initStore(t, binPath, storePath)

	for _, amount := range []string{"0", "-300"} {
		_, stderr, exit := runFitstreak(t, binPath, storePath, "intake", "add", amount)
		if exit == 0 {
			t.Fatalf("expected failure for intake %s", amount)
		}
		if !strings.Contains(stderr, "must be > 0") {
			t.Fatalf("expected rejection message, got %s", stderr)
		}
	}
}

func TestCLIRejectsNonPositiveGoal(t *testing.T) {
	binPath := buildFitstreakBinary(t)
	storePath := filepath.Join(t.TempDir(), "fitstreak.db")
	initStore(t, binPath, storePath)

	_, _, exit := runFitstreak(t, binPath, storePath, "goal", "set", "0")
	if exit == 0 {
		t.Fatal("expected failure for zero goal")
	}
}

func TestCLIRejectsWorkoutWithoutExercises(t *testing.T) {
	binPath := buildFitstreakBinary(t)
	storePath := filepath.Join(t.TempDir(), "fitstreak.db")
	initStore(t, binPath, storePath)

	_, stderr, exit := runFitstreak(t, binPath, storePath, "workout", "log")
	if exit == 0 {
		t.Fatal("expected failure for workout with no exercises")
	}
	if !strings.Contains(stderr, "--exercise") {
		t.Fatalf("expected hint about --exercise, got %s", stderr)
	}
}

func TestCLIRejectsUnknownExercise(t *testing.T) {
	binPath := buildFitstreakBinary(t)
	storePath := filepath.Join(t.TempDir(), "fitstreak.db")
	initStore(t, binPath, storePath)

	_, stderr, exit := runFitstreak(t, binPath, storePath,
		"workout", "log", "--exercise", "Chest/Moonwalk")
	if exit == 0 {
		t.Fatal("expected failure for unknown exercise")
	}
	if !strings.Contains(stderr, "unknown exercise") {
		t.Fatalf("expected unknown-exercise message, got %s", stderr)
	}
}

func TestCLIDeleteMissingEntry(t *testing.T) {
	binPath := buildFitstreakBinary(t)
	storePath := filepath.Join(t.TempDir(), "fitstreak.db")
	initStore(t, binPath, storePath)

	_, stderr, exit := runFitstreak(t, binPath, storePath, "intake", "delete", "bogus")
	if exit == 0 {
		t.Fatal("expected failure for missing entry id")
	}
	if !strings.Contains(stderr, "not found") {
		t.Fatalf("expected not-found message, got %s", stderr)
	}
}

func TestCLICatalogListsBodyParts(t *testing.T) {
	binPath := buildFitstreakBinary(t)
	storePath := filepath.Join(t.TempDir(), "fitstreak.db")

	stdout, stderr, exit := runFitstreak(t, binPath, storePath, "catalog")
	if exit != 0 {
		t.Fatalf("catalog failed: exit=%d stderr=%s", exit, stderr)
	}
	for _, part := range []string{"Chest", "Back", "Legs", "Shoulders", "Arms", "Core", "Cardio", "Full Body"} {
		if !strings.Contains(stdout, part) {
			t.Fatalf("catalog missing %q:\n%s", part, stdout)
		}
	}
	if !strings.Contains(stdout, "Push-ups") {
		t.Fatalf("catalog missing exercise names:\n%s", stdout)
	}
}
