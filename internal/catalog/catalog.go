// Package catalog holds the fixed exercise library: body parts mapped to
// exercise definitions with an icon, a per-session calorie estimate, and a
// short description. The library is immutable reference data; workouts
// embed snapshots of it rather than pointing into it.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Berucha/FitStreak/internal/model"
)

// Exercise is one catalog definition.
type Exercise struct {
	Name        string
	Icon        string
	Calories    int
	Description string
}

// bodyParts fixes the display order of the library.
var bodyParts = []string{
	"Chest", "Back", "Legs", "Shoulders", "Arms", "Core", "Cardio", "Full Body",
}

var library = map[string][]Exercise{
	"Chest": {
		{Name: "Push-ups", Icon: "💪", Calories: 100, Description: "Classic chest exercise using body weight"},
		{Name: "Bench Press", Icon: "🏋️", Calories: 150, Description: "Barbell chest press on flat bench"},
		{Name: "Dumbbell Flyes", Icon: "🦾", Calories: 120, Description: "Chest isolation with dumbbells"},
		{Name: "Incline Press", Icon: "📐", Calories: 140, Description: "Upper chest development exercise"},
	},
	"Back": {
		{Name: "Pull-ups", Icon: "🎯", Calories: 130, Description: "Upper back bodyweight exercise"},
		{Name: "Barbell Rows", Icon: "🎣", Calories: 140, Description: "Middle back strength builder"},
		{Name: "Deadlifts", Icon: "⚡", Calories: 200, Description: "Full posterior chain exercise"},
		{Name: "Lat Pulldowns", Icon: "⬇️", Calories: 110, Description: "Lat development machine exercise"},
	},
	"Legs": {
		{Name: "Squats", Icon: "🦵", Calories: 180, Description: "Compound leg exercise"},
		{Name: "Lunges", Icon: "👟", Calories: 150, Description: "Unilateral leg strengthener"},
		{Name: "Leg Press", Icon: "🚀", Calories: 160, Description: "Machine-based quad exercise"},
		{Name: "Calf Raises", Icon: "👠", Calories: 80, Description: "Lower leg isolation exercise"},
	},
	"Shoulders": {
		{Name: "Overhead Press", Icon: "🎖️", Calories: 130, Description: "Shoulder strength builder"},
		{Name: "Lateral Raises", Icon: "✈️", Calories: 90, Description: "Side delt isolation"},
		{Name: "Front Raises", Icon: "🙌", Calories: 85, Description: "Front delt targeting"},
		{Name: "Shrugs", Icon: "🤷", Calories: 70, Description: "Trap development exercise"},
	},
	"Arms": {
		{Name: "Bicep Curls", Icon: "💪", Calories: 90, Description: "Classic arm exercise"},
		{Name: "Tricep Dips", Icon: "📍", Calories: 110, Description: "Bodyweight tricep builder"},
		{Name: "Hammer Curls", Icon: "🔨", Calories: 95, Description: "Forearm and bicep exercise"},
		{Name: "Skull Crushers", Icon: "💀", Calories: 100, Description: "Lying tricep extension"},
	},
	"Core": {
		{Name: "Crunches", Icon: "🌀", Calories: 60, Description: "Classic ab exercise"},
		{Name: "Planks", Icon: "📏", Calories: 80, Description: "Isometric core strengthener"},
		{Name: "Russian Twists", Icon: "🌪️", Calories: 90, Description: "Oblique targeting exercise"},
		{Name: "Leg Raises", Icon: "📐", Calories: 85, Description: "Lower ab developer"},
	},
	"Cardio": {
		{Name: "Running", Icon: "🏃", Calories: 250, Description: "High-intensity cardio"},
		{Name: "Cycling", Icon: "🚴", Calories: 200, Description: "Low-impact cardio option"},
		{Name: "Jump Rope", Icon: "🪢", Calories: 220, Description: "Full-body cardio exercise"},
		{Name: "Burpees", Icon: "💥", Calories: 180, Description: "High-intensity full body"},
	},
	"Full Body": {
		{Name: "Kettlebell Swings", Icon: "⚙️", Calories: 170, Description: "Dynamic full body exercise"},
		{Name: "Mountain Climbers", Icon: "⛰️", Calories: 140, Description: "Cardio and core combination"},
		{Name: "Turkish Get-ups", Icon: "🎪", Calories: 160, Description: "Complex full body movement"},
		{Name: "Thrusters", Icon: "🎆", Calories: 190, Description: "Squat to overhead press combo"},
	},
}

// BodyParts returns the body part labels in display order.
func BodyParts() []string {
	parts := make([]string, len(bodyParts))
	copy(parts, bodyParts)
	return parts
}

// Exercises returns the exercise definitions for a body part, matched
// case-insensitively. The second return is false for an unknown body part.
func Exercises(bodyPart string) ([]Exercise, bool) {
	part, ok := canonicalBodyPart(bodyPart)
	if !ok {
		return nil, false
	}
	defs := library[part]
	out := make([]Exercise, len(defs))
	copy(out, defs)
	return out, true
}

// Find resolves a "BodyPart/Exercise Name" reference into a snapshot ready
// to embed in a workout record. Matching is case-insensitive.
func Find(ref string) (model.ExerciseSnapshot, error) {
	part, name, ok := strings.Cut(ref, "/")
	if !ok {
		return model.ExerciseSnapshot{}, fmt.Errorf("invalid exercise reference %q (expected BodyPart/Name)", ref)
	}
	canonical, ok := canonicalBodyPart(part)
	if !ok {
		return model.ExerciseSnapshot{}, fmt.Errorf("unknown body part %q", strings.TrimSpace(part))
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, ex := range library[canonical] {
		if strings.ToLower(ex.Name) == want {
			return model.ExerciseSnapshot{
				Name:        ex.Name,
				BodyPart:    canonical,
				Calories:    ex.Calories,
				Icon:        ex.Icon,
				Description: ex.Description,
			}, nil
		}
	}
	return model.ExerciseSnapshot{}, fmt.Errorf("unknown exercise %q for body part %q", strings.TrimSpace(name), canonical)
}

// TotalExercises returns the number of exercises across all body parts.
func TotalExercises() int {
	total := 0
	for _, defs := range library {
		total += len(defs)
	}
	return total
}

func canonicalBodyPart(value string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(value))
	for _, part := range bodyParts {
		if strings.ToLower(part) == want {
			return part, true
		}
	}
	return "", false
}
