package templates

import (
	"slices"
	"time"

	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"
)

// Expand builds a new, unsaved workout for userID out of the template.
// Name and description are copied, the date is the UTC date of now. Each template exercise
// becomes a workout exercise with the same exercise, sets, reps, duration and order.
// Rest periods, notes and the template estimates are not carried over.
func Expand(t *Template, userID int, now time.Time) *workouts.Workout {
	prescriptions := slices.Clone(t.Exercises)
	slices.SortStableFunc(prescriptions, func(a, b TemplateExercise) int {
		if a.OrderInTemplate != b.OrderInTemplate {
			return a.OrderInTemplate - b.OrderInTemplate
		}
		return a.ID - b.ID
	})

	w := &workouts.Workout{
		UserID:      userID,
		Name:        t.Name,
		Description: copyPtr(t.Description),
		Date:        pkg.NewDate(now),
		Exercises:   make([]workouts.WorkoutExercise, 0, len(prescriptions)),
	}
	for _, te := range prescriptions {
		w.Exercises = append(w.Exercises, workouts.WorkoutExercise{
			ExerciseID:      te.ExerciseID,
			Sets:            copyPtr(te.Sets),
			Reps:            copyPtr(te.Reps),
			DurationSeconds: copyPtr(te.DurationSeconds),
			OrderInWorkout:  te.OrderInTemplate,
		})
	}
	return w
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
