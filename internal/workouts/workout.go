package workouts

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/2beens/fittracker/pkg"
)

// Workout is a dated, user-owned log of performed exercises.
type Workout struct {
	ID              int               `json:"id"`
	UserID          int               `json:"user_id"`
	Name            string            `json:"name"`
	Description     *string           `json:"description"`
	Date            pkg.Date          `json:"date"`
	DurationMinutes *int              `json:"duration_minutes"`
	CaloriesBurned  *int              `json:"calories_burned"`
	Notes           *string           `json:"notes"`
	CreatedAt       *time.Time        `json:"created_at"`
	Exercises       []WorkoutExercise `json:"exercises"`
}

// WorkoutExercise is one performed exercise within a workout.
// ExerciseName is null once the referenced exercise has been deleted.
type WorkoutExercise struct {
	ID              int      `json:"id"`
	WorkoutID       int      `json:"workout_id"`
	ExerciseID      int      `json:"exercise_id"`
	ExerciseName    *string  `json:"exercise_name"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	Weight          *float64 `json:"weight"`
	DurationSeconds *int     `json:"duration_seconds"`
	Distance        *float64 `json:"distance"`
	CaloriesBurned  *int     `json:"calories_burned"`
	Notes           *string  `json:"notes"`
	OrderInWorkout  int      `json:"order_in_workout"`
}

func (w Workout) MarshalJSON() ([]byte, error) {
	type workoutJSON Workout
	wj := workoutJSON(w)
	if wj.Exercises == nil {
		wj.Exercises = []WorkoutExercise{}
	}
	return json.Marshal(wj)
}

// SortExercises orders the exercises by OrderInWorkout, ties broken by ID.
func (w *Workout) SortExercises() {
	slices.SortStableFunc(w.Exercises, func(a, b WorkoutExercise) int {
		if a.OrderInWorkout != b.OrderInWorkout {
			return a.OrderInWorkout - b.OrderInWorkout
		}
		return a.ID - b.ID
	})
}
