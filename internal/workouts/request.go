package workouts

import (
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/pkg"
)

// column sizes of the workouts table
const maxNameLen = 100

type CreateRequest struct {
	UserID          *int                    `json:"user_id"`
	Name            string                  `json:"name"`
	Description     *string                 `json:"description"`
	Date            string                  `json:"date"`
	DurationMinutes *int                    `json:"duration_minutes"`
	CaloriesBurned  *int                    `json:"calories_burned"`
	Notes           *string                 `json:"notes"`
	Exercises       []CreateExerciseRequest `json:"exercises"`
}

type CreateExerciseRequest struct {
	ExerciseID      *int     `json:"exercise_id"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	Weight          *float64 `json:"weight"`
	DurationSeconds *int     `json:"duration_seconds"`
	Distance        *float64 `json:"distance"`
	CaloriesBurned  *int     `json:"calories_burned"`
	Notes           *string  `json:"notes"`
}

// ToWorkout validates the request and builds the workout to persist.
// Nested exercises are ordered as given, starting at 1. A missing date means today.
func (req CreateRequest) ToWorkout(now time.Time) (*Workout, error) {
	if req.UserID == nil {
		return nil, apperr.Validation("user_id is required")
	}
	if pkg.CheckInt4("user_id", req.UserID) != nil {
		return nil, apperr.NotFound("user %d not found", *req.UserID)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if err := pkg.CheckAll(
		pkg.CheckMaxLen("name", name, maxNameLen),
		pkg.CheckInt4("duration_minutes", req.DurationMinutes),
		pkg.CheckInt4("calories_burned", req.CaloriesBurned),
	); err != nil {
		return nil, apperr.Validation("%s", err)
	}
	date, err := pkg.ParseDate(req.Date, now)
	if err != nil {
		return nil, apperr.Validation("%s", err)
	}

	w := &Workout{
		UserID:          *req.UserID,
		Name:            name,
		Description:     req.Description,
		Date:            pkg.Date{Time: date},
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
		Exercises:       make([]WorkoutExercise, 0, len(req.Exercises)),
	}
	for i, ex := range req.Exercises {
		if ex.ExerciseID == nil {
			return nil, apperr.Validation("exercises[%d]: exercise_id is required", i)
		}
		if pkg.CheckInt4("exercise_id", ex.ExerciseID) != nil {
			return nil, apperr.Validation("exercise %d does not exist", *ex.ExerciseID)
		}
		if err := pkg.CheckAll(
			pkg.CheckInt4("sets", ex.Sets),
			pkg.CheckInt4("reps", ex.Reps),
			pkg.CheckInt4("duration_seconds", ex.DurationSeconds),
			pkg.CheckInt4("calories_burned", ex.CaloriesBurned),
		); err != nil {
			return nil, apperr.Validation("exercises[%d]: %s", i, err)
		}
		w.Exercises = append(w.Exercises, WorkoutExercise{
			ExerciseID:      *ex.ExerciseID,
			Sets:            ex.Sets,
			Reps:            ex.Reps,
			Weight:          ex.Weight,
			DurationSeconds: ex.DurationSeconds,
			Distance:        ex.Distance,
			CaloriesBurned:  ex.CaloriesBurned,
			Notes:           ex.Notes,
			OrderInWorkout:  i + 1,
		})
	}
	return w, nil
}

// UpdateRequest is a partial update: nil fields are left untouched.
type UpdateRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	DurationMinutes *int    `json:"duration_minutes"`
	CaloriesBurned  *int    `json:"calories_burned"`
	Notes           *string `json:"notes"`
}

type UpdateParams struct {
	Name            *string
	Description     *string
	Date            *time.Time
	DurationMinutes *int
	CaloriesBurned  *int
	Notes           *string
}

func (req UpdateRequest) ToParams() (UpdateParams, error) {
	params := UpdateParams{
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return UpdateParams{}, apperr.Validation("name must not be empty")
		}
		if err := pkg.CheckMaxLen("name", name, maxNameLen); err != nil {
			return UpdateParams{}, apperr.Validation("%s", err)
		}
		params.Name = &name
	}
	if err := pkg.CheckAll(
		pkg.CheckInt4("duration_minutes", req.DurationMinutes),
		pkg.CheckInt4("calories_burned", req.CaloriesBurned),
	); err != nil {
		return UpdateParams{}, apperr.Validation("%s", err)
	}
	if req.Date != nil {
		if *req.Date == "" {
			return UpdateParams{}, apperr.Validation("date must not be empty")
		}
		date, err := pkg.ParseDate(*req.Date, time.Time{})
		if err != nil {
			return UpdateParams{}, apperr.Validation("%s", err)
		}
		params.Date = &date
	}
	return params, nil
}
