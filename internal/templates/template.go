package templates

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/pkg"
)

const DefaultRestSeconds = 60

// column sizes of the workout_templates and workout_template_exercises tables
const (
	maxNameLen       = 100
	maxCategoryLen   = 50
	maxDifficultyLen = 20
	maxImageURLLen   = 500
	maxListLen       = 200
	maxNotesLen      = 200
)

// Template is a reusable, ordered list of exercise prescriptions.
type Template struct {
	ID                       int                `json:"id"`
	Name                     string             `json:"name"`
	Description              *string            `json:"description"`
	Category                 string             `json:"category"`
	DifficultyLevel          string             `json:"difficulty_level"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes"`
	EstimatedCalories        *int               `json:"estimated_calories"`
	ImageURL                 *string            `json:"image_url"`
	EquipmentNeeded          []string           `json:"equipment_needed"`
	TargetMuscleGroups       []string           `json:"target_muscle_groups"`
	CreatedAt                *time.Time         `json:"created_at"`
	Exercises                []TemplateExercise `json:"exercises"`
}

// TemplateExercise prescribes one exercise within a template.
// The exercise_* fields are looked up from the referenced exercise and are null if it is gone.
type TemplateExercise struct {
	ID                   int     `json:"id"`
	TemplateID           int     `json:"template_id"`
	ExerciseID           int     `json:"exercise_id"`
	ExerciseName         *string `json:"exercise_name"`
	ExerciseDescription  *string `json:"exercise_description"`
	ExerciseInstructions *string `json:"exercise_instructions"`
	OrderInTemplate      int     `json:"order_in_template"`
	Sets                 *int    `json:"sets"`
	Reps                 *int    `json:"reps"`
	DurationSeconds      *int    `json:"duration_seconds"`
	RestSeconds          int     `json:"rest_seconds"`
	Notes                *string `json:"notes"`
}

func (t Template) MarshalJSON() ([]byte, error) {
	type templateJSON Template
	tj := templateJSON(t)
	if tj.EquipmentNeeded == nil {
		tj.EquipmentNeeded = []string{}
	}
	if tj.TargetMuscleGroups == nil {
		tj.TargetMuscleGroups = []string{}
	}
	if tj.Exercises == nil {
		tj.Exercises = []TemplateExercise{}
	}
	return json.Marshal(tj)
}

// SortExercises orders the exercises by OrderInTemplate, ties broken by ID.
func (t *Template) SortExercises() {
	slices.SortStableFunc(t.Exercises, func(a, b TemplateExercise) int {
		if a.OrderInTemplate != b.OrderInTemplate {
			return a.OrderInTemplate - b.OrderInTemplate
		}
		return a.ID - b.ID
	})
}

type ListParams struct {
	Category   string
	Difficulty string
}

type CreateRequest struct {
	Name                     string                  `json:"name"`
	Description              *string                 `json:"description"`
	Category                 string                  `json:"category"`
	DifficultyLevel          string                  `json:"difficulty_level"`
	EstimatedDurationMinutes *int                    `json:"estimated_duration_minutes"`
	EstimatedCalories        *int                    `json:"estimated_calories"`
	ImageURL                 *string                 `json:"image_url"`
	EquipmentNeeded          []string                `json:"equipment_needed"`
	TargetMuscleGroups       []string                `json:"target_muscle_groups"`
	Exercises                []CreateExerciseRequest `json:"exercises"`
}

type CreateExerciseRequest struct {
	ExerciseID      *int    `json:"exercise_id"`
	OrderInTemplate *int    `json:"order_in_template"`
	Sets            *int    `json:"sets"`
	Reps            *int    `json:"reps"`
	DurationSeconds *int    `json:"duration_seconds"`
	RestSeconds     *int    `json:"rest_seconds"`
	Notes           *string `json:"notes"`
}

// ToTemplate validates the request and builds the template to persist.
// Exercises without an explicit order are placed by their position, starting at 1.
func (req CreateRequest) ToTemplate() (*Template, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, apperr.Validation("category is required")
	}
	if strings.TrimSpace(req.DifficultyLevel) == "" {
		return nil, apperr.Validation("difficulty_level is required")
	}
	if req.EstimatedDurationMinutes == nil {
		return nil, apperr.Validation("estimated_duration_minutes is required")
	}
	if *req.EstimatedDurationMinutes <= 0 {
		return nil, apperr.Validation("estimated_duration_minutes must be positive")
	}
	if err := req.checkColumnSizes(); err != nil {
		return nil, err
	}

	t := &Template{
		Name:                     name,
		Description:              req.Description,
		Category:                 strings.TrimSpace(req.Category),
		DifficultyLevel:          strings.TrimSpace(req.DifficultyLevel),
		EstimatedDurationMinutes: *req.EstimatedDurationMinutes,
		EstimatedCalories:        req.EstimatedCalories,
		ImageURL:                 req.ImageURL,
		EquipmentNeeded:          req.EquipmentNeeded,
		TargetMuscleGroups:       req.TargetMuscleGroups,
		Exercises:                make([]TemplateExercise, 0, len(req.Exercises)),
	}
	for i, ex := range req.Exercises {
		if ex.ExerciseID == nil {
			return nil, apperr.Validation("exercises[%d]: exercise_id is required", i)
		}
		if err := ex.checkColumnSizes(); err != nil {
			return nil, apperr.Validation("exercises[%d]: %s", i, err)
		}
		order := i + 1
		if ex.OrderInTemplate != nil {
			if *ex.OrderInTemplate <= 0 {
				return nil, apperr.Validation("exercises[%d]: order_in_template must be positive", i)
			}
			order = *ex.OrderInTemplate
		}
		rest := DefaultRestSeconds
		if ex.RestSeconds != nil {
			if *ex.RestSeconds < 0 {
				return nil, apperr.Validation("exercises[%d]: rest_seconds must not be negative", i)
			}
			rest = *ex.RestSeconds
		}
		t.Exercises = append(t.Exercises, TemplateExercise{
			ExerciseID:      *ex.ExerciseID,
			OrderInTemplate: order,
			Sets:            ex.Sets,
			Reps:            ex.Reps,
			DurationSeconds: ex.DurationSeconds,
			RestSeconds:     rest,
			Notes:           ex.Notes,
		})
	}
	return t, nil
}

func (req CreateRequest) checkColumnSizes() error {
	equipment, err := pkg.JoinList(req.EquipmentNeeded)
	if err != nil {
		return apperr.Validation("equipment_needed: %s", err)
	}
	muscleGroups, err := pkg.JoinList(req.TargetMuscleGroups)
	if err != nil {
		return apperr.Validation("target_muscle_groups: %s", err)
	}
	if err := pkg.CheckAll(
		pkg.CheckMaxLen("name", strings.TrimSpace(req.Name), maxNameLen),
		pkg.CheckMaxLen("category", strings.TrimSpace(req.Category), maxCategoryLen),
		pkg.CheckMaxLen("difficulty_level", strings.TrimSpace(req.DifficultyLevel), maxDifficultyLen),
		pkg.CheckMaxLenPtr("image_url", req.ImageURL, maxImageURLLen),
		pkg.CheckMaxLen("equipment_needed", equipment, maxListLen),
		pkg.CheckMaxLen("target_muscle_groups", muscleGroups, maxListLen),
		pkg.CheckInt4("estimated_duration_minutes", req.EstimatedDurationMinutes),
		pkg.CheckInt4("estimated_calories", req.EstimatedCalories),
	); err != nil {
		return apperr.Validation("%s", err)
	}
	return nil
}

func (ex CreateExerciseRequest) checkColumnSizes() error {
	return pkg.CheckAll(
		pkg.CheckInt4("exercise_id", ex.ExerciseID),
		pkg.CheckInt4("order_in_template", ex.OrderInTemplate),
		pkg.CheckInt4("sets", ex.Sets),
		pkg.CheckInt4("reps", ex.Reps),
		pkg.CheckInt4("duration_seconds", ex.DurationSeconds),
		pkg.CheckInt4("rest_seconds", ex.RestSeconds),
		pkg.CheckMaxLenPtr("notes", ex.Notes, maxNotesLen),
	)
}
