package exercises

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/pkg"
)

// Exercise is an entry of the exercise catalog. Workouts and templates reference it by ID.
type Exercise struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	Category        string     `json:"category"`
	MuscleGroups    []string   `json:"muscle_groups"`
	Equipment       *string    `json:"equipment"`
	DifficultyLevel *string    `json:"difficulty_level"`
	Instructions    *string    `json:"instructions"`
	CreatedAt       *time.Time `json:"created_at"`
}

func (e Exercise) MarshalJSON() ([]byte, error) {
	type exerciseJSON Exercise
	ej := exerciseJSON(e)
	if ej.MuscleGroups == nil {
		ej.MuscleGroups = []string{}
	}
	return json.Marshal(ej)
}

type ListParams struct {
	Category    string
	MuscleGroup string
	Difficulty  string
}

type AddRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Category        string   `json:"category"`
	MuscleGroups    []string `json:"muscle_groups"`
	Equipment       *string  `json:"equipment"`
	DifficultyLevel *string  `json:"difficulty_level"`
	Instructions    *string  `json:"instructions"`
}

func (req AddRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return apperr.Validation("name is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return apperr.Validation("category is required")
	}
	muscleGroups, err := pkg.JoinList(req.MuscleGroups)
	if err != nil {
		return apperr.Validation("muscle_groups: %s", err)
	}
	return checkColumnSizes(&req.Name, &req.Category, &muscleGroups, req.Equipment, req.DifficultyLevel)
}

func (req AddRequest) ToExercise() Exercise {
	return Exercise{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Category:        strings.TrimSpace(req.Category),
		MuscleGroups:    req.MuscleGroups,
		Equipment:       req.Equipment,
		DifficultyLevel: req.DifficultyLevel,
		Instructions:    req.Instructions,
	}
}

// UpdateRequest is a partial update: nil fields are left untouched.
type UpdateRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	MuscleGroups    []string `json:"muscle_groups"`
	Equipment       *string  `json:"equipment"`
	DifficultyLevel *string  `json:"difficulty_level"`
	Instructions    *string  `json:"instructions"`
}

func (req UpdateRequest) Validate() error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return apperr.Validation("name must not be empty")
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		return apperr.Validation("category must not be empty")
	}
	muscleGroups, err := pkg.JoinList(req.MuscleGroups)
	if err != nil {
		return apperr.Validation("muscle_groups: %s", err)
	}
	return checkColumnSizes(req.Name, req.Category, &muscleGroups, req.Equipment, req.DifficultyLevel)
}

// column sizes of the exercises table
const (
	maxNameLen         = 100
	maxCategoryLen     = 50
	maxMuscleGroupsLen = 200
	maxEquipmentLen    = 100
	maxDifficultyLen   = 20
)

func checkColumnSizes(name, category, muscleGroups, equipment, difficulty *string) error {
	if err := pkg.CheckAll(
		pkg.CheckMaxLenPtr("name", name, maxNameLen),
		pkg.CheckMaxLenPtr("category", category, maxCategoryLen),
		pkg.CheckMaxLenPtr("muscle_groups", muscleGroups, maxMuscleGroupsLen),
		pkg.CheckMaxLenPtr("equipment", equipment, maxEquipmentLen),
		pkg.CheckMaxLenPtr("difficulty_level", difficulty, maxDifficultyLen),
	); err != nil {
		return apperr.Validation("%s", err)
	}
	return nil
}
