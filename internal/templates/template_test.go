package templates

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/2beens/fittracker/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func quickTemplate() *Template {
	return &Template{
		ID:                       3,
		Name:                     "Quick",
		Description:              strPtr("short full body session"),
		Category:                 "strength",
		DifficultyLevel:          "beginner",
		EstimatedDurationMinutes: 20,
		EstimatedCalories:        intPtr(150),
		Exercises: []TemplateExercise{
			{ID: 21, TemplateID: 3, ExerciseID: 8, OrderInTemplate: 3, DurationSeconds: intPtr(60), RestSeconds: 30},
			{ID: 20, TemplateID: 3, ExerciseID: 1, OrderInTemplate: 1, Sets: intPtr(3), Reps: intPtr(10), RestSeconds: 45, Notes: strPtr("slow tempo")},
			{ID: 22, TemplateID: 3, ExerciseID: 5, OrderInTemplate: 2, Sets: intPtr(3), Reps: intPtr(12), RestSeconds: 60},
		},
	}
}

func TestTemplate_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Template{
		ID:                       1,
		Name:                     "Beginner Full Body",
		Category:                 "strength",
		DifficultyLevel:          "beginner",
		EstimatedDurationMinutes: 30,
		TargetMuscleGroups:       []string{"chest", "legs"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Beginner Full Body",
		"description": null,
		"category": "strength",
		"difficulty_level": "beginner",
		"estimated_duration_minutes": 30,
		"estimated_calories": null,
		"image_url": null,
		"equipment_needed": [],
		"target_muscle_groups": ["chest", "legs"],
		"created_at": null,
		"exercises": []
	}`, string(raw))
}

func TestTemplateExercise_MarshalJSON_MissingExercise(t *testing.T) {
	raw, err := json.Marshal(TemplateExercise{ID: 1, TemplateID: 2, ExerciseID: 3, OrderInTemplate: 1, RestSeconds: 60})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Contains(t, m, "exercise_name")
	assert.Nil(t, m["exercise_name"])
	assert.Nil(t, m["exercise_description"])
	assert.Nil(t, m["exercise_instructions"])
	assert.Equal(t, float64(60), m["rest_seconds"])
}

func TestCreateRequest_ToTemplate(t *testing.T) {
	req := CreateRequest{
		Name:                     " Quick ",
		Category:                 "strength",
		DifficultyLevel:          "beginner",
		EstimatedDurationMinutes: intPtr(20),
		EquipmentNeeded:          []string{"mat"},
		Exercises: []CreateExerciseRequest{
			{ExerciseID: intPtr(1), Sets: intPtr(3), Reps: intPtr(10), RestSeconds: intPtr(45)},
			{ExerciseID: intPtr(2), DurationSeconds: intPtr(30)},
			{ExerciseID: intPtr(3), OrderInTemplate: intPtr(7), RestSeconds: intPtr(0)},
		},
	}

	tmpl, err := req.ToTemplate()
	require.NoError(t, err)
	assert.Equal(t, "Quick", tmpl.Name)
	assert.Equal(t, 20, tmpl.EstimatedDurationMinutes)
	require.Len(t, tmpl.Exercises, 3)
	assert.Equal(t, 1, tmpl.Exercises[0].OrderInTemplate)
	assert.Equal(t, 45, tmpl.Exercises[0].RestSeconds)
	assert.Equal(t, 2, tmpl.Exercises[1].OrderInTemplate)
	assert.Equal(t, DefaultRestSeconds, tmpl.Exercises[1].RestSeconds)
	assert.Equal(t, 7, tmpl.Exercises[2].OrderInTemplate)
	assert.Equal(t, 0, tmpl.Exercises[2].RestSeconds)
}

func TestCreateRequest_ToTemplate_Invalid(t *testing.T) {
	valid := func() CreateRequest {
		return CreateRequest{
			Name:                     "Quick",
			Category:                 "strength",
			DifficultyLevel:          "beginner",
			EstimatedDurationMinutes: intPtr(20),
		}
	}

	testCases := map[string]func(r *CreateRequest){
		"missing name":       func(r *CreateRequest) { r.Name = "" },
		"missing category":   func(r *CreateRequest) { r.Category = " " },
		"missing difficulty": func(r *CreateRequest) { r.DifficultyLevel = "" },
		"missing duration":   func(r *CreateRequest) { r.EstimatedDurationMinutes = nil },
		"zero duration":      func(r *CreateRequest) { r.EstimatedDurationMinutes = intPtr(0) },
		"missing exercise id": func(r *CreateRequest) {
			r.Exercises = []CreateExerciseRequest{{Sets: intPtr(3)}}
		},
		"non positive order": func(r *CreateRequest) {
			r.Exercises = []CreateExerciseRequest{{ExerciseID: intPtr(1), OrderInTemplate: intPtr(0)}}
		},
		"negative rest": func(r *CreateRequest) {
			r.Exercises = []CreateExerciseRequest{{ExerciseID: intPtr(1), RestSeconds: intPtr(-5)}}
		},
		"name too long":       func(r *CreateRequest) { r.Name = strings.Repeat("n", 101) },
		"difficulty too long": func(r *CreateRequest) { r.DifficultyLevel = strings.Repeat("d", 21) },
		"image url too long":  func(r *CreateRequest) { r.ImageURL = strPtr("https://" + strings.Repeat("i", 500)) },
		"calories out of range": func(r *CreateRequest) {
			r.EstimatedCalories = intPtr(1 << 40)
		},
		"exercise id out of range": func(r *CreateRequest) {
			r.Exercises = []CreateExerciseRequest{{ExerciseID: intPtr(9999999999)}}
		},
		"sets out of range": func(r *CreateRequest) {
			r.Exercises = []CreateExerciseRequest{{ExerciseID: intPtr(1), Sets: intPtr(1 << 33)}}
		},
		"notes too long": func(r *CreateRequest) {
			r.Exercises = []CreateExerciseRequest{{ExerciseID: intPtr(1), Notes: strPtr(strings.Repeat("x", 201))}}
		},
	}

	for name, mutate := range testCases {
		t.Run(name, func(t *testing.T) {
			req := valid()
			mutate(&req)
			tmpl, err := req.ToTemplate()
			assert.Nil(t, tmpl)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestExpand(t *testing.T) {
	tmpl := quickTemplate()
	now := time.Date(2024, 2, 29, 23, 59, 0, 0, time.FixedZone("CET", 3600))

	w := Expand(tmpl, 42, now)

	assert.Equal(t, 0, w.ID)
	assert.Equal(t, 42, w.UserID)
	assert.Equal(t, "Quick", w.Name)
	require.NotNil(t, w.Description)
	assert.Equal(t, "short full body session", *w.Description)
	assert.Equal(t, "2024-02-29", w.Date.String())
	assert.Nil(t, w.DurationMinutes)
	assert.Nil(t, w.CaloriesBurned)
	assert.Nil(t, w.Notes)

	require.Len(t, w.Exercises, len(tmpl.Exercises))
	expectedOrder := []int{1, 5, 8}
	for i, we := range w.Exercises {
		assert.Equal(t, expectedOrder[i], we.ExerciseID)
		assert.Equal(t, i+1, we.OrderInWorkout)
		assert.Nil(t, we.Notes)
		assert.Nil(t, we.Weight)
		assert.Nil(t, we.Distance)
	}
	assert.Equal(t, 3, *w.Exercises[0].Sets)
	assert.Equal(t, 10, *w.Exercises[0].Reps)
	assert.Nil(t, w.Exercises[0].DurationSeconds)
	assert.Equal(t, 60, *w.Exercises[2].DurationSeconds)
	assert.Nil(t, w.Exercises[2].Sets)
}

func TestExpand_IsACopy(t *testing.T) {
	tmpl := quickTemplate()
	w := Expand(tmpl, 1, time.Now())

	*w.Description = "edited"
	*w.Exercises[0].Sets = 99
	w.Exercises[0].OrderInWorkout = 50

	assert.Equal(t, "short full body session", *tmpl.Description)
	assert.Equal(t, 3, *tmpl.Exercises[1].Sets)
	// the template's own exercise order is left as it was
	assert.Equal(t, 21, tmpl.Exercises[0].ID)
}

func TestExpand_EmptyTemplate(t *testing.T) {
	w := Expand(&Template{Name: "Nothing"}, 1, time.Now())
	assert.NotNil(t, w.Exercises)
	assert.Empty(t, w.Exercises)
	assert.Nil(t, w.Description)
}

func TestExpand_NoRestInSerializedWorkout(t *testing.T) {
	w := Expand(quickTemplate(), 1, time.Now())
	raw, err := json.Marshal(w)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "rest_seconds")
}
