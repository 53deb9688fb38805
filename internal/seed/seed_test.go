package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/templates"
	"github.com/2beens/fittracker/internal/users"
	"github.com/2beens/fittracker/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memExercises struct {
	list   []exercises.Exercise
	addErr error
}

func (m *memExercises) List(_ context.Context, _ exercises.ListParams) ([]exercises.Exercise, error) {
	return m.list, nil
}

func (m *memExercises) Add(_ context.Context, e exercises.Exercise) (*exercises.Exercise, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	e.ID = len(m.list) + 1
	m.list = append(m.list, e)
	return &e, nil
}

type memTemplates struct {
	created []templates.CreateRequest
}

func (m *memTemplates) List(_ context.Context, _ templates.ListParams) ([]templates.Template, error) {
	list := make([]templates.Template, len(m.created))
	for i, req := range m.created {
		list[i] = templates.Template{ID: i + 1, Name: req.Name}
	}
	return list, nil
}

func (m *memTemplates) Create(_ context.Context, req templates.CreateRequest) (*templates.Template, error) {
	t, err := req.ToTemplate()
	if err != nil {
		return nil, err
	}
	m.created = append(m.created, req)
	t.ID = len(m.created)
	return t, nil
}

type memUsers struct {
	registered map[string]bool
}

func (m *memUsers) Register(_ context.Context, req users.RegisterRequest) (*users.User, error) {
	if m.registered[req.Username] {
		return nil, apperr.Conflict("username already exists")
	}
	m.registered[req.Username] = true
	return &users.User{ID: 7, Username: req.Username}, nil
}

type memWorkouts struct {
	created []workouts.CreateRequest
}

func (m *memWorkouts) Create(_ context.Context, req workouts.CreateRequest) (*workouts.Workout, error) {
	m.created = append(m.created, req)
	return &workouts.Workout{ID: len(m.created), UserID: *req.UserID, Name: req.Name}, nil
}

type memStores struct {
	exercises *memExercises
	templates *memTemplates
	users     *memUsers
	workouts  *memWorkouts
}

func newTestSeeder() (*Seeder, memStores) {
	stores := memStores{
		exercises: &memExercises{},
		templates: &memTemplates{},
		users:     &memUsers{registered: map[string]bool{}},
		workouts:  &memWorkouts{},
	}
	return NewSeeder(stores.exercises, stores.templates, stores.users, stores.workouts), stores
}

func TestSeeder_Seed_EmptyDatabase(t *testing.T) {
	seeder, stores := newTestSeeder()

	res, err := seeder.Seed(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, len(starterExercises), res.ExercisesCreated)
	assert.Equal(t, len(starterTemplates), res.TemplatesCreated)
	assert.Len(t, stores.exercises.list, len(starterExercises))
	require.Len(t, stores.templates.created, len(starterTemplates))

	require.NotNil(t, res.DemoUser)
	assert.Equal(t, DemoUsername, res.DemoUser.Username)
	require.NotNil(t, res.DemoWorkout)
	require.Len(t, stores.workouts.created, 1)
	demo := stores.workouts.created[0]
	assert.Equal(t, 7, *demo.UserID)
	require.Len(t, demo.Exercises, 2)
	assert.Equal(t, 1, *demo.Exercises[0].ExerciseID) // Push-ups
	assert.Equal(t, 3, *demo.Exercises[1].ExerciseID) // Plank
}

func TestSeeder_Seed_TemplateExercisesResolvedByName(t *testing.T) {
	seeder, stores := newTestSeeder()

	_, err := seeder.Seed(context.Background(), false)
	require.NoError(t, err)

	morning := stores.templates.created[0]
	assert.Equal(t, "Morning Energizer", morning.Name)
	require.Len(t, morning.Exercises, 5)
	assert.Equal(t, 8, *morning.Exercises[0].ExerciseID) // Jumping Jacks
	assert.Equal(t, 1, *morning.Exercises[0].OrderInTemplate)
	assert.Equal(t, 60, *morning.Exercises[0].DurationSeconds)
	assert.Nil(t, morning.Exercises[0].Sets)
	assert.Equal(t, 1, *morning.Exercises[1].ExerciseID) // Push-ups
	assert.Equal(t, 10, *morning.Exercises[1].Reps)

	// exercises not in the catalog are left out
	hiit := stores.templates.created[2]
	assert.Equal(t, "HIIT Fat Burner", hiit.Name)
	assert.Len(t, hiit.Exercises, 3)
	for _, ex := range hiit.Exercises {
		assert.NotZero(t, *ex.ExerciseID)
	}
}

func TestSeeder_Seed_Idempotent(t *testing.T) {
	seeder, stores := newTestSeeder()

	_, err := seeder.Seed(context.Background(), true)
	require.NoError(t, err)

	res, err := seeder.Seed(context.Background(), true)
	require.NoError(t, err)
	assert.Zero(t, res.ExercisesCreated)
	assert.Zero(t, res.TemplatesCreated)
	assert.Nil(t, res.DemoUser)
	assert.Len(t, stores.exercises.list, len(starterExercises))
	assert.Len(t, stores.templates.created, len(starterTemplates))
	assert.Len(t, stores.workouts.created, 1)
}

func TestSeeder_Seed_AddError(t *testing.T) {
	seeder, stores := newTestSeeder()
	stores.exercises.addErr = errors.New("connection refused")

	_, err := seeder.Seed(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add exercise Push-ups")
	assert.Empty(t, stores.templates.created)
}

func TestStarterCatalog_Valid(t *testing.T) {
	names := map[string]bool{}
	for _, req := range starterExercises {
		require.NoError(t, req.Validate(), req.Name)
		assert.False(t, names[req.Name], "duplicate exercise %s", req.Name)
		names[req.Name] = true
	}
	for _, ts := range starterTemplates {
		_, err := ts.toCreateRequest(map[string]int{}).ToTemplate()
		require.NoError(t, err, ts.Name)
	}
}
