package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/templates"
	"github.com/2beens/fittracker/internal/users"
	"github.com/2beens/fittracker/internal/workouts"

	log "github.com/sirupsen/logrus"
)

type exercisesStore interface {
	List(ctx context.Context, params exercises.ListParams) ([]exercises.Exercise, error)
	Add(ctx context.Context, exercise exercises.Exercise) (*exercises.Exercise, error)
}

type templatesStore interface {
	List(ctx context.Context, params templates.ListParams) ([]templates.Template, error)
	Create(ctx context.Context, req templates.CreateRequest) (*templates.Template, error)
}

type userRegistrar interface {
	Register(ctx context.Context, req users.RegisterRequest) (*users.User, error)
}

type workoutCreator interface {
	Create(ctx context.Context, req workouts.CreateRequest) (*workouts.Workout, error)
}

const (
	DemoUsername = "demo_user"
	DemoPassword = "password123"
)

type Result struct {
	ExercisesCreated int
	TemplatesCreated int
	DemoUser         *users.User
	DemoWorkout      *workouts.Workout
}

// Seeder fills an empty database with the starter catalog.
// Each table group is seeded only when it is empty, so running it twice is a no-op.
type Seeder struct {
	exercises exercisesStore
	templates templatesStore
	users     userRegistrar
	workouts  workoutCreator
}

func NewSeeder(
	exercisesRepo exercisesStore,
	templatesService templatesStore,
	usersService userRegistrar,
	workoutsService workoutCreator,
) *Seeder {
	return &Seeder{
		exercises: exercisesRepo,
		templates: templatesService,
		users:     usersService,
		workouts:  workoutsService,
	}
}

func (s *Seeder) Seed(ctx context.Context, withDemoUser bool) (*Result, error) {
	res := &Result{}

	created, err := s.seedExercises(ctx)
	if err != nil {
		return nil, err
	}
	res.ExercisesCreated = created

	byName, err := s.exerciseIDsByName(ctx)
	if err != nil {
		return nil, err
	}

	created, err = s.seedTemplates(ctx, byName)
	if err != nil {
		return nil, err
	}
	res.TemplatesCreated = created

	if withDemoUser {
		res.DemoUser, res.DemoWorkout, err = s.seedDemoUser(ctx, byName)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (s *Seeder) seedExercises(ctx context.Context) (int, error) {
	existing, err := s.exercises.List(ctx, exercises.ListParams{})
	if err != nil {
		return 0, fmt.Errorf("list exercises: %w", err)
	}
	if len(existing) > 0 {
		log.Infof("exercise catalog already has %d entries, skipping", len(existing))
		return 0, nil
	}

	for _, req := range starterExercises {
		if err := req.Validate(); err != nil {
			return 0, fmt.Errorf("starter exercise %s: %w", req.Name, err)
		}
		if _, err := s.exercises.Add(ctx, req.ToExercise()); err != nil {
			return 0, fmt.Errorf("add exercise %s: %w", req.Name, err)
		}
	}
	log.Infof("created %d exercises", len(starterExercises))
	return len(starterExercises), nil
}

func (s *Seeder) exerciseIDsByName(ctx context.Context) (map[string]int, error) {
	list, err := s.exercises.List(ctx, exercises.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	byName := make(map[string]int, len(list))
	for _, e := range list {
		if _, ok := byName[e.Name]; !ok {
			byName[e.Name] = e.ID
		}
	}
	return byName, nil
}

func (s *Seeder) seedTemplates(ctx context.Context, byName map[string]int) (int, error) {
	existing, err := s.templates.List(ctx, templates.ListParams{})
	if err != nil {
		return 0, fmt.Errorf("list templates: %w", err)
	}
	if len(existing) > 0 {
		log.Infof("%d workout templates already exist, skipping", len(existing))
		return 0, nil
	}

	for _, ts := range starterTemplates {
		if _, err := s.templates.Create(ctx, ts.toCreateRequest(byName)); err != nil {
			return 0, fmt.Errorf("create template %s: %w", ts.Name, err)
		}
	}
	log.Infof("created %d workout templates", len(starterTemplates))
	return len(starterTemplates), nil
}

// toCreateRequest resolves exercise names to catalog ids. Names missing from the catalog are skipped.
func (ts templateSeed) toCreateRequest(byName map[string]int) templates.CreateRequest {
	req := templates.CreateRequest{
		Name:                     ts.Name,
		Description:              strPtr(ts.Description),
		Category:                 ts.Category,
		DifficultyLevel:          ts.DifficultyLevel,
		EstimatedDurationMinutes: intPtr(ts.EstimatedDurationMinutes),
		EstimatedCalories:        intPtr(ts.EstimatedCalories),
		ImageURL:                 strPtr(ts.ImageURL),
		EquipmentNeeded:          ts.EquipmentNeeded,
		TargetMuscleGroups:       ts.TargetMuscleGroups,
	}
	for _, ex := range ts.Exercises {
		id, ok := byName[ex.ExerciseName]
		if !ok {
			log.Warnf("template %s: exercise [%s] not in catalog, skipping", ts.Name, ex.ExerciseName)
			continue
		}
		req.Exercises = append(req.Exercises, templates.CreateExerciseRequest{
			ExerciseID:      intPtr(id),
			OrderInTemplate: intPtr(ex.Order),
			Sets:            ex.Sets,
			Reps:            ex.Reps,
			DurationSeconds: ex.DurationSeconds,
			RestSeconds:     intPtr(ex.RestSeconds),
		})
	}
	return req
}

func (s *Seeder) seedDemoUser(ctx context.Context, byName map[string]int) (*users.User, *workouts.Workout, error) {
	user, err := s.users.Register(ctx, users.RegisterRequest{
		Username:    DemoUsername,
		Email:       "demo@example.com",
		Password:    DemoPassword,
		FirstName:   "Demo",
		LastName:    "User",
		Age:         intPtr(25),
		Weight:      floatPtr(70),
		Height:      floatPtr(175),
		FitnessGoal: strPtr("Build muscle and improve endurance"),
	})
	if errors.Is(err, apperr.ErrConflict) {
		log.Infof("demo user already exists, skipping")
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("register demo user: %w", err)
	}

	req := workouts.CreateRequest{
		UserID:          intPtr(user.ID),
		Name:            "Upper Body Strength",
		Description:     strPtr("Focus on chest, shoulders, and arms"),
		DurationMinutes: intPtr(45),
		CaloriesBurned:  intPtr(250),
		Notes:           strPtr("Great workout! Felt strong today."),
	}
	if id, ok := byName["Push-ups"]; ok {
		req.Exercises = append(req.Exercises, workouts.CreateExerciseRequest{
			ExerciseID: intPtr(id), Sets: intPtr(3), Reps: intPtr(15),
		})
	}
	if id, ok := byName["Plank"]; ok {
		req.Exercises = append(req.Exercises, workouts.CreateExerciseRequest{
			ExerciseID: intPtr(id), Sets: intPtr(3), DurationSeconds: intPtr(60),
		})
	}

	workout, err := s.workouts.Create(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("create demo workout: %w", err)
	}
	log.Infof("created demo user %s with workout %d", user.Username, workout.ID)
	return user, workout, nil
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
