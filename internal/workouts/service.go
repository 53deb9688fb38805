package workouts

import (
	"context"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Create(ctx context.Context, workout *Workout) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	List(ctx context.Context, userID *int) ([]Workout, error)
	Update(ctx context.Context, id int, params UpdateParams) (*Workout, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo workoutsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// WithClock replaces the clock used to default missing workout dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout, err := req.ToWorkout(s.now())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("user_id", workout.UserID))

	created, err := s.repo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterWorkoutsCreated.Inc()
	log.Debugf("workout %d [%s] created for user %d, exercises: %d", created.ID, created.Name, created.UserID, len(created.Exercises))
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Workout, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, userID *int) ([]Workout, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	params, err := req.ToParams()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
