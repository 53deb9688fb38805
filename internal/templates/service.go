package templates

import (
	"context"
	"time"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=templates_mocks_test.go -package=templates_test

type templatesRepo interface {
	List(ctx context.Context, params ListParams) ([]Template, error)
	Get(ctx context.Context, id int) (*Template, error)
	Create(ctx context.Context, t *Template) (*Template, error)
	Delete(ctx context.Context, id int) error
}

// workoutCreator persists an expanded workout with its exercises atomically.
type workoutCreator interface {
	CreateFromTemplate(ctx context.Context, workout *workouts.Workout) (*workouts.Workout, error)
}

type StartRequest struct {
	UserID *int `json:"user_id"`
}

type StartResult struct {
	Workout  *workouts.Workout
	Template *Template
}

type Service struct {
	repo           templatesRepo
	workouts       workoutCreator
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo templatesRepo, workouts workoutCreator, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		workouts:       workouts,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context, params ListParams) ([]Template, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id int) (*Template, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Template, error) {
	t, err := req.ToTemplate()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// StartWorkout instantiates the template as a new workout owned by the requesting user.
func (s *Service) StartWorkout(ctx context.Context, templateID int, req StartRequest) (_ *StartResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))

	template, err := s.repo.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if req.UserID == nil {
		return nil, apperr.Validation("user_id is required")
	}
	if pkg.CheckInt4("user_id", req.UserID) != nil {
		return nil, apperr.NotFound("user %d not found", *req.UserID)
	}
	span.SetAttributes(attribute.Int("user_id", *req.UserID))

	workout, err := s.workouts.CreateFromTemplate(ctx, Expand(template, *req.UserID, s.now()))
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterWorkoutsFromTemplate.WithLabelValues(template.Category).Inc()
	log.Debugf("workout %d started from template %d [%s] for user %d", workout.ID, template.ID, template.Name, workout.UserID)

	return &StartResult{
		Workout:  workout,
		Template: template,
	}, nil
}
