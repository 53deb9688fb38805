package users

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

// ErrInvalidCredentials is returned for an unknown username and a wrong password alike.
var ErrInvalidCredentials = apperr.Unauthorized("invalid credentials")

type usersRepo interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*User, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo           usersRepo
	metricsManager *metrics.Manager
	hashCost       int
	// compared against when the username is unknown, so both login failures cost a bcrypt check
	dummyHash func() string
}

func NewService(repo usersRepo, metricsManager *metrics.Manager, hashCost int) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		hashCost:       hashCost,
		dummyHash: sync.OnceValue(func() string {
			hash, err := pkg.HashPassword("fittracker-dummy-password", hashCost)
			if err != nil {
				log.Errorf("users service, create dummy hash: %s", err)
			}
			return hash
		}),
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	span.SetAttributes(attribute.String("username", username))

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("username already exists")
	}

	exists, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("email already exists")
	}

	hash, err := pkg.HashPassword(req.Password, s.hashCost)
	if err != nil {
		return nil, apperr.Internal(err, "hash password")
	}

	created, err := s.repo.Create(ctx, &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Age:          req.Age,
		Weight:       req.Weight,
		Height:       req.Height,
		FitnessGoal:  req.FitnessGoal,
	})
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterRegistrations.Inc()
	log.Infof("new user registered: %d [%s]", created.ID, created.Username)
	return created, nil
}

// Login checks the credentials by username.
func (s *Service) Login(ctx context.Context, req LoginRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		pkg.CheckPasswordHash(req.Password, s.dummyHash())
		s.metricsManager.CounterFailedLogins.Inc()
		log.Tracef("login failed: unknown user")
		return nil, ErrInvalidCredentials
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.metricsManager.CounterFailedLogins.Inc()
		log.Tracef("login failed: wrong password for user %d", user.ID)
		return nil, ErrInvalidCredentials
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	return user, nil
}

func (s *Service) Get(ctx context.Context, id int) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
