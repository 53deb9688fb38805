package exercises

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context, params ListParams) ([]Exercise, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*Exercise, error)
	Delete(ctx context.Context, id int) error
}

type ExerciseResponse struct {
	Message  string    `json:"message"`
	Exercise *Exercise `json:"exercise"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/api/exercises", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/api/exercises/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/api/exercises/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/api/exercises/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	query := r.URL.Query()
	list, err := h.repo.List(ctx, ListParams{
		Category:    query.Get("category"),
		MuscleGroup: query.Get("muscle_group"),
		Difficulty:  query.Get("difficulty"),
	})
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, list, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("error, %s", err))
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	exercise, err := h.repo.Get(ctx, id)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, exercise, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	var req AddRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("new exercise, decode request: %s", err)
		apperr.WriteHTTP(w, apperr.Validation("%s", err))
		return
	}
	if err := req.Validate(); err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	added, err := h.repo.Add(ctx, req.ToExercise())
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	log.Debugf("new exercise added: %d [%s]", added.ID, added.Name)
	pkg.WriteJSONResponse(w, ExerciseResponse{
		Message:  "Exercise created successfully",
		Exercise: added,
	}, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("error, %s", err))
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req UpdateRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		apperr.WriteHTTP(w, apperr.Validation("%s", err))
		return
	}
	if err := req.Validate(); err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	updated, err := h.repo.Update(ctx, id, req)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, ExerciseResponse{
		Message:  "Exercise updated successfully",
		Exercise: updated,
	}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("error, %s", err))
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.repo.Delete(ctx, id); err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	log.Debugf("exercise %d deleted", id)
	pkg.WriteJSONResponse(w, pkg.MessageResponse{Message: "Exercise deleted successfully"}, http.StatusOK)
}
