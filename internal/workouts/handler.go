package workouts

import (
	"net/http"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type WorkoutResponse struct {
	Message string   `json:"message"`
	Workout *Workout `json:"workout"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/api/workouts", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/api/workouts/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/api/workouts/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/api/workouts/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, err := pkg.QueryIntParam(r, "user_id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("user_id: %s", err))
		return
	}

	list, err := h.service.List(ctx, userID)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	span.SetAttributes(attribute.Int("count", len(list)))
	pkg.WriteJSONResponse(w, list, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("error, %s", err))
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	workout, err := h.service.Get(ctx, id)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, workout, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var req CreateRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("new workout, decode request: %s", err)
		apperr.WriteHTTP(w, apperr.Validation("%s", err))
		return
	}

	created, err := h.service.Create(ctx, req)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, WorkoutResponse{
		Message: "Workout created successfully",
		Workout: created,
	}, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
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

	updated, err := h.service.Update(ctx, id, req)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, WorkoutResponse{
		Message: "Workout updated successfully",
		Workout: updated,
	}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("error, %s", err))
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.service.Delete(ctx, id); err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	log.Debugf("workout %d deleted", id)
	pkg.WriteJSONResponse(w, pkg.MessageResponse{Message: "Workout deleted successfully"}, http.StatusOK)
}
