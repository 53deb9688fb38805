package templates

import (
	"errors"
	"net/http"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type TemplateResponse struct {
	Message  string    `json:"message"`
	Template *Template `json:"template"`
}

type StartWorkoutResponse struct {
	Message  string            `json:"message"`
	Workout  *workouts.Workout `json:"workout"`
	Template *Template         `json:"template"`
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
	r.HandleFunc("/api/templates", h.HandleList).Methods("GET", "OPTIONS").Name("list-templates")
	r.HandleFunc("/api/templates", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-template")
	r.HandleFunc("/api/templates/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-template")
	r.HandleFunc("/api/templates/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-template")
	r.HandleFunc("/api/templates/{id}/start", h.HandleStart).Methods("POST", "OPTIONS").Name("start-template")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	query := r.URL.Query()
	list, err := h.service.List(ctx, ListParams{
		Category:   query.Get("category"),
		Difficulty: query.Get("difficulty"),
	})
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, list, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("error, %s", err))
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	t, err := h.service.Get(ctx, id)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, t, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.create")
	defer span.End()

	var req CreateRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("new template, decode request: %s", err)
		apperr.WriteHTTP(w, apperr.Validation("%s", err))
		return
	}

	created, err := h.service.Create(ctx, req)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	log.Debugf("new template added: %d [%s]", created.ID, created.Name)
	pkg.WriteJSONResponse(w, TemplateResponse{
		Message:  "Template created successfully",
		Template: created,
	}, http.StatusCreated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.delete")
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

	pkg.WriteJSONResponse(w, pkg.MessageResponse{Message: "Template deleted successfully"}, http.StatusOK)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.start")
	defer span.End()

	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("error, %s", err))
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	// a request without a body still reaches the service, so an unknown template is reported first
	var req StartRequest
	if r.ContentLength != 0 {
		if err := pkg.DecodeJSONBody(r, &req); err != nil && !errors.Is(err, pkg.ErrEmptyBody) {
			apperr.WriteHTTP(w, apperr.Validation("%s", err))
			return
		}
	}

	result, err := h.service.StartWorkout(ctx, id, req)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, StartWorkoutResponse{
		Message:  "Workout started successfully",
		Workout:  result.Workout,
		Template: result.Template,
	}, http.StatusCreated)
}
