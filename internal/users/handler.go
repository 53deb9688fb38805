package users

import (
	"net/http"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/middleware"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type UserResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	clientIP *middleware.ClientIPResolver,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	authRouter := mainRouter.PathPrefix("/api/auth").Subrouter()

	// credentials endpoints are rate limited per client IP
	rateLimit := middleware.RateLimit(rateLimiter, clientIP, "auth", allowedPerMin, metricsManager)
	authRouter.Handle("/register", rateLimit(http.HandlerFunc(h.HandleRegister))).Methods("POST", "OPTIONS").Name("register")
	authRouter.Handle("/login", rateLimit(http.HandlerFunc(h.HandleLogin))).Methods("POST", "OPTIONS").Name("login")

	authRouter.HandleFunc("/users/{id}", h.HandleGetUser).Methods("GET", "OPTIONS").Name("get-user")
	authRouter.HandleFunc("/users/{id}", h.HandleUpdateUser).Methods("PUT", "OPTIONS").Name("update-user")
	authRouter.HandleFunc("/users/{id}", h.HandleDeleteUser).Methods("DELETE", "OPTIONS").Name("delete-user")
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req RegisterRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		apperr.WriteHTTP(w, apperr.Validation("%s", err))
		return
	}

	user, err := h.service.Register(ctx, req)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, UserResponse{
		Message: "User created successfully",
		User:    user,
	}, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		apperr.WriteHTTP(w, apperr.Validation("%s", err))
		return
	}

	user, err := h.service.Login(ctx, req)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	log.Debugf("user %d logged in", user.ID)
	pkg.WriteJSONResponse(w, UserResponse{
		Message: "Login successful",
		User:    user,
	}, http.StatusOK)
}

func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("error, %s", err))
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	user, err := h.service.Get(ctx, id)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, user, http.StatusOK)
}

func (h *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update")
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

	user, err := h.service.Update(ctx, id, req)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSONResponse(w, UserResponse{
		Message: "User updated successfully",
		User:    user,
	}, http.StatusOK)
}

func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.delete")
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

	log.Infof("user %d deleted", id)
	pkg.WriteJSONResponse(w, pkg.MessageResponse{Message: "User deleted successfully"}, http.StatusOK)
}
