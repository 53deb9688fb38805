package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName   = "fitness-tracker-api"
	pingTimeout   = 2 * time.Second
	statusOK      = "ok"
	statusHealthy = "healthy"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

type Handler struct {
	db          dbPinger
	redis       redisPinger
	versionInfo string
}

func NewHandler(db dbPinger, rdb redisPinger, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		redis:       rdb,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/api/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, RootResponse{
		Message: "Fitness Tracker API is running!",
		Version: handler.versionInfo,
		Status:  statusHealthy,
	}, http.StatusOK)
}

// handleHealth reports unhealthy (503) when postgres or redis cannot be reached.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   statusHealthy,
		Service:  serviceName,
		Database: statusOK,
		Redis:    statusOK,
	}
	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("health check, ping db: %s", err)
		resp.Database = "unreachable"
		resp.Status = "unhealthy"
	}
	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Errorf("health check, ping redis: %s", err)
		resp.Redis = "unreachable"
		resp.Status = "unhealthy"
	}
	span.SetAttributes(attribute.String("status", resp.Status))

	status := http.StatusOK
	if resp.Status != statusHealthy {
		status = http.StatusServiceUnavailable
	}
	pkg.WriteJSONResponse(w, resp, status)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
