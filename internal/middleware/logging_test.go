package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest_GeneratesRequestID(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	prevLevel := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(prevLevel)

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	LogRequest()(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/workouts", nil))

	require.NotEmpty(t, seenID)
	_, err := uuid.Parse(seenID)
	assert.NoError(t, err)
	assert.Equal(t, seenID, rr.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusCreated, rr.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request served", entry.Message)
	assert.Equal(t, http.StatusCreated, entry.Data["status"])
	assert.Equal(t, "/api/workouts", entry.Data["path"])
	assert.Equal(t, seenID, entry.Data["request_id"])
}

func TestLogRequest_KeepsIncomingRequestID(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/exercises", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	LogRequest()(next).ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, "abc-123", entry.Data["request_id"])
}
