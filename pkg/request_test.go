package pkg

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Quick"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	var p payload
	require.NoError(t, DecodeJSONBody(req, &p))
	assert.Equal(t, "Quick", p.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Quick"}`))
	req.Header.Set("Content-Type", "text/plain")
	assert.ErrorIs(t, DecodeJSONBody(req, &p), ErrInvalidContentType)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	assert.ErrorIs(t, DecodeJSONBody(req, &p), ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	assert.Error(t, DecodeJSONBody(req, &p))
}

func TestDecodeJSONBody_TooLarge(t *testing.T) {
	type payload struct {
		Notes string `json:"notes"`
	}

	body := `{"notes":"` + strings.Repeat("a", MaxJSONBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	var p payload
	assert.ErrorIs(t, DecodeJSONBody(req, &p), ErrBodyTooLarge)

	body = `{"notes":"` + strings.Repeat("a", 1024) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	require.NoError(t, DecodeJSONBody(req, &p))
	assert.Len(t, p.Notes, 1024)
}

func TestPathIntVar(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/12", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "12"})
	id, err := PathIntVar(req, "id")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	_, err = PathIntVar(req, "id")
	assert.EqualError(t, err, "id NaN")

	req = mux.SetURLVars(req, map[string]string{})
	_, err = PathIntVar(req, "id")
	assert.EqualError(t, err, "id empty")

	req = mux.SetURLVars(req, map[string]string{"id": "9999999999"})
	_, err = PathIntVar(req, "id")
	assert.EqualError(t, err, "id out of range")

	req = mux.SetURLVars(req, map[string]string{"id": "2147483647"})
	id, err = PathIntVar(req, "id")
	require.NoError(t, err)
	assert.Equal(t, 2147483647, id)
}

func TestQueryIntParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/workouts?user_id=7", nil)
	v, err := QueryIntParam(req, "user_id")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 7, *v)

	req = httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	v, err = QueryIntParam(req, "user_id")
	require.NoError(t, err)
	assert.Nil(t, v)

	req = httptest.NewRequest(http.MethodGet, "/api/workouts?user_id=me", nil)
	_, err = QueryIntParam(req, "user_id")
	assert.Error(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/workouts?user_id=9999999999", nil)
	_, err = QueryIntParam(req, "user_id")
	assert.EqualError(t, err, "query param user_id out of range")
}
