package shared_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhq/roster-api/internal/api/shared"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/teams", nil)

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]string{"name": "Backend"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Backend"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("uses the published Message key", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/teams/99", nil)

		shared.RespondWithError(w, r, http.StatusNotFound, "Team not found")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Team not found", body["Message"])
		assert.NotContains(t, body, "trace_id")
	})

	t.Run("includes trace id from the context", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/teams/99", nil)
		r = r.WithContext(shared.SetTraceID(r.Context()))

		shared.RespondWithError(w, r, http.StatusNotFound, "Team not found")

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.TraceID, 2*shared.TraceIDLength)
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/teams", nil)

	dbErr := errors.New("pq: connection to postgres://user:hunter2@db failed")
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal server error", dbErr)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The raw error must never reach the client.
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "postgres://")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["Message"])
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("missing trace id yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, shared.GetTraceID(context.Background()))
	})

	t.Run("set then get round trips", func(t *testing.T) {
		t.Parallel()

		ctx := shared.SetTraceID(context.Background())
		traceID := shared.GetTraceID(ctx)
		assert.Len(t, traceID, 2*shared.TraceIDLength)
	})

	t.Run("trace ids are unique", func(t *testing.T) {
		t.Parallel()

		first := shared.GetTraceID(shared.SetTraceID(context.Background()))
		second := shared.GetTraceID(shared.SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}
