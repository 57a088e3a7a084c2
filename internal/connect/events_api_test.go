package connect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veranomx/eventos/internal/models"
)

func TestNewEventsAPI_RequiresConfiguration(t *testing.T) {
	t.Parallel()

	_, err := NewEventsAPI("", "token")
	assert.Error(t, err)

	_, err = NewEventsAPI("https://api.example.com", "")
	assert.Error(t, err)

	api, err := NewEventsAPI("https://api.example.com/", "token")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", api.baseURL)
}

func TestEventsAPI_AttachesAuthHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotContentType, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]models.Event{})
	}))
	defer srv.Close()

	api, err := NewEventsAPI(srv.URL, "secreto-123")
	require.NoError(t, err)

	_, err = api.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secreto-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "/events", gotPath)
}

func TestEventsAPI_List(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Event{
			{ID: 1, Name: "Boda García", EventType: models.TypeWedding, Status: models.StatusActive},
			{ID: 2, Name: "XV de Sofía", EventType: models.TypeQuinceanera, Status: models.StatusDraft},
		})
	}))
	defer srv.Close()

	api, err := NewEventsAPI(srv.URL, "token")
	require.NoError(t, err)

	events, err := api.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Boda García", events[0].Name)
	assert.Equal(t, models.TypeQuinceanera, events[1].EventType)
}

func TestEventsAPI_GetNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "no existe"})
	}))
	defer srv.Close()

	api, err := NewEventsAPI(srv.URL, "token")
	require.NoError(t, err)

	_, err = api.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventsAPI_Get(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		_ = json.NewEncoder(w).Encode(eventEnvelope{
			Success: true,
			Data:    &models.Event{ID: 7, Name: "Cena corporativa"},
		})
	}))
	defer srv.Close()

	api, err := NewEventsAPI(srv.URL, "token")
	require.NoError(t, err)

	event, err := api.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, event.ID)
	assert.Equal(t, "Cena corporativa", event.Name)
}

func TestEventsAPI_ErrorBodyNormalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusInternalServerError, `{"message":"fallo interno"}`, "fallo interno"},
		{"error field", http.StatusBadRequest, `{"error":"datos inválidos"}`, "datos inválidos"},
		{"no body", http.StatusServiceUnavailable, ``, "error 503: Service Unavailable"},
		{"non-json body", http.StatusBadGateway, `<html>boom</html>`, "error 502: Bad Gateway"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			api, err := NewEventsAPI(srv.URL, "token")
			require.NoError(t, err)

			_, err = api.List(context.Background())
			require.Error(t, err)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMsg, apiErr.Message)
		})
	}
}

func TestEventsAPI_CreateSendsExactPayload(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(eventEnvelope{
			Success: true,
			Data:    &models.Event{ID: 99, UUID: "abc-123", Name: "Boda García"},
		})
	}))
	defer srv.Close()

	api, err := NewEventsAPI(srv.URL, "token")
	require.NoError(t, err)

	form := &models.EventFormData{
		Name:               "Boda García",
		EventType:          models.TypeWedding,
		PrimaryParticipant: "María",
		Date:               "2026-06-20",
		TotalCapacity:      150,
		Status:             models.StatusDraft,
	}
	created, err := api.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, 99, created.ID)

	// The payload is exactly the form: no server-assigned fields sneak in.
	for _, forbidden := range []string{"evento_id", "uuid", "created_at", "updated_at"} {
		assert.NotContains(t, gotBody, forbidden)
	}
	assert.Equal(t, "Boda García", gotBody["nombre"])
	assert.Equal(t, "boda", gotBody["tipo_evento"])
	assert.Equal(t, float64(150), gotBody["capacidad_total"])
}

func TestEventsAPI_UpdateSendsPartialFields(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "12", r.URL.Query().Get("id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(statusEnvelope{Success: true})
	}))
	defer srv.Close()

	api, err := NewEventsAPI(srv.URL, "token")
	require.NoError(t, err)

	err = api.Update(context.Background(), 12, map[string]any{"estado": "activo"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"estado": "activo"}, gotBody)
}

func TestEventsAPI_UpdateRejectedEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(statusEnvelope{Success: false, Error: "registro bloqueado"})
	}))
	defer srv.Close()

	api, err := NewEventsAPI(srv.URL, "token")
	require.NoError(t, err)

	err = api.Update(context.Background(), 12, map[string]any{"estado": "activo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registro bloqueado")
}

func TestEventsAPI_Delete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "3", r.URL.Query().Get("id"))
		_ = json.NewEncoder(w).Encode(statusEnvelope{Success: true})
	}))
	defer srv.Close()

	api, err := NewEventsAPI(srv.URL, "token")
	require.NoError(t, err)

	assert.NoError(t, api.Delete(context.Background(), 3))
}
