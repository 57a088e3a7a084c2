package connect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/veranomx/eventos/internal/models"
)

// ErrNotFound is returned when the remote service has no record for the
// requested id.
var ErrNotFound = errors.New("event not found")

// APIError is a normalized non-2xx response from the remote service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// EventsAPI talks to the remote events REST service. All filtering and
// paging happen on our side; the remote endpoints are plain CRUD.
type EventsAPI struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewEventsAPI(baseURL, token string) (*EventsAPI, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("events api base URL is required")
	}
	if token == "" {
		return nil, fmt.Errorf("events api token is required")
	}
	return &EventsAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

type eventEnvelope struct {
	Success bool          `json:"success"`
	Data    *models.Event `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type statusEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// List fetches every event; the remote service does not paginate.
func (a *EventsAPI) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := a.do(ctx, http.MethodGet, nil, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Get fetches a single event by id. Returns ErrNotFound when the remote
// service reports no such record.
func (a *EventsAPI) Get(ctx context.Context, id int) (*models.Event, error) {
	var resp eventEnvelope
	err := a.do(ctx, http.MethodGet, idQuery(id), nil, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, ErrNotFound
	}
	return resp.Data, nil
}

// Create submits a new event; the body is exactly the form payload and the
// server-materialized record comes back with ids and timestamps filled in.
func (a *EventsAPI) Create(ctx context.Context, form *models.EventFormData) (*models.Event, error) {
	var resp eventEnvelope
	if err := a.do(ctx, http.MethodPost, nil, form, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Status: http.StatusOK, Message: envelopeMessage(resp.Message, resp.Error, "create rejected by events service")}
	}
	return resp.Data, nil
}

// Update sends a partial field set for an existing event.
func (a *EventsAPI) Update(ctx context.Context, id int, fields map[string]any) error {
	var resp statusEnvelope
	if err := a.do(ctx, http.MethodPut, idQuery(id), fields, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Status: http.StatusOK, Message: envelopeMessage(resp.Message, resp.Error, "update rejected by events service")}
	}
	return nil
}

// Delete removes an event. Deleting an already-deleted id is the remote
// service's call; we surface whatever it decides.
func (a *EventsAPI) Delete(ctx context.Context, id int) error {
	var resp statusEnvelope
	if err := a.do(ctx, http.MethodDelete, idQuery(id), nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Status: http.StatusOK, Message: envelopeMessage(resp.Message, resp.Error, "delete rejected by events service")}
	}
	return nil
}

func idQuery(id int) url.Values {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return q
}

func envelopeMessage(message, errMsg, fallback string) string {
	if message != "" {
		return message
	}
	if errMsg != "" {
		return errMsg
	}
	return fallback
}

func (a *EventsAPI) do(ctx context.Context, method string, query url.Values, body any, out any) error {
	endpoint := a.baseURL + "/events"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("events service unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, raw),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// errorMessage extracts a human-readable message from a JSON error body,
// falling back to the HTTP status text.
func errorMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("error %d: %s", status, http.StatusText(status))
}
