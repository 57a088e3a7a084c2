package services

import (
	"context"

	"github.com/veranomx/eventos/internal/connect"
	"github.com/veranomx/eventos/internal/models"
)

// ValidationError carries the field → message map produced by the form
// schema; it blocks submission before anything reaches the network.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid event data provided"
}

// EventsService drives the create/edit/delete flows: validate locally,
// submit through the API client, then reload the working set so the list
// always reflects the server (invalidate-and-reload, no local patching).
type EventsService struct {
	api  *connect.EventsAPI
	list *EventList
}

func NewEventsService(api *connect.EventsAPI, list *EventList) *EventsService {
	return &EventsService{
		api:  api,
		list: list,
	}
}

func (s *EventsService) List() *EventList {
	return s.list
}

func (s *EventsService) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	return s.api.Get(ctx, id)
}

func (s *EventsService) CreateEvent(ctx context.Context, form *models.EventFormData) (*models.Event, error) {
	if fields := models.ValidateEventForm(form); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	created, err := s.api.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	if err := s.list.Load(ctx, true); err != nil {
		// The record exists remotely; surface the stale list on the next
		// successful reload rather than failing the create.
		return created, nil
	}
	return created, nil
}

func (s *EventsService) UpdateEvent(ctx context.Context, id int, form *models.EventFormData) error {
	if fields := models.ValidateEventForm(form); fields != nil {
		return &ValidationError{Fields: fields}
	}

	if err := s.api.Update(ctx, id, form.Fields()); err != nil {
		return err
	}

	if err := s.list.Load(ctx, true); err != nil {
		return nil
	}
	return nil
}

func (s *EventsService) DeleteEvent(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.list.Load(ctx, true); err != nil {
		return nil
	}
	return nil
}
