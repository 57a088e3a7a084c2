package container

import (
	"log/slog"

	"github.com/veranomx/eventos/internal/connect"
	"github.com/veranomx/eventos/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger       *slog.Logger
	EventsAPI    *connect.EventsAPI
	EventList    *services.EventList
	EventService *services.EventsService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, api *connect.EventsAPI) *Container {
	eventList := services.NewEventList(api)
	eventService := services.NewEventsService(api, eventList)

	return &Container{
		Logger:       logger,
		EventsAPI:    api,
		EventList:    eventList,
		EventService: eventService,
	}
}
