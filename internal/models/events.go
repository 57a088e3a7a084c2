package models

type EventType string

const (
	TypeWedding     EventType = "boda"
	TypeQuinceanera EventType = "xv"
	TypeBirthday    EventType = "cumpleaños"
	TypeCorporate   EventType = "corporativo"
	TypeOther       EventType = "otro"
)

func (t EventType) Valid() bool {
	switch t {
	case TypeWedding, TypeQuinceanera, TypeBirthday, TypeCorporate, TypeOther:
		return true
	}
	return false
}

type EventStatus string

const (
	StatusDraft    EventStatus = "borrador"
	StatusActive   EventStatus = "activo"
	StatusFinished EventStatus = "finalizado"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusFinished:
		return true
	}
	return false
}

// FilterAll is the wildcard value for the list type/status filters.
const FilterAll = "todos"

// Event is the wire shape of the remote events service. evento_id, uuid and
// the timestamps are server-assigned and never written by this service.
type Event struct {
	ID                   int         `json:"evento_id"`
	UUID                 string      `json:"uuid"`
	Name                 string      `json:"nombre"`
	EventType            EventType   `json:"tipo_evento"`
	PrimaryParticipant   string      `json:"nombre_involucrado_1"`
	SecondaryParticipant string      `json:"nombre_involucrado_2,omitempty"`
	Date                 string      `json:"fecha"`
	Time                 string      `json:"hora,omitempty"`
	Venue                string      `json:"lugar,omitempty"`
	CeremonyVenue        string      `json:"lugar_ceremonia,omitempty"`
	CeremonyTime         string      `json:"hora_ceremonia,omitempty"`
	Description          string      `json:"descripcion,omitempty"`
	TotalCapacity        int         `json:"capacidad_total"`
	Status               EventStatus `json:"estado"`
	CreatedAt            string      `json:"created_at"`
	UpdatedAt            string      `json:"updated_at"`
}

// EventFormData is Event minus the server-assigned fields; it is the only
// shape the create and edit flows ever submit.
type EventFormData struct {
	Name                 string      `json:"nombre" validate:"required,min=3,max=100"`
	EventType            EventType   `json:"tipo_evento" validate:"required,eventtype"`
	PrimaryParticipant   string      `json:"nombre_involucrado_1" validate:"required"`
	SecondaryParticipant string      `json:"nombre_involucrado_2,omitempty" validate:"omitempty"`
	Date                 string      `json:"fecha" validate:"required,datetime=2006-01-02"`
	Time                 string      `json:"hora,omitempty" validate:"omitempty,time24"`
	Venue                string      `json:"lugar,omitempty" validate:"omitempty,max=200"`
	CeremonyVenue        string      `json:"lugar_ceremonia,omitempty" validate:"omitempty"`
	CeremonyTime         string      `json:"hora_ceremonia,omitempty" validate:"omitempty"`
	Description          string      `json:"descripcion,omitempty" validate:"omitempty,max=1000"`
	TotalCapacity        int         `json:"capacidad_total" validate:"required,min=1,max=10000"`
	Status               EventStatus `json:"estado" validate:"required,eventstatus"`
}

// Fields flattens the form into the partial-update payload the remote
// service expects on PUT.
func (f EventFormData) Fields() map[string]any {
	fields := map[string]any{
		"nombre":               f.Name,
		"tipo_evento":          f.EventType,
		"nombre_involucrado_1": f.PrimaryParticipant,
		"fecha":                f.Date,
		"capacidad_total":      f.TotalCapacity,
		"estado":               f.Status,
	}
	if f.SecondaryParticipant != "" {
		fields["nombre_involucrado_2"] = f.SecondaryParticipant
	}
	if f.Time != "" {
		fields["hora"] = f.Time
	}
	if f.Venue != "" {
		fields["lugar"] = f.Venue
	}
	if f.CeremonyVenue != "" {
		fields["lugar_ceremonia"] = f.CeremonyVenue
	}
	if f.CeremonyTime != "" {
		fields["hora_ceremonia"] = f.CeremonyTime
	}
	if f.Description != "" {
		fields["descripcion"] = f.Description
	}
	return fields
}
