package models

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by create and edit alike.
var Validate = newValidator()

var time24Pattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their wire names so the front-end can map errors
	// straight onto form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("time24", func(fl validator.FieldLevel) bool {
		return time24Pattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		return EventType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("eventstatus", func(fl validator.FieldLevel) bool {
		return EventStatus(fl.Field().String()).Valid()
	})

	return v
}

var fieldMessages = map[string]map[string]string{
	"nombre": {
		"required": "El nombre es requerido",
		"min":      "El nombre debe tener al menos 3 caracteres",
		"max":      "El nombre no puede exceder 100 caracteres",
	},
	"tipo_evento": {
		"required":  "El tipo de evento es requerido",
		"eventtype": "Tipo de evento inválido",
	},
	"nombre_involucrado_1": {
		"required": "El nombre del involucrado principal es requerido",
	},
	"fecha": {
		"required": "La fecha es requerida",
		"datetime": "Fecha inválida",
	},
	"hora": {
		"time24": "Hora inválida (formato HH:MM)",
	},
	"lugar": {
		"max": "El lugar no puede exceder 200 caracteres",
	},
	"descripcion": {
		"max": "La descripción no puede exceder 1000 caracteres",
	},
	"capacidad_total": {
		"required": "La capacidad debe ser al menos 1",
		"min":      "La capacidad debe ser al menos 1",
		"max":      "La capacidad no puede exceder 10,000",
	},
	"estado": {
		"required":    "El estado es requerido",
		"eventstatus": "Estado inválido",
	},
}

// ValidateEventForm checks a candidate form against the canonical schema.
// It returns nil when the form is valid, otherwise a field → message map.
// Validation is entirely local and never reaches the network.
func ValidateEventForm(form *EventFormData) map[string]string {
	err := Validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := fieldMessages[field][fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		out[field] = "Valor inválido"
	}
	return out
}
