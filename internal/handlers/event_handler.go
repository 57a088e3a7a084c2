package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/veranomx/eventos/internal/connect"
	"github.com/veranomx/eventos/internal/helpers"
	"github.com/veranomx/eventos/internal/models"
	"github.com/veranomx/eventos/internal/services"
)

// ListEvents applies the incoming filter/page/view parameters to the list
// state and returns the derived page window. `refresh=true` forces a full
// reload from the remote service.
func ListEvents(s *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := s.List()

		force := c.Query("refresh") == "true"
		if err := list.Load(c.Request.Context(), force); err != nil {
			respondError(c, err)
			return
		}

		if term, ok := c.GetQuery("search"); ok {
			list.SetSearch(term)
		}
		if tipo, ok := c.GetQuery("tipo"); ok {
			list.SetTypeFilter(tipo)
		}
		if estado, ok := c.GetQuery("estado"); ok {
			list.SetStatusFilter(estado)
		}
		if view, ok := c.GetQuery("view"); ok {
			list.SetViewMode(services.ViewMode(view))
		}
		if page, ok := c.GetQuery("page"); ok {
			n, err := strconv.Atoi(page)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid page parameter"))
				return
			}
			list.GoToPage(n)
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(list.Snapshot(), ""))
	}
}

func GetEvent(s *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid event ID format"))
			return
		}

		event, err := s.GetEvent(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(event, ""))
	}
}

func CreateEvent(s *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.EventFormData
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := s.CreateEvent(c.Request.Context(), &form)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "Evento creado exitosamente"))
	}
}

func UpdateEvent(s *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid event ID format"))
			return
		}

		var form models.EventFormData
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		if err := s.UpdateEvent(c.Request.Context(), id, &form); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "Evento actualizado exitosamente"))
	}
}

// DeleteEvent only reaches the remote service when the caller confirms;
// without confirm=true nothing is sent upstream and the list is untouched.
func DeleteEvent(s *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid event ID format"))
			return
		}

		if c.Query("confirm") != "true" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("deletion requires confirmation"))
			return
		}

		if err := s.DeleteEvent(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "Evento eliminado exitosamente"))
	}
}

// respondError maps service failures onto HTTP statuses: validation maps
// to 422 with the field map, a missing record to 404, a normalized remote
// failure to 502 and anything else to 500. Every failure is scoped to the
// request; prior list/form state stays as it was.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, helpers.ValidationErrorResponse(verr.Fields))
		return
	}
	if errors.Is(err, connect.ErrNotFound) {
		c.JSON(http.StatusNotFound, helpers.ErrorResponse("evento no encontrado"))
		return
	}
	var apiErr *connect.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, helpers.ErrorResponse(apiErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
}
