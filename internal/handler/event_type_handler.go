package handler

import (
	"errors"
	"net/http"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/service"
	apperrors "member-events-api/pkg/app_errors"
	"member-events-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventTypeHandler struct {
	service service.EventTypeService
}

func NewEventTypeHandler(service service.EventTypeService) *EventTypeHandler {
	return &EventTypeHandler{service: service}
}

func (h *EventTypeHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("event-types", h.List)
		router.GET("event-types/:id", h.GetByID)
		router.POST("event-types", h.Create)
		router.PUT("event-types/:id", h.Update)
		router.DELETE("event-types/:id", h.Delete)
	}
}

type EventTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *EventTypeHandler) List(c *gin.Context) {
	var conds filter.Conditions
	if name := c.Query("name"); name != "" {
		conds = append(conds, filter.Like("name", name))
	}

	eventTypes, err := h.service.List(c, conds)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, eventTypes)
}

func (h *EventTypeHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	eventType, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, eventType)
}

func (h *EventTypeHandler) Create(c *gin.Context) {
	var req EventTypeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, &model.EventType{Name: req.Name})
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventTypeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req EventTypeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if _, err := h.service.GetByID(c, id); err != nil {
		h.handleError(c, err, "Update")
		return
	}
	updated, err := h.service.Update(c, id, &model.EventType{Name: req.Name})
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventTypeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.service.GetByID(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	deleted, err := h.service.Delete(c, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *EventTypeHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("resource", "event_type"), zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventTypeNotFound):
		log.Warn("Event type not found")
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
