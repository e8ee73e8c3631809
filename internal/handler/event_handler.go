package handler

import (
	"errors"
	"net/http"
	"time"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/service"
	apperrors "member-events-api/pkg/app_errors"
	"member-events-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.PUT("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
	}
}

// EventRequest 建立與更新共用，更新為整筆取代
type EventRequest struct {
	EventTypeID int        `json:"eventTypeId" binding:"required"`
	Datetime    *time.Time `json:"datetime" binding:"required"`
}

func (r EventRequest) toModel() *model.Event {
	return &model.Event{EventTypeID: r.EventTypeID, Datetime: r.Datetime.UTC()}
}

// List 支援 name（活動類型名稱）、date（當日）與 eventTypeId
func (h *EventHandler) List(c *gin.Context) {
	var conds filter.Conditions
	if name := c.Query("name"); name != "" {
		conds = append(conds, filter.Like("name", name))
	}
	if date := c.Query("date"); date != "" {
		day, err := filter.ParseDay(date)
		if err != nil {
			badRequest(c, "date must be YYYY-MM-DD or RFC3339")
			return
		}
		conds = append(conds, filter.OnDay("datetime", day))
	}
	eventTypeID, ok, err := queryInt(c, "eventTypeId")
	if err != nil {
		badRequest(c, "eventTypeId must be an integer")
		return
	}
	if ok {
		conds = append(conds, filter.Eq("eventTypeId", eventTypeID))
	}

	events, err := h.service.List(c, conds)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, req.toModel())
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req EventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if _, err := h.service.GetByID(c, id); err != nil {
		h.handleError(c, err, "Update")
		return
	}
	updated, err := h.service.Update(c, id, req.toModel())
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
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

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("resource", "event"), zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		// 例如 eventTypeId 不存在時的外鍵錯誤
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
