package handler

import (
	"net/http"

	"member-events-api/internal/filter"
	"member-events-api/internal/service"
	"member-events-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChangeLogHandler struct {
	service service.ChangeLogService
}

func NewChangeLogHandler(service service.ChangeLogService) *ChangeLogHandler {
	return &ChangeLogHandler{service: service}
}

func (h *ChangeLogHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/changes", h.List)
}

// List 最新的在前，可用 resource、resourceId、action 過濾
func (h *ChangeLogHandler) List(c *gin.Context) {
	var conds filter.Conditions
	for _, key := range []string{"resource", "action"} {
		if v := c.Query(key); v != "" {
			conds = append(conds, filter.Eq(key, v))
		}
	}
	resourceID, ok, err := queryInt(c, "resourceId")
	if err != nil {
		badRequest(c, "resourceId must be an integer")
		return
	}
	if ok {
		conds = append(conds, filter.Eq("resourceId", resourceID))
	}

	events, err := h.service.List(c, conds)
	if err != nil {
		logger.WithComponent("handler").Error("Unexpected error",
			zap.String("resource", "change_log"), zap.String("operation", "List"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}
