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

type DepartmentHandler struct {
	service service.DepartmentService
}

func NewDepartmentHandler(service service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

func (h *DepartmentHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("departments", h.List)
		router.GET("departments/:id", h.GetByID)
		router.POST("departments", h.Create)
		router.PUT("departments/:id", h.Update)
		router.DELETE("departments/:id", h.Delete)
	}
}

type DepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *DepartmentHandler) List(c *gin.Context) {
	var conds filter.Conditions
	if name := c.Query("name"); name != "" {
		conds = append(conds, filter.Like("name", name))
	}

	departments, err := h.service.List(c, conds)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	department, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req DepartmentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, &model.Department{Name: req.Name})
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req DepartmentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if _, err := h.service.GetByID(c, id); err != nil {
		h.handleError(c, err, "Update")
		return
	}
	updated, err := h.service.Update(c, id, &model.Department{Name: req.Name})
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
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

func (h *DepartmentHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("resource", "department"), zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		log.Warn("Department not found")
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
