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

type RoleHandler struct {
	service service.RoleService
}

func NewRoleHandler(service service.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

func (h *RoleHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("roles", h.List)
		router.GET("roles/:id", h.GetByID)
		router.POST("roles", h.Create)
		router.PUT("roles/:id", h.Update)
		router.DELETE("roles/:id", h.Delete)
	}
}

type RoleRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *RoleHandler) List(c *gin.Context) {
	var conds filter.Conditions
	if name := c.Query("name"); name != "" {
		conds = append(conds, filter.Like("name", name))
	}

	roles, err := h.service.List(c, conds)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	role, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, &model.Role{Name: req.Name})
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req RoleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if _, err := h.service.GetByID(c, id); err != nil {
		h.handleError(c, err, "Update")
		return
	}
	updated, err := h.service.Update(c, id, &model.Role{Name: req.Name})
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.service.GetByID(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	if _, err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	// 角色刪除不回傳內容
	c.Status(http.StatusNoContent)
}

func (h *RoleHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("resource", "role"), zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrRoleNotFound):
		log.Warn("Role not found")
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
