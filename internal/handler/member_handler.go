package handler

import (
	"errors"
	"net/http"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/service"
	apperrors "member-events-api/pkg/app_errors"
	"member-events-api/pkg/logger"
	"member-events-api/pkg/password"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MemberHandler struct {
	service service.MemberService
	hasher  *password.Hasher
}

func NewMemberHandler(service service.MemberService, hasher *password.Hasher) *MemberHandler {
	return &MemberHandler{service: service, hasher: hasher}
}

func (h *MemberHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("members", h.List)
		router.GET("members/:id", h.GetByID)
		router.POST("members", h.Create)
		router.PUT("members/:id", h.Update)
		router.DELETE("members/:id", h.Delete)
	}
}

// MemberRequest password 為明文，寫入前雜湊
type MemberRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	CPF          string  `json:"cpf" binding:"required"`
	Street       *string `json:"street"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zipCode"`
	DepartmentID int     `json:"departmentId" binding:"required"`
	RoleID       int     `json:"roleId" binding:"required"`
}

func (h *MemberHandler) toModel(req MemberRequest) *model.Member {
	return &model.Member{
		Email:        req.Email,
		Password:     h.hasher.Hash(req.Password),
		Name:         req.Name,
		CPF:          req.CPF,
		Street:       req.Street,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
	}
}

func (h *MemberHandler) List(c *gin.Context) {
	var conds filter.Conditions
	if name := c.Query("name"); name != "" {
		conds = append(conds, filter.Like("name", name))
	}
	if email := c.Query("email"); email != "" {
		conds = append(conds, filter.Like("email", email))
	}
	for _, key := range []string{"departmentId", "roleId"} {
		v, ok, err := queryInt(c, key)
		if err != nil {
			badRequest(c, key+" must be an integer")
			return
		}
		if ok {
			conds = append(conds, filter.Eq(key, v))
		}
	}

	members, err := h.service.List(c, conds)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	member, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req MemberRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	// 同一 email 只能註冊一次
	_, err := h.service.GetByEmail(c, req.Email)
	switch {
	case err == nil:
		h.handleError(c, apperrors.ErrMemberEmailTaken, "Create")
		return
	case !errors.Is(err, apperrors.ErrMemberNotFound):
		h.handleError(c, err, "Create")
		return
	}

	created, err := h.service.Create(c, h.toModel(req))
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req MemberRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if _, err := h.service.GetByID(c, id); err != nil {
		h.handleError(c, err, "Update")
		return
	}
	updated, err := h.service.Update(c, id, h.toModel(req))
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *MemberHandler) Delete(c *gin.Context) {
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

func (h *MemberHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("resource", "member"), zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrMemberNotFound):
		log.Warn("Member not found")
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrMemberEmailTaken):
		log.Warn("Email already registered")
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
