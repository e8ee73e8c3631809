package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"member-events-api/internal/filter"
	"member-events-api/internal/mocks/services"
	"member-events-api/internal/model"
	apperrors "member-events-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRoleHandler_Delete(t *testing.T) {
	t.Run("Success - NoContent", func(t *testing.T) {
		mockService := services.NewRoleServiceMock()
		router := setupTestRouter(NewRoleHandler(mockService))

		mockService.On("GetByID", mock.Anything, 3).Return(&model.Role{ID: 3, Name: "Admin"}, nil).Once()
		mockService.On("Delete", mock.Anything, 3).Return(&model.Role{ID: 3, Name: "Admin"}, nil).Once()

		w := serve(router, httptest.NewRequest(http.MethodDelete, "/api/roles/3", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := services.NewRoleServiceMock()
		router := setupTestRouter(NewRoleHandler(mockService))

		mockService.On("GetByID", mock.Anything, 3).Return(nil, apperrors.ErrRoleNotFound).Once()

		w := serve(router, httptest.NewRequest(http.MethodDelete, "/api/roles/3", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Role not found"}`, w.Body.String())
		mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Failed - StorageError", func(t *testing.T) {
		mockService := services.NewRoleServiceMock()
		router := setupTestRouter(NewRoleHandler(mockService))

		mockService.On("GetByID", mock.Anything, 3).Return(&model.Role{ID: 3, Name: "Admin"}, nil).Once()
		mockService.On("Delete", mock.Anything, 3).
			Return(nil, errors.New(`update or delete on table "roles" violates foreign key constraint`)).Once()

		w := serve(router, httptest.NewRequest(http.MethodDelete, "/api/roles/3", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "violates foreign key constraint")
	})
}

func TestRoleHandler_CreateAndList(t *testing.T) {
	mockService := services.NewRoleServiceMock()
	router := setupTestRouter(NewRoleHandler(mockService))

	mockService.On("Create", mock.Anything, &model.Role{Name: "Treasurer"}).Return(&model.Role{ID: 2, Name: "Treasurer"}, nil).Once()
	mockService.On("List", mock.Anything, filter.Conditions{filter.Like("name", "TREAS")}).
		Return([]*model.Role{{ID: 2, Name: "Treasurer"}}, nil).Once()

	w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/roles", RoleRequest{Name: "Treasurer"}))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/api/roles?name=TREAS", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":2,"name":"Treasurer"}]`, w.Body.String())
	mockService.AssertExpectations(t)
}
