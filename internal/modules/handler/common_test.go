package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/modules/serializer"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var res serializer.ErrorResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
	return res.Error.Code
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.NotFound("NOT_FOUND", "x"), http.StatusNotFound},
		{apperrors.Validation("VALIDATION_ERROR", "x"), http.StatusBadRequest},
		{apperrors.Conflict("DUPLICATE", "x"), http.StatusConflict},
		{apperrors.Unavailable("STORAGE_DISABLED", "x"), http.StatusServiceUnavailable},
		{apperrors.Internal("DATABASE_ERROR", "x", nil), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), "%v", tt.err)
	}
}

func schoolRouter(svc *MockCRUD[model.School, service.SchoolInput]) *gin.Engine {
	h := NewSchoolHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/escuelas", h.ListSchools)
	r.GET("/escuelas/:id", h.GetSchool)
	r.POST("/escuelas", h.CreateSchool)
	r.PUT("/escuelas/:id", h.UpdateSchool)
	r.DELETE("/escuelas/:id", h.DeleteSchool)
	return r
}

func TestSchoolHandler(t *testing.T) {
	name := "Escuela de Computacion"

	tests := []struct {
		name           string
		method         string
		path           string
		body           []byte
		setup          func(*MockCRUD[model.School, service.SchoolInput])
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "list",
			method: http.MethodGet, path: "/escuelas",
			setup: func(svc *MockCRUD[model.School, service.SchoolInput]) {
				svc.On("List", mock.Anything, repo.Filter(nil)).Return([]model.School{{ID: 1, Name: name}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get",
			method: http.MethodGet, path: "/escuelas/1",
			setup: func(svc *MockCRUD[model.School, service.SchoolInput]) {
				svc.On("Get", mock.Anything, uint(1)).Return(&model.School{ID: 1, Name: name}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get non numeric id",
			method: http.MethodGet, path: "/escuelas/abc",
			setup:          func(svc *MockCRUD[model.School, service.SchoolInput]) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ID",
		},
		{
			name:   "get zero id",
			method: http.MethodGet, path: "/escuelas/0",
			setup:          func(svc *MockCRUD[model.School, service.SchoolInput]) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ID",
		},
		{
			name:   "get missing",
			method: http.MethodGet, path: "/escuelas/9",
			setup: func(svc *MockCRUD[model.School, service.SchoolInput]) {
				svc.On("Get", mock.Anything, uint(9)).Return(nil, apperrors.NotFound("NOT_FOUND", "school not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:   "create",
			method: http.MethodPost, path: "/escuelas", body: []byte(`{"nombre":"Escuela de Computacion"}`),
			setup: func(svc *MockCRUD[model.School, service.SchoolInput]) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.SchoolInput) bool {
					return in.Name != nil && *in.Name == name
				})).Return(&model.School{ID: 1, Name: name}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "create malformed body",
			method: http.MethodPost, path: "/escuelas", body: []byte(`{"nombre":`),
			setup:          func(svc *MockCRUD[model.School, service.SchoolInput]) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "create duplicate",
			method: http.MethodPost, path: "/escuelas", body: []byte(`{"nombre":"Escuela de Computacion"}`),
			setup: func(svc *MockCRUD[model.School, service.SchoolInput]) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.Conflict("DUPLICATE", "a school with this name already exists"))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE",
		},
		{
			name:   "update",
			method: http.MethodPut, path: "/escuelas/1", body: []byte(`{"nombre":"Escuela de Computacion"}`),
			setup: func(svc *MockCRUD[model.School, service.SchoolInput]) {
				svc.On("Update", mock.Anything, uint(1), mock.Anything).Return(&model.School{ID: 1, Name: name}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "database failure",
			method: http.MethodPut, path: "/escuelas/1", body: []byte(`{}`),
			setup: func(svc *MockCRUD[model.School, service.SchoolInput]) {
				svc.On("Update", mock.Anything, uint(1), mock.Anything).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
		{
			name:   "delete",
			method: http.MethodDelete, path: "/escuelas/1",
			setup: func(svc *MockCRUD[model.School, service.SchoolInput]) {
				svc.On("Delete", mock.Anything, uint(1)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCRUD[model.School, service.SchoolInput]{}
			tt.setup(svc)

			w := do(schoolRouter(svc), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errCode(t, w))
			}
			if tt.expectedStatus == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestRespondErr_HidesInternalMessage(t *testing.T) {
	svc := &MockCRUD[model.School, service.SchoolInput]{}
	svc.On("Get", mock.Anything, uint(1)).Return(nil, apperrors.Internal("DATABASE_ERROR", "pq: relation does not exist", nil))

	w := do(schoolRouter(svc), http.MethodGet, "/escuelas/1", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var res serializer.ErrorResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "DATABASE_ERROR", res.Error.Code)
	assert.Equal(t, "internal server error", res.Error.Message)
}
