package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

func TestProjectHandler_ListProjectsByStatus(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		wantFilter     repo.Filter
		expectedStatus int
	}{
		{name: "approved and available", path: "/p/estado/Aprobado/true", wantFilter: repo.Filter{"estado": "Aprobado", "disponibilidad": true}, expectedStatus: http.StatusOK},
		{name: "pending and unavailable", path: "/p/estado/Pendiente/false", wantFilter: repo.Filter{"estado": "Pendiente", "disponibilidad": false}, expectedStatus: http.StatusOK},
		{name: "unknown status", path: "/p/estado/Cerrado/true", expectedStatus: http.StatusBadRequest},
		{name: "bad availability", path: "/p/estado/Aprobado/quizas", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCRUD[model.Project, service.ProjectInput]{}
			if tt.wantFilter != nil {
				svc.On("List", mock.Anything, tt.wantFilter).Return([]model.Project{}, nil)
			}
			h := NewProjectHandler(svc, zap.NewNop())
			r := gin.New()
			r.GET("/p/estado/:estado/:disponibilidad", h.ListProjectsByStatus)

			w := do(r, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `[]`, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestInstitutionHandler_ListInstitutionsByStatus(t *testing.T) {
	svc := &MockCRUD[model.Institution, service.InstitutionInput]{}
	svc.On("List", mock.Anything, repo.Filter{"estado": "Rechazado"}).Return([]model.Institution{{ID: 2, Name: "B", Status: "Rechazado"}}, nil)
	h := NewInstitutionHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/i/estado/:estado", h.ListInstitutionsByStatus)

	w := do(r, http.MethodGet, "/i/estado/Rechazado", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out []model.Institution
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 1)

	w = do(r, http.MethodGet, "/i/estado/rechazado", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errCode(t, w))
}

func TestCareerHandler_ListCareersBySchool(t *testing.T) {
	svc := &MockCRUD[model.Career, service.CareerInput]{}
	svc.On("List", mock.Anything, repo.Filter{"id_escuela": uint(3)}).Return([]model.Career{}, nil)
	h := NewCareerHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/carreras/escuela/:id", h.ListCareersBySchool)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/carreras/escuela/3", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/carreras/escuela/-3", nil).Code)
	svc.AssertExpectations(t)
}

func profileRouter(svc *MockProfileService) *gin.Engine {
	h := NewProfileHandler(svc, func() time.Duration { return 15 * time.Minute }, zap.NewNop())
	r := gin.New()
	r.GET("/perfiles/genero/:genero", h.ListProfilesByGender)
	r.GET("/perfiles/usuario/:usuario_id", h.GetProfileByUser)
	r.POST("/perfiles/:id/foto", h.UploadProfilePhoto)
	r.GET("/perfiles/:id/foto", h.GetProfilePhoto)
	return r
}

func TestProfileHandler_ListProfilesByGender(t *testing.T) {
	svc := &MockProfileService{}
	svc.On("List", mock.Anything, repo.Filter{"genero": "Femenino"}).Return([]model.Profile{}, nil)
	r := profileRouter(svc)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/perfiles/genero/Femenino", nil).Code)
	w := do(r, http.MethodGet, "/perfiles/genero/F", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestProfileHandler_GetProfileByUser(t *testing.T) {
	svc := &MockProfileService{}
	svc.On("GetByUser", mock.Anything, uint(1)).Return(&model.Profile{ID: 4, UserID: 1}, nil)
	svc.On("GetByUser", mock.Anything, uint(2)).Return(nil, apperrors.NotFound("NOT_FOUND", "profile not found for this user"))
	r := profileRouter(svc)

	w := do(r, http.MethodGet, "/perfiles/usuario/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p model.Profile
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, uint(4), p.ID)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/perfiles/usuario/2", nil).Code)
}

func TestProfileHandler_GetProfilePhoto(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockProfileService)
		expectedStatus int
	}{
		{
			name: "signed url",
			setup: func(svc *MockProfileService) {
				svc.On("PhotoURL", mock.Anything, uint(1)).Return("https://s3.local/a.png?sig", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "storage disabled",
			setup: func(svc *MockProfileService) {
				svc.On("PhotoURL", mock.Anything, uint(1)).Return("", apperrors.Unavailable("STORAGE_DISABLED", "photo storage is not configured"))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "no photo",
			setup: func(svc *MockProfileService) {
				svc.On("PhotoURL", mock.Anything, uint(1)).Return("", apperrors.NotFound("PHOTO_NOT_FOUND", "profile has no photo"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockProfileService{}
			tt.setup(svc)

			w := do(profileRouter(svc), http.MethodGet, "/perfiles/1/foto", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var out serializer.PhotoURL
				require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &out))
				assert.Equal(t, "https://s3.local/a.png?sig", out.URL)
				assert.Equal(t, 900, out.ExpiresIn)
			}
		})
	}
}

func TestProfileHandler_UploadProfilePhoto(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		svc := &MockProfileService{}
		w := do(profileRouter(svc), http.MethodPost, "/perfiles/1/foto", []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "UploadPhoto", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stored", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("UploadPhoto", mock.Anything, uint(1), mock.MatchedBy(func(fh *multipart.FileHeader) bool {
			return fh.Filename == "yo.png"
		})).Return(&model.Profile{ID: 1, Photo: new(string)}, nil)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		fw, err := mw.CreateFormFile("file", "yo.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/perfiles/1/foto", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		profileRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func logbookRouter(svc *MockLogbookService) *gin.Engine {
	h := NewLogbookHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/bitacoras/:id/perfiles", h.AssignLogbookProfile)
	r.DELETE("/bitacoras/:id/perfiles/:perfil_id", h.UnassignLogbookProfile)
	return r
}

func TestLogbookHandler_AssignLogbookProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockLogbookService)
		expectedStatus int
	}{
		{
			name: "assigned",
			body: `{"id_perfil_usuario":2}`,
			setup: func(svc *MockLogbookService) {
				svc.On("AssignProfile", mock.Anything, uint(1), uint(2)).Return(&model.LogbookProfile{ID: 5, LogbookID: 1, ProfileID: 2}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing profile id",
			body:           `{}`,
			setup:          func(svc *MockLogbookService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "already assigned",
			body: `{"id_perfil_usuario":2}`,
			setup: func(svc *MockLogbookService) {
				svc.On("AssignProfile", mock.Anything, uint(1), uint(2)).Return(nil, apperrors.Conflict("DUPLICATE", "the profile is already assigned to this logbook"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockLogbookService{}
			tt.setup(svc)

			w := do(logbookRouter(svc), http.MethodPost, "/bitacoras/1/perfiles", []byte(tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestLogbookHandler_UnassignLogbookProfile(t *testing.T) {
	svc := &MockLogbookService{}
	svc.On("UnassignProfile", mock.Anything, uint(1), uint(2)).Return(nil)
	svc.On("UnassignProfile", mock.Anything, uint(1), uint(3)).Return(apperrors.NotFound("NOT_FOUND", "profile is not assigned to this logbook"))
	r := logbookRouter(svc)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/bitacoras/1/perfiles/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/bitacoras/1/perfiles/3", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodDelete, "/bitacoras/1/perfiles/x", nil).Code)
}

func TestHealthHandler(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name           string
		checks         map[string]Pinger
		expectedStatus int
		expectedChecks map[string]string
	}{
		{name: "all up", checks: map[string]Pinger{"postgres": up, "redis": up}, expectedStatus: http.StatusOK, expectedChecks: map[string]string{"postgres": "up", "redis": "up"}},
		{name: "redis down", checks: map[string]Pinger{"postgres": up, "redis": down}, expectedStatus: http.StatusServiceUnavailable, expectedChecks: map[string]string{"postgres": "up", "redis": "down"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.checks, zap.NewNop())
			r := gin.New()
			r.GET("/health", h.Health)
			r.GET("/ready", h.Ready)

			assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", nil).Code)

			w := do(r, http.MethodGet, "/ready", nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			var out serializer.Health
			require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &out))
			assert.Equal(t, tt.expectedChecks, out.Checks)
		})
	}
}
