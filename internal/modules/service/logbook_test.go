package service

import (
	"context"
	"testing"
	"time"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkedHours(t *testing.T) {
	in := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		out     time.Time
		want    float64
		wantErr bool
	}{
		{name: "half day", out: in.Add(4*time.Hour + 30*time.Minute), want: 4.5},
		{name: "rounded", out: in.Add(20 * time.Minute), want: 0.33},
		{name: "zero", out: in, want: 0},
		{name: "out before in", out: in.Add(-time.Minute), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := workedHours(in, tt.out)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLogbookItemInput_Apply(t *testing.T) {
	in := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	out := in.Add(3 * time.Hour)

	var it model.LogbookItem
	require.NoError(t, LogbookItemInput{LogbookID: ptr(uint(1)), Details: ptr("x"), PunchIn: &in, PunchOut: &out}.apply(&it))
	require.NotNil(t, it.TotalHours)
	assert.InDelta(t, 3.0, *it.TotalHours, 1e-9)

	// moving punch_in recomputes from the stored punch_out
	later := in.Add(time.Hour)
	require.NoError(t, LogbookItemInput{PunchIn: &later}.apply(&it))
	assert.InDelta(t, 2.0, *it.TotalHours, 1e-9)

	var open model.LogbookItem
	require.NoError(t, LogbookItemInput{PunchIn: &in}.apply(&open))
	assert.Nil(t, open.TotalHours)
}

func TestLogbookItemService_CreateValidation(t *testing.T) {
	s := NewLogbookItemService(&MockStore[model.LogbookItem]{}, &MockStore[model.Logbook]{})
	_, err := s.Create(context.Background(), LogbookItemInput{LogbookID: ptr(uint(1)), Details: ptr("x")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

type logbookFixture struct {
	logbooks    *MockStore[model.Logbook]
	assignments *MockLogbookProfileRepo
	projects    *MockStore[model.Project]
	profiles    *MockStore[model.Profile]
}

func newLogbookFixture() (*logbookFixture, LogbookService) {
	f := &logbookFixture{
		logbooks:    &MockStore[model.Logbook]{},
		assignments: &MockLogbookProfileRepo{},
		projects:    &MockStore[model.Project]{},
		profiles:    &MockStore[model.Profile]{},
	}
	return f, NewLogbookService(f.logbooks, f.assignments, f.projects, f.profiles)
}

func TestLogbookService_AssignProfile(t *testing.T) {
	ctx := context.Background()
	pair := repo.Filter{"id_bitacora": uint(1), "id_perfil_usuario": uint(2)}

	t.Run("assigned", func(t *testing.T) {
		f, s := newLogbookFixture()
		f.logbooks.On("Get", mock.Anything, uint(1)).Return(&model.Logbook{ID: 1}, nil)
		f.profiles.On("Exists", mock.Anything, repo.Filter{"id": uint(2)}, uint(0)).Return(true, nil)
		f.assignments.On("Exists", mock.Anything, pair, uint(0)).Return(false, nil)
		f.assignments.On("Create", mock.Anything, &model.LogbookProfile{LogbookID: 1, ProfileID: 2}).
			Return(&model.LogbookProfile{ID: 9, LogbookID: 1, ProfileID: 2}, nil)

		got, err := s.AssignProfile(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(9), got.ID)
	})

	t.Run("missing logbook", func(t *testing.T) {
		f, s := newLogbookFixture()
		f.logbooks.On("Get", mock.Anything, uint(1)).Return(nil, apperrors.NotFound("NOT_FOUND", "logbook not found"))

		_, err := s.AssignProfile(ctx, 1, 2)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("already assigned", func(t *testing.T) {
		f, s := newLogbookFixture()
		f.logbooks.On("Get", mock.Anything, uint(1)).Return(&model.Logbook{ID: 1}, nil)
		f.profiles.On("Exists", mock.Anything, repo.Filter{"id": uint(2)}, uint(0)).Return(true, nil)
		f.assignments.On("Exists", mock.Anything, pair, uint(0)).Return(true, nil)

		_, err := s.AssignProfile(ctx, 1, 2)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		f.assignments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("zero id", func(t *testing.T) {
		_, s := newLogbookFixture()
		_, err := s.AssignProfile(ctx, 0, 2)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestLogbookService_UnassignProfile(t *testing.T) {
	f, s := newLogbookFixture()
	f.assignments.On("DeletePair", mock.Anything, uint(1), uint(2)).Return(nil)

	require.NoError(t, s.UnassignProfile(context.Background(), 1, 2))
	f.assignments.AssertExpectations(t)
}

func TestLogbookService_CreateDefaultsStatus(t *testing.T) {
	f, s := newLogbookFixture()
	f.projects.On("Exists", mock.Anything, repo.Filter{"id": uint(4)}, uint(0)).Return(true, nil)
	f.logbooks.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Logbook) bool {
		return l.Status == model.LogbookInProgress && l.ProjectID == 4
	})).Return(&model.Logbook{ID: 1, ProjectID: 4, Status: model.LogbookInProgress}, nil)

	_, err := s.Create(context.Background(), LogbookInput{ProjectID: ptr(uint(4))})
	require.NoError(t, err)
	f.logbooks.AssertExpectations(t)
}
