package service

import (
	"context"
	"testing"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEntityService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		in      RoleInput
		setup   func(r *MockStore[model.Role])
		wantErr error
	}{
		{
			name:    "missing name",
			in:      RoleInput{Description: ptr("x")},
			setup:   func(r *MockStore[model.Role]) {},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "duplicate name",
			in:   RoleInput{Name: ptr("Estudiante")},
			setup: func(r *MockStore[model.Role]) {
				r.On("Exists", mock.Anything, repo.Filter{"nombre": "Estudiante"}, uint(0)).Return(true, nil)
			},
			wantErr: apperrors.ErrConflict,
		},
		{
			name: "created",
			in:   RoleInput{Name: ptr("Estudiante"), Description: ptr("alumno")},
			setup: func(r *MockStore[model.Role]) {
				r.On("Exists", mock.Anything, repo.Filter{"nombre": "Estudiante"}, uint(0)).Return(false, nil)
				r.On("Create", mock.Anything, mock.MatchedBy(func(v *model.Role) bool {
					return v.Name == "Estudiante" && v.Description != nil && *v.Description == "alumno"
				})).Return(&model.Role{ID: 1, Name: "Estudiante"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := &MockStore[model.Role]{}
			tt.setup(roles)
			s := NewRoleService(roles)

			got, err := s.Create(ctx, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(1), got.ID)
			roles.AssertExpectations(t)
		})
	}
}

func TestEntityService_UpdateKeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	roles := &MockStore[model.Role]{}
	cur := &model.Role{ID: 3, Name: "Coordinador", Description: ptr("old")}

	roles.On("Get", mock.Anything, uint(3)).Return(cur, nil)
	roles.On("Update", mock.Anything, mock.MatchedBy(func(v *model.Role) bool {
		return v.ID == 3 && v.Name == "Coordinador" && *v.Description == "new"
	})).Return(&model.Role{ID: 3, Name: "Coordinador", Description: ptr("new")}, nil)

	got, err := NewRoleService(roles).Update(ctx, 3, RoleInput{Description: ptr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", *got.Description)
	assert.Equal(t, "old", *cur.Description, "the loaded row is not modified in place")
	// the name did not change, so uniqueness is not checked
	roles.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	roles.AssertExpectations(t)
}

func TestEntityService_UpdateRenameChecksUniqueness(t *testing.T) {
	ctx := context.Background()
	roles := &MockStore[model.Role]{}
	roles.On("Get", mock.Anything, uint(3)).Return(&model.Role{ID: 3, Name: "Coordinador"}, nil)
	roles.On("Exists", mock.Anything, repo.Filter{"nombre": "Estudiante"}, uint(3)).Return(true, nil)

	_, err := NewRoleService(roles).Update(ctx, 3, RoleInput{Name: ptr("Estudiante")})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	roles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEntityService_UpdateRejectsBlankRequiredText(t *testing.T) {
	ctx := context.Background()

	// every mock has no expectations: a blank value must fail before the row is loaded
	tests := []struct {
		name   string
		update func() error
		field  string
	}{
		{
			name: "school name",
			update: func() error {
				_, err := NewSchoolService(&MockStore[model.School]{}).Update(ctx, 1, SchoolInput{Name: ptr("")})
				return err
			},
			field: "nombre",
		},
		{
			name: "user names",
			update: func() error {
				_, err := NewUserService(&MockUserRepo{}, &MockStore[model.Role]{}).Update(ctx, 2, UserInput{FirstName: ptr(""), LastName: ptr("")})
				return err
			},
			field: "primer_nombre",
		},
		{
			name: "user last name",
			update: func() error {
				_, err := NewUserService(&MockUserRepo{}, &MockStore[model.Role]{}).Update(ctx, 2, UserInput{FirstName: ptr("Ana"), LastName: ptr("")})
				return err
			},
			field: "primer_apellido",
		},
		{
			name: "role name",
			update: func() error {
				_, err := NewRoleService(&MockStore[model.Role]{}).Update(ctx, 1, RoleInput{Name: ptr("")})
				return err
			},
			field: "nombre",
		},
		{
			name: "coordinator email",
			update: func() error {
				_, err := NewCoordinatorService(&MockStore[model.Coordinator]{}, &MockStore[model.Career]{}).Update(ctx, 1, CoordinatorInput{Email: ptr("")})
				return err
			},
			field: "correo_institucional",
		},
		{
			name: "institution name",
			update: func() error {
				_, err := NewInstitutionService(&MockStore[model.Institution]{}, &MockStore[model.InstitutionManager]{}).Update(ctx, 1, InstitutionInput{Name: ptr("")})
				return err
			},
			field: "nombre",
		},
		{
			name: "skill description",
			update: func() error {
				_, err := NewSkillService(&MockStore[model.Skill]{}).Update(ctx, 1, SkillInput{Description: ptr("")})
				return err
			},
			field: "descripcion",
		},
		{
			name: "activity",
			update: func() error {
				_, err := NewProjectActivityService(&MockStore[model.ProjectActivity]{}, &MockStore[model.Project]{}).Update(ctx, 1, ProjectActivityInput{Activity: ptr("")})
				return err
			},
			field: "actividad_a_realizar",
		},
		{
			name: "logbook item details",
			update: func() error {
				_, err := NewLogbookItemService(&MockStore[model.LogbookItem]{}, &MockStore[model.Logbook]{}).Update(ctx, 1, LogbookItemInput{Details: ptr("")})
				return err
			},
			field: "detalle_actividades",
		},
		{
			name: "combined user and profile",
			update: func() error {
				_, err := NewUserService(&MockUserRepo{}, &MockStore[model.Role]{}).UpdateWithProfile(ctx, 2, UserProfileInput{Email: ptr("")})
				return err
			},
			field: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update()
			require.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.field+" must not be empty", apperrors.As(err).Message)
		})
	}
}

func TestEntityService_UpdateTextChange(t *testing.T) {
	ctx := context.Background()
	schools := &MockStore[model.School]{}
	schools.On("Get", mock.Anything, uint(1)).Return(&model.School{ID: 1, Name: "Ingenieria"}, nil)
	schools.On("Exists", mock.Anything, repo.Filter{"nombre": "Ciencias"}, uint(1)).Return(false, nil)
	schools.On("Update", mock.Anything, mock.MatchedBy(func(v *model.School) bool {
		return v.ID == 1 && v.Name == "Ciencias"
	})).Return(&model.School{ID: 1, Name: "Ciencias"}, nil)

	got, err := NewSchoolService(schools).Update(ctx, 1, SchoolInput{Name: ptr("Ciencias")})
	require.NoError(t, err)
	assert.Equal(t, "Ciencias", got.Name)
	schools.AssertExpectations(t)
}

func TestEntityService_IDAndNotFound(t *testing.T) {
	ctx := context.Background()
	roles := &MockStore[model.Role]{}
	roles.On("Get", mock.Anything, uint(9)).Return(nil, apperrors.NotFound("NOT_FOUND", "role not found"))
	roles.On("Delete", mock.Anything, uint(9)).Return(apperrors.NotFound("NOT_FOUND", "role not found"))
	s := NewRoleService(roles)

	_, err := s.Get(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = s.Update(ctx, 0, RoleInput{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ErrorIs(t, s.Delete(ctx, 0), apperrors.ErrValidation)

	_, err = s.Get(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = s.Update(ctx, 9, RoleInput{Name: ptr("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 9), apperrors.ErrNotFound)
}

func TestProjectService_CreateDefaultsAndReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("missing institution", func(t *testing.T) {
		projects := &MockStore[model.Project]{}
		institutions := &MockStore[model.Institution]{}
		institutions.On("Exists", mock.Anything, repo.Filter{"id": uint(5)}, uint(0)).Return(false, nil)

		s := NewProjectService(projects, institutions, &MockStore[model.InstitutionManager]{})
		_, err := s.Create(ctx, ProjectInput{InstitutionID: ptr(uint(5)), Name: ptr("P")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, "REFERENCE_NOT_FOUND", apperrors.As(err).Code)
	})

	t.Run("defaults", func(t *testing.T) {
		projects := &MockStore[model.Project]{}
		institutions := &MockStore[model.Institution]{}
		institutions.On("Exists", mock.Anything, repo.Filter{"id": uint(5)}, uint(0)).Return(true, nil)
		projects.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
			return p.Available && p.Status == model.StatusPending && p.InstitutionID == 5
		})).Return(&model.Project{ID: 1}, nil)

		s := NewProjectService(projects, institutions, &MockStore[model.InstitutionManager]{})
		_, err := s.Create(ctx, ProjectInput{InstitutionID: ptr(uint(5)), Name: ptr("P")})
		require.NoError(t, err)
		projects.AssertExpectations(t)
	})

	t.Run("end before start", func(t *testing.T) {
		start, _ := model.ParseDate("2025-03-01")
		end, _ := model.ParseDate("2025-02-01")
		s := NewProjectService(&MockStore[model.Project]{}, &MockStore[model.Institution]{}, &MockStore[model.InstitutionManager]{})
		_, err := s.Create(ctx, ProjectInput{InstitutionID: ptr(uint(5)), Name: ptr("P"), StartDate: &start, EndDate: &end})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestDiffers(t *testing.T) {
	a, b := ptr(1), ptr(1)
	assert.False(t, differs[int](nil, nil))
	assert.True(t, differs(a, nil))
	assert.True(t, differs(nil, b))
	assert.False(t, differs(a, b))
	assert.True(t, differs(a, ptr(2)))
}
