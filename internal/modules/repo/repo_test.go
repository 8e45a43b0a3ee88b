package repo

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB migrates the schema into APP_TEST_DATABASE_DSN and empties every table.
// Tests that need it are skipped when the variable is unset.
func testDB(t *testing.T) (*gorm.DB, *model.Registry) {
	t.Helper()
	dsn := os.Getenv("APP_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("APP_TEST_DATABASE_DSN not set")
	}

	d, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := d.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	reg := model.NewRegistry()
	require.NoError(t, d.AutoMigrate(reg.Models()...))

	tables := make([]string, 0, len(reg.Models()))
	for _, m := range reg.Models() {
		stmt := &gorm.Statement{DB: d}
		require.NoError(t, stmt.Parse(m))
		tables = append(tables, stmt.Table)
	}
	require.NoError(t, d.Exec("TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE").Error)

	return d, reg
}

func ptr[V any](v V) *V { return &v }

type fixture struct {
	ctx context.Context

	roles        RoleRepo
	users        UserRepo
	profiles     ProfileRepo
	contacts     EmergencyContactRepo
	schools      SchoolRepo
	careers      CareerRepo
	coordinators CoordinatorRepo
	managers     InstitutionManagerRepo
	institutions InstitutionRepo
	projects     ProjectRepo
	applications ApplicationRepo
	skills       SkillRepo
	userSkills   UserSkillRepo
	projSkills   ProjectSkillRepo
	logbooks     LogbookRepo
	assignments  LogbookProfileRepo
}

func newFixture(t *testing.T) *fixture {
	d, reg := testDB(t)
	return &fixture{
		ctx:          context.Background(),
		roles:        NewRoleRepo(d, reg),
		users:        NewUserRepo(d, reg),
		profiles:     NewProfileRepo(d, reg),
		contacts:     NewEmergencyContactRepo(d, reg),
		schools:      NewSchoolRepo(d, reg),
		careers:      NewCareerRepo(d, reg),
		coordinators: NewCoordinatorRepo(d, reg),
		managers:     NewInstitutionManagerRepo(d, reg),
		institutions: NewInstitutionRepo(d, reg),
		projects:     NewProjectRepo(d, reg),
		applications: NewApplicationRepo(d, reg),
		skills:       NewSkillRepo(d, reg),
		userSkills:   NewUserSkillRepo(d, reg),
		projSkills:   NewProjectSkillRepo(d, reg),
		logbooks:     NewLogbookRepo(d, reg),
		assignments:  NewLogbookProfileRepo(d, reg),
	}
}

func (f *fixture) role(t *testing.T) *model.Role {
	r, err := f.roles.Create(f.ctx, &model.Role{Name: "Estudiante"})
	require.NoError(t, err)
	return r
}

func (f *fixture) user(t *testing.T, roleID uint, email string) *model.User {
	u, err := f.users.Create(f.ctx, &model.User{
		FirstName: "Ana", LastName: "Lopez", Email: email,
		PasswordHash: "x", RoleID: roleID, Active: true,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) career(t *testing.T) (*model.School, *model.Career) {
	s, err := f.schools.Create(f.ctx, &model.School{Name: "Escuela de Computacion"})
	require.NoError(t, err)
	c, err := f.careers.Create(f.ctx, &model.Career{Name: "Ingenieria en Sistemas", SchoolID: s.ID})
	require.NoError(t, err)
	return s, c
}

func (f *fixture) project(t *testing.T) (*model.Institution, *model.Project) {
	inst, err := f.institutions.Create(f.ctx, &model.Institution{Name: "Alcaldia", Status: model.StatusPending})
	require.NoError(t, err)
	p, err := f.projects.Create(f.ctx, &model.Project{
		InstitutionID: inst.ID, Name: "Portal ciudadano", Available: true, Status: model.StatusPending,
	})
	require.NoError(t, err)
	return inst, p
}

func TestCrud_CreateGetRoundTrip(t *testing.T) {
	f := newFixture(t)
	_, c := f.career(t)

	got, err := f.careers.Get(f.ctx, c.ID)
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "Ingenieria en Sistemas", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
	require.NotNil(t, got.School, "career preloads its school")
	assert.Equal(t, "Escuela de Computacion", got.School.Name)
}

func TestCrud_UniqueViolationIsConflict(t *testing.T) {
	f := newFixture(t)

	_, err := f.schools.Create(f.ctx, &model.School{Name: "Escuela de Ciencias"})
	require.NoError(t, err)
	_, err = f.schools.Create(f.ctx, &model.School{Name: "Escuela de Ciencias"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	r := f.role(t)
	f.user(t, r.ID, "ana@example.com")
	_, err = f.users.Create(f.ctx, &model.User{FirstName: "B", LastName: "C", Email: "ana@example.com", PasswordHash: "x", RoleID: r.ID})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCrud_DuplicateApplicationIsConflict(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, f.role(t).ID, "ana@example.com")
	_, p := f.project(t)

	_, err := f.applications.Create(f.ctx, &model.Application{StudentID: u.ID, ProjectID: p.ID, Status: model.StatusPending})
	require.NoError(t, err)
	_, err = f.applications.Create(f.ctx, &model.Application{StudentID: u.ID, ProjectID: p.ID, Status: model.StatusPending})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCrud_MissingReferenceIsValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.careers.Create(f.ctx, &model.Career{Name: "Huerfana", SchoolID: 999})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCrud_UpdateKeepsOtherFields(t *testing.T) {
	f := newFixture(t)
	_, p := f.project(t)

	cur, err := f.projects.Get(f.ctx, p.ID)
	require.NoError(t, err)
	next := *cur
	next.Description = ptr("Sistema de tramites en linea")

	got, err := f.projects.Update(f.ctx, &next)
	require.NoError(t, err)
	assert.Equal(t, "Sistema de tramites en linea", *got.Description)
	assert.Equal(t, "Portal ciudadano", got.Name)
	assert.True(t, got.Available)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, cur.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestCrud_UpdateAndDeleteMissingIsNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.schools.Delete(f.ctx, 12345)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = f.schools.Update(f.ctx, &model.School{ID: 12345, Name: "Nada"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = f.schools.Get(f.ctx, 12345)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCrud_CascadeSchoolCareerCoordinator(t *testing.T) {
	f := newFixture(t)
	s, c := f.career(t)
	co, err := f.coordinators.Create(f.ctx, &model.Coordinator{
		Names: "Luis", Surnames: "Perez", Email: "luis@universidad.edu", CareerID: c.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.schools.Delete(f.ctx, s.ID))

	_, err = f.careers.Get(f.ctx, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = f.coordinators.Get(f.ctx, co.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCrud_CascadeInstitutionProjectApplication(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, f.role(t).ID, "ana@example.com")
	inst, p := f.project(t)
	a, err := f.applications.Create(f.ctx, &model.Application{StudentID: u.ID, ProjectID: p.ID, Status: model.StatusPending})
	require.NoError(t, err)

	require.NoError(t, f.institutions.Delete(f.ctx, inst.ID))

	_, err = f.projects.Get(f.ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = f.applications.Get(f.ctx, a.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// the student is untouched
	_, err = f.users.Get(f.ctx, u.ID)
	assert.NoError(t, err)
}

func TestCrud_DeleteCareerNullsProfileCareer(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, f.role(t).ID, "ana@example.com")
	_, c := f.career(t)
	p, err := f.profiles.Create(f.ctx, &model.Profile{UserID: u.ID, CareerID: &c.ID, StudentCode: ptr("LO200101")})
	require.NoError(t, err)

	require.NoError(t, f.careers.Delete(f.ctx, c.ID))

	got, err := f.profiles.Get(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CareerID)
	assert.Nil(t, got.Career)
}

func TestCrud_DeleteUserCascades(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, f.role(t).ID, "ana@example.com")
	_, proj := f.project(t)
	p, err := f.profiles.Create(f.ctx, &model.Profile{UserID: u.ID, StudentCode: ptr("LO200101")})
	require.NoError(t, err)
	a, err := f.applications.Create(f.ctx, &model.Application{StudentID: u.ID, ProjectID: proj.ID, Status: model.StatusPending})
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(f.ctx, u.ID))

	_, err = f.profiles.Get(f.ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = f.applications.Get(f.ctx, a.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCrud_DeleteSkillRemovesLinks(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, f.role(t).ID, "ana@example.com")
	_, p := f.project(t)
	s, err := f.skills.Create(f.ctx, &model.Skill{Description: "Go"})
	require.NoError(t, err)
	_, err = f.userSkills.Create(f.ctx, &model.UserSkill{UserID: u.ID, SkillID: s.ID})
	require.NoError(t, err)
	_, err = f.projSkills.Create(f.ctx, &model.ProjectSkill{ProjectID: p.ID, SkillID: s.ID})
	require.NoError(t, err)

	require.NoError(t, f.skills.Delete(f.ctx, s.ID))

	us, err := f.userSkills.List(f.ctx, Filter{"habilidad_id": s.ID})
	require.NoError(t, err)
	assert.Empty(t, us)
	ps, err := f.projSkills.List(f.ctx, Filter{"habilidad_id": s.ID})
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestCrud_DeleteReferencedRoleIsConflict(t *testing.T) {
	f := newFixture(t)
	r := f.role(t)
	f.user(t, r.ID, "ana@example.com")

	err := f.roles.Delete(f.ctx, r.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "RESTRICT_VIOLATION", apperrors.As(err).Code)

	_, err = f.roles.Get(f.ctx, r.ID)
	assert.NoError(t, err)
}

func TestCrud_ListFilterAndEmpty(t *testing.T) {
	f := newFixture(t)

	empty, err := f.institutions.List(f.ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, err := f.institutions.Create(f.ctx, &model.Institution{Name: "A", Status: model.StatusPending})
	require.NoError(t, err)
	_, err = f.institutions.Create(f.ctx, &model.Institution{Name: "B", Status: model.StatusApproved})
	require.NoError(t, err)

	approved, err := f.institutions.List(f.ctx, Filter{"estado": model.StatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "B", approved[0].Name)

	ok, err := f.institutions.Exists(f.ctx, Filter{"nombre": "A"}, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.institutions.Exists(f.ctx, Filter{"nombre": "A"}, a.ID)
	require.NoError(t, err)
	assert.False(t, ok, "the row itself is excluded")
}

func TestUserRepo_UpdateWithProfile(t *testing.T) {
	f := newFixture(t)
	r := f.role(t)
	u := f.user(t, r.ID, "ana@example.com")
	f.user(t, r.ID, "otro@example.com")
	_, c := f.career(t)

	t.Run("creating a profile requires carnet", func(t *testing.T) {
		_, err := f.users.UpdateWithProfile(f.ctx, u.ID, UserProfileChange{
			ApplyUser: func(u *model.User) { u.FirstName = "Changed" },
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		// rolled back
		got, err := f.users.Get(f.ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.FirstName)
	})

	t.Run("email of another user", func(t *testing.T) {
		_, err := f.users.UpdateWithProfile(f.ctx, u.ID, UserProfileChange{Email: ptr("otro@example.com")})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("unknown career", func(t *testing.T) {
		_, err := f.users.UpdateWithProfile(f.ctx, u.ID, UserProfileChange{CareerID: ptr(uint(999)), StudentCode: ptr("LO1")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("creates then updates the profile", func(t *testing.T) {
		p, err := f.users.UpdateWithProfile(f.ctx, u.ID, UserProfileChange{
			StudentCode:  ptr("LO200101"),
			CareerID:     &c.ID,
			ApplyUser:    func(u *model.User) { u.Phone = ptr("7777-0000") },
			ApplyProfile: func(p *model.Profile) { p.StudentCode = ptr("LO200101"); p.CareerID = &c.ID },
		})
		require.NoError(t, err)
		assert.Equal(t, u.ID, p.UserID)
		require.NotNil(t, p.User)
		assert.Equal(t, "7777-0000", *p.User.Phone)
		require.NotNil(t, p.Career)
		require.NotNil(t, p.Career.School)

		p2, err := f.users.UpdateWithProfile(f.ctx, u.ID, UserProfileChange{
			ApplyProfile: func(p *model.Profile) { p.Address = ptr("San Salvador") },
		})
		require.NoError(t, err)
		assert.Equal(t, p.ID, p2.ID)
		assert.Equal(t, "San Salvador", *p2.Address)
		assert.Equal(t, "LO200101", *p2.StudentCode)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := f.users.UpdateWithProfile(f.ctx, 999, UserProfileChange{})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestEmergencyContactRepo_ListByUser(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, f.role(t).ID, "ana@example.com")
	p, err := f.profiles.Create(f.ctx, &model.Profile{UserID: u.ID, StudentCode: ptr("LO200101")})
	require.NoError(t, err)
	_, err = f.contacts.Create(f.ctx, &model.EmergencyContact{ProfileID: p.ID, Names: "Maria", Surnames: "Lopez", Phone: "7000-0000"})
	require.NoError(t, err)

	list, err := f.contacts.ListByUser(f.ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Maria", list[0].Names)

	none, err := f.contacts.ListByUser(f.ctx, u.ID+100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLogbookProfileRepo_DeletePair(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, f.role(t).ID, "ana@example.com")
	_, proj := f.project(t)
	p, err := f.profiles.Create(f.ctx, &model.Profile{UserID: u.ID, StudentCode: ptr("LO200101")})
	require.NoError(t, err)
	lb, err := f.logbooks.Create(f.ctx, &model.Logbook{ProjectID: proj.ID, Status: model.LogbookInProgress})
	require.NoError(t, err)
	_, err = f.assignments.Create(f.ctx, &model.LogbookProfile{LogbookID: lb.ID, ProfileID: p.ID})
	require.NoError(t, err)

	require.NoError(t, f.assignments.DeletePair(f.ctx, lb.ID, p.ID))
	assert.ErrorIs(t, f.assignments.DeletePair(f.ctx, lb.ID, p.ID), apperrors.ErrNotFound)
}
