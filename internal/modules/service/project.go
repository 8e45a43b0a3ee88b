package service

import (
	"context"
	"time"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"go.uber.org/zap"
)

type InstitutionManagerInput struct {
	Names    *string `json:"nombres" binding:"omitempty,max=100"`
	Surnames *string `json:"apellidos" binding:"omitempty,max=100"`
	Email    *string `json:"correo" binding:"omitempty,email,max=150" example:"encargado@empresa.com"`
	Phone    *string `json:"telefono" binding:"omitempty,max=20"`
}

func (in InstitutionManagerInput) validate(create bool) error {
	return texts(create, textField{"nombres", in.Names}, textField{"apellidos", in.Surnames}, textField{"correo", in.Email})
}

func (in InstitutionManagerInput) apply(m *model.InstitutionManager) error {
	set(&m.Names, in.Names)
	set(&m.Surnames, in.Surnames)
	set(&m.Email, in.Email)
	setPtr(&m.Phone, in.Phone)
	return nil
}

type InstitutionManagerService interface {
	CRUD[model.InstitutionManager, InstitutionManagerInput]
}

func NewInstitutionManagerService(managers repo.InstitutionManagerRepo) InstitutionManagerService {
	s := newEntityService[model.InstitutionManager, InstitutionManagerInput](managers)
	s.check = func(ctx context.Context, next, cur *model.InstitutionManager) error {
		if cur == nil || next.Email != cur.Email {
			return mustBeUnique(ctx, managers, repo.Filter{"correo": next.Email}, next.ID, "a manager with this email already exists")
		}
		return nil
	}
	return s
}

type InstitutionInput struct {
	Name      *string     `json:"nombre" binding:"omitempty,max=150" example:"Empresa S.A."`
	Address   *string     `json:"direccion"`
	Phone     *string     `json:"telefono" binding:"omitempty,max=20"`
	Email     *string     `json:"email" binding:"omitempty,email,max=150"`
	FoundedOn *model.Date `json:"fecha_fundacion" swaggertype:"string" format:"date" example:"1990-01-15"`
	NIT       *string     `json:"nit" binding:"omitempty,max=20"`
	Status    *string     `json:"estado" binding:"omitempty,oneof=Pendiente Aprobado Rechazado"`
	ManagerID *uint       `json:"id_encargado"`
}

func (in InstitutionInput) validate(create bool) error {
	return text(create, "nombre", in.Name)
}

func (in InstitutionInput) apply(i *model.Institution) error {
	set(&i.Name, in.Name)
	setPtr(&i.Address, in.Address)
	setPtr(&i.Phone, in.Phone)
	setPtr(&i.Email, in.Email)
	setPtr(&i.FoundedOn, in.FoundedOn)
	setPtr(&i.NIT, in.NIT)
	set(&i.Status, in.Status)
	setPtr(&i.ManagerID, in.ManagerID)
	return nil
}

type InstitutionService interface {
	CRUD[model.Institution, InstitutionInput]
}

func NewInstitutionService(institutions repo.InstitutionRepo, managers repo.InstitutionManagerRepo) InstitutionService {
	s := newEntityService[model.Institution, InstitutionInput](institutions)
	s.init = func(i *model.Institution) { i.Status = model.StatusPending }
	s.check = func(ctx context.Context, next, cur *model.Institution) error {
		if next.ManagerID != nil && (cur == nil || differs(next.ManagerID, cur.ManagerID)) {
			if err := mustExist(ctx, managers, *next.ManagerID, "institution manager"); err != nil {
				return err
			}
		}
		if cur == nil || next.Name != cur.Name {
			if err := mustBeUnique(ctx, institutions, repo.Filter{"nombre": next.Name}, next.ID, "an institution with this name already exists"); err != nil {
				return err
			}
		}
		if next.Email != nil && (cur == nil || differs(next.Email, cur.Email)) {
			return mustBeUnique(ctx, institutions, repo.Filter{"email": *next.Email}, next.ID, "an institution with this email already exists")
		}
		return nil
	}
	return s
}

type ProjectInput struct {
	InstitutionID *uint       `json:"institucion_id" example:"1"`
	ManagerID     *uint       `json:"id_encargado"`
	Name          *string     `json:"nombre" binding:"omitempty,max=150" example:"Desarrollo de sistema de inventario"`
	Description   *string     `json:"descripcion"`
	Website       *string     `json:"sitio_web" binding:"omitempty,max=255"`
	StartDate     *model.Date `json:"fecha_inicio" swaggertype:"string" format:"date" example:"2025-02-01"`
	EndDate       *model.Date `json:"fecha_fin" swaggertype:"string" format:"date" example:"2025-07-31"`
	Modality      *string     `json:"modalidad" binding:"omitempty,max=50" example:"Presencial"`
	Address       *string     `json:"direccion"`
	MainActivity  *string     `json:"actividad_principal"`
	Schedule      *string     `json:"horario_requerido" binding:"omitempty,max=100"`
	Available     *bool       `json:"disponibilidad"`
	Status        *string     `json:"estado" binding:"omitempty,oneof=Pendiente Aprobado Rechazado"`
}

func (in ProjectInput) validate(create bool) error {
	if create && in.InstitutionID == nil {
		return missing("institucion_id")
	}
	return text(create, "nombre", in.Name)
}

func (in ProjectInput) apply(p *model.Project) error {
	set(&p.InstitutionID, in.InstitutionID)
	setPtr(&p.ManagerID, in.ManagerID)
	set(&p.Name, in.Name)
	setPtr(&p.Description, in.Description)
	setPtr(&p.Website, in.Website)
	setPtr(&p.StartDate, in.StartDate)
	setPtr(&p.EndDate, in.EndDate)
	setPtr(&p.Modality, in.Modality)
	setPtr(&p.Address, in.Address)
	setPtr(&p.MainActivity, in.MainActivity)
	setPtr(&p.Schedule, in.Schedule)
	set(&p.Available, in.Available)
	set(&p.Status, in.Status)
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Time().Before(p.StartDate.Time()) {
		return apperrors.Validation("VALIDATION_ERROR", "fecha_fin must not precede fecha_inicio")
	}
	return nil
}

type ProjectService interface {
	CRUD[model.Project, ProjectInput]
}

func NewProjectService(projects repo.ProjectRepo, institutions repo.InstitutionRepo, managers repo.InstitutionManagerRepo) ProjectService {
	s := newEntityService[model.Project, ProjectInput](projects)
	s.init = func(p *model.Project) {
		p.Available = true
		p.Status = model.StatusPending
	}
	s.check = func(ctx context.Context, next, cur *model.Project) error {
		if cur == nil || next.InstitutionID != cur.InstitutionID {
			if err := mustExist(ctx, institutions, next.InstitutionID, "institution"); err != nil {
				return err
			}
		}
		if next.ManagerID != nil && (cur == nil || differs(next.ManagerID, cur.ManagerID)) {
			return mustExist(ctx, managers, *next.ManagerID, "institution manager")
		}
		return nil
	}
	return s
}

type ApplicationInput struct {
	StudentID *uint   `json:"estudiante_id" example:"1"`
	ProjectID *uint   `json:"proyecto_id" example:"1"`
	Status    *string `json:"estado" binding:"omitempty,oneof=Pendiente Aprobado Rechazado"`
}

func (in ApplicationInput) validate(create bool) error {
	if !create {
		return nil
	}
	if in.StudentID == nil {
		return missing("estudiante_id")
	}
	if in.ProjectID == nil {
		return missing("proyecto_id")
	}
	return nil
}

func (in ApplicationInput) apply(a *model.Application) error {
	set(&a.StudentID, in.StudentID)
	set(&a.ProjectID, in.ProjectID)
	set(&a.Status, in.Status)
	return nil
}

// StudentSummary is the part of a user shown next to its applications.
type StudentSummary struct {
	ID             uint    `json:"id"`
	FirstName      string  `json:"primer_nombre"`
	MiddleName     *string `json:"segundo_nombre"`
	LastName       string  `json:"primer_apellido"`
	SecondLastName *string `json:"segundo_apellido"`
	Email          string  `json:"email"`
}

func summarize(u *model.User) StudentSummary {
	if u == nil {
		return StudentSummary{}
	}
	return StudentSummary{
		ID:             u.ID,
		FirstName:      u.FirstName,
		MiddleName:     u.MiddleName,
		LastName:       u.LastName,
		SecondLastName: u.SecondLastName,
		Email:          u.Email,
	}
}

type StudentApplication struct {
	ID        uint           `json:"id"`
	StudentID uint           `json:"estudiante_id"`
	ProjectID uint           `json:"proyecto_id"`
	Status    string         `json:"estado"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Project   *model.Project `json:"proyecto"`
	Student   StudentSummary `json:"estudiante"`
}

// Applicant is a student annotated with its own application to a project.
type Applicant struct {
	StudentSummary
	ApplicationID uint   `json:"id_aplicacion"`
	Status        string `json:"estado"`
}

type ProjectApplicants struct {
	Project  *model.Project `json:"proyecto"`
	Students []Applicant    `json:"estudiantes"`
}

type ApplicationService interface {
	CRUD[model.Application, ApplicationInput]
	ListByStudent(ctx context.Context, studentID uint) ([]StudentApplication, error)
	ListByProject(ctx context.Context, projectID uint) (*ProjectApplicants, error)
}

type applicationService struct {
	*entityService[model.Application, ApplicationInput]
	applications repo.ApplicationRepo
	projects     repo.ProjectRepo
	events       EventPublisher
	log          *zap.Logger
}

// NewApplicationService builds the application service. events may be nil when no broker is configured.
func NewApplicationService(
	applications repo.ApplicationRepo,
	users repo.UserRepo,
	projects repo.ProjectRepo,
	events EventPublisher,
	log *zap.Logger,
) ApplicationService {
	s := newEntityService[model.Application, ApplicationInput](applications)
	s.init = func(a *model.Application) { a.Status = model.StatusPending }
	s.check = func(ctx context.Context, next, cur *model.Application) error {
		if cur == nil || next.StudentID != cur.StudentID {
			if err := mustExist(ctx, users, next.StudentID, "student"); err != nil {
				return err
			}
		}
		if cur == nil || next.ProjectID != cur.ProjectID {
			if err := mustExist(ctx, projects, next.ProjectID, "project"); err != nil {
				return err
			}
		}
		if cur == nil || next.StudentID != cur.StudentID || next.ProjectID != cur.ProjectID {
			return mustBeUnique(ctx, applications, repo.Filter{"estudiante_id": next.StudentID, "proyecto_id": next.ProjectID}, next.ID,
				"the student already applied to this project")
		}
		return nil
	}
	return &applicationService{
		entityService: s,
		applications:  applications,
		projects:      projects,
		events:        events,
		log:           log,
	}
}

func (s *applicationService) Create(ctx context.Context, in ApplicationInput) (*model.Application, error) {
	a, err := s.entityService.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventApplicationCreated, a, "")
	return a, nil
}

func (s *applicationService) Update(ctx context.Context, id uint, in ApplicationInput) (*model.Application, error) {
	if id == 0 {
		return nil, invalidID()
	}
	before, err := s.applications.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a, err := s.entityService.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if a.Status != before.Status {
		s.publish(ctx, EventApplicationStatusChanged, a, before.Status)
	}
	return a, nil
}

// publish emits an application event. The row is already committed, so failures are only logged.
func (s *applicationService) publish(ctx context.Context, key string, a *model.Application, previous string) {
	if s.events == nil {
		return
	}
	ev := ApplicationEvent{
		ApplicationID:  a.ID,
		StudentID:      a.StudentID,
		ProjectID:      a.ProjectID,
		Status:         a.Status,
		PreviousStatus: previous,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.events.PublishJSON(ctx, key, ev); err != nil {
		s.log.Sugar().Warnw("publish application event", "event", key, "application_id", a.ID, "err", err)
	}
}

func (s *applicationService) ListByStudent(ctx context.Context, studentID uint) ([]StudentApplication, error) {
	if studentID == 0 {
		return nil, invalidID()
	}
	list, err := s.applications.List(ctx, repo.Filter{"estudiante_id": studentID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.NotFound("NOT_FOUND", "the student has no applications")
	}

	out := make([]StudentApplication, 0, len(list))
	for _, a := range list {
		out = append(out, StudentApplication{
			ID:        a.ID,
			StudentID: a.StudentID,
			ProjectID: a.ProjectID,
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
			Project:   a.Project,
			Student:   summarize(a.Student),
		})
	}
	return out, nil
}

func (s *applicationService) ListByProject(ctx context.Context, projectID uint) (*ProjectApplicants, error) {
	if projectID == 0 {
		return nil, invalidID()
	}
	list, err := s.applications.List(ctx, repo.Filter{"proyecto_id": projectID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.NotFound("NOT_FOUND", "the project has no applications")
	}
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := &ProjectApplicants{Project: project, Students: make([]Applicant, 0, len(list))}
	for _, a := range list {
		out.Students = append(out.Students, Applicant{
			StudentSummary: summarize(a.Student),
			ApplicationID:  a.ID,
			Status:         a.Status,
		})
	}
	return out, nil
}
