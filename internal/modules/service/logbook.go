package service

import (
	"context"
	"math"
	"time"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
)

type ProjectActivityInput struct {
	ProjectID *uint   `json:"id_proyecto" example:"1"`
	Activity  *string `json:"actividad_a_realizar" example:"Levantamiento de requerimientos"`
	Objective *string `json:"objetivo"`
	Goal      *string `json:"meta"`
	Duration  *string `json:"duracion" binding:"omitempty,max=50" example:"2 semanas"`
}

func (in ProjectActivityInput) validate(create bool) error {
	if create && in.ProjectID == nil {
		return missing("id_proyecto")
	}
	return text(create, "actividad_a_realizar", in.Activity)
}

func (in ProjectActivityInput) apply(a *model.ProjectActivity) error {
	set(&a.ProjectID, in.ProjectID)
	set(&a.Activity, in.Activity)
	setPtr(&a.Objective, in.Objective)
	setPtr(&a.Goal, in.Goal)
	setPtr(&a.Duration, in.Duration)
	return nil
}

type ProjectActivityService interface {
	CRUD[model.ProjectActivity, ProjectActivityInput]
}

func NewProjectActivityService(activities repo.ProjectActivityRepo, projects repo.ProjectRepo) ProjectActivityService {
	s := newEntityService[model.ProjectActivity, ProjectActivityInput](activities)
	s.check = func(ctx context.Context, next, cur *model.ProjectActivity) error {
		if cur == nil || next.ProjectID != cur.ProjectID {
			return mustExist(ctx, projects, next.ProjectID, "project")
		}
		return nil
	}
	return s
}

type LogbookInput struct {
	ProjectID *uint       `json:"id_proyecto" example:"1"`
	StartDate *model.Date `json:"fecha_inicio" swaggertype:"string" format:"date" example:"2025-02-01"`
	EndDate   *model.Date `json:"fecha_fin" swaggertype:"string" format:"date" example:"2025-02-28"`
	Status    *string     `json:"estado" binding:"omitempty,oneof='En Proceso' Aprobado Rechazado"`
	Notes     *string     `json:"observaciones"`
}

func (in LogbookInput) validate(create bool) error {
	if create && in.ProjectID == nil {
		return missing("id_proyecto")
	}
	return nil
}

func (in LogbookInput) apply(l *model.Logbook) error {
	set(&l.ProjectID, in.ProjectID)
	setPtr(&l.StartDate, in.StartDate)
	setPtr(&l.EndDate, in.EndDate)
	set(&l.Status, in.Status)
	setPtr(&l.Notes, in.Notes)
	if l.StartDate != nil && l.EndDate != nil && l.EndDate.Time().Before(l.StartDate.Time()) {
		return apperrors.Validation("VALIDATION_ERROR", "fecha_fin must not precede fecha_inicio")
	}
	return nil
}

type LogbookService interface {
	CRUD[model.Logbook, LogbookInput]
	AssignProfile(ctx context.Context, logbookID, profileID uint) (*model.LogbookProfile, error)
	UnassignProfile(ctx context.Context, logbookID, profileID uint) error
}

type logbookService struct {
	*entityService[model.Logbook, LogbookInput]
	logbooks    repo.LogbookRepo
	assignments repo.LogbookProfileRepo
	profiles    repo.ProfileRepo
}

func NewLogbookService(
	logbooks repo.LogbookRepo,
	assignments repo.LogbookProfileRepo,
	projects repo.ProjectRepo,
	profiles repo.ProfileRepo,
) LogbookService {
	s := newEntityService[model.Logbook, LogbookInput](logbooks)
	s.init = func(l *model.Logbook) { l.Status = model.LogbookInProgress }
	s.check = func(ctx context.Context, next, cur *model.Logbook) error {
		if cur == nil || next.ProjectID != cur.ProjectID {
			return mustExist(ctx, projects, next.ProjectID, "project")
		}
		return nil
	}
	return &logbookService{entityService: s, logbooks: logbooks, assignments: assignments, profiles: profiles}
}

func (s *logbookService) AssignProfile(ctx context.Context, logbookID, profileID uint) (*model.LogbookProfile, error) {
	if logbookID == 0 || profileID == 0 {
		return nil, invalidID()
	}
	if _, err := s.logbooks.Get(ctx, logbookID); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.profiles, profileID, "profile"); err != nil {
		return nil, err
	}
	if err := mustBeUnique(ctx, s.assignments, repo.Filter{"id_bitacora": logbookID, "id_perfil_usuario": profileID}, 0,
		"the profile is already assigned to this logbook"); err != nil {
		return nil, err
	}
	return s.assignments.Create(ctx, &model.LogbookProfile{LogbookID: logbookID, ProfileID: profileID})
}

func (s *logbookService) UnassignProfile(ctx context.Context, logbookID, profileID uint) error {
	if logbookID == 0 || profileID == 0 {
		return invalidID()
	}
	return s.assignments.DeletePair(ctx, logbookID, profileID)
}

type LogbookItemInput struct {
	LogbookID *uint      `json:"id_bitacora" example:"1"`
	Details   *string    `json:"detalle_actividades" example:"Reunion con el encargado"`
	PunchIn   *time.Time `json:"punch_in" example:"2025-02-03T08:00:00Z"`
	PunchOut  *time.Time `json:"punch_out" example:"2025-02-03T12:30:00Z"`
}

func (in LogbookItemInput) validate(create bool) error {
	if create && in.LogbookID == nil {
		return missing("id_bitacora")
	}
	if err := text(create, "detalle_actividades", in.Details); err != nil {
		return err
	}
	if create && in.PunchIn == nil {
		return missing("punch_in")
	}
	return nil
}

func (in LogbookItemInput) apply(it *model.LogbookItem) error {
	set(&it.LogbookID, in.LogbookID)
	set(&it.Details, in.Details)
	set(&it.PunchIn, in.PunchIn)
	setPtr(&it.PunchOut, in.PunchOut)

	it.TotalHours = nil
	if it.PunchOut != nil {
		h, err := workedHours(it.PunchIn, *it.PunchOut)
		if err != nil {
			return err
		}
		it.TotalHours = &h
	}
	return nil
}

// workedHours returns the time between two punches in hours, rounded to two decimals.
func workedHours(in, out time.Time) (float64, error) {
	if out.Before(in) {
		return 0, apperrors.Validation("VALIDATION_ERROR", "punch_out must not precede punch_in")
	}
	return math.Round(out.Sub(in).Hours()*100) / 100, nil
}

type LogbookItemService interface {
	CRUD[model.LogbookItem, LogbookItemInput]
}

func NewLogbookItemService(items repo.LogbookItemRepo, logbooks repo.LogbookRepo) LogbookItemService {
	s := newEntityService[model.LogbookItem, LogbookItemInput](items)
	s.check = func(ctx context.Context, next, cur *model.LogbookItem) error {
		if cur == nil || next.LogbookID != cur.LogbookID {
			return mustExist(ctx, logbooks, next.LogbookID, "logbook")
		}
		return nil
	}
	return s
}
