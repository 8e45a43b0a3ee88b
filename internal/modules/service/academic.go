package service

import (
	"context"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
)

type SchoolInput struct {
	Name *string `json:"nombre" binding:"omitempty,max=150" example:"Ingenieria"`
}

func (in SchoolInput) validate(create bool) error {
	return text(create, "nombre", in.Name)
}

func (in SchoolInput) apply(s *model.School) error {
	set(&s.Name, in.Name)
	return nil
}

type SchoolService interface {
	CRUD[model.School, SchoolInput]
}

func NewSchoolService(schools repo.SchoolRepo) SchoolService {
	s := newEntityService[model.School, SchoolInput](schools)
	s.check = func(ctx context.Context, next, cur *model.School) error {
		if cur == nil || next.Name != cur.Name {
			return mustBeUnique(ctx, schools, repo.Filter{"nombre": next.Name}, next.ID, "a school with this name already exists")
		}
		return nil
	}
	return s
}

type CareerInput struct {
	Name     *string `json:"nombre" binding:"omitempty,max=150" example:"Ingenieria en Sistemas"`
	SchoolID *uint   `json:"id_escuela" example:"1"`
}

func (in CareerInput) validate(create bool) error {
	if err := text(create, "nombre", in.Name); err != nil {
		return err
	}
	if create && in.SchoolID == nil {
		return missing("id_escuela")
	}
	return nil
}

func (in CareerInput) apply(c *model.Career) error {
	set(&c.Name, in.Name)
	set(&c.SchoolID, in.SchoolID)
	return nil
}

type CareerService interface {
	CRUD[model.Career, CareerInput]
}

func NewCareerService(careers repo.CareerRepo, schools repo.SchoolRepo) CareerService {
	s := newEntityService[model.Career, CareerInput](careers)
	s.check = func(ctx context.Context, next, cur *model.Career) error {
		if cur == nil || next.SchoolID != cur.SchoolID {
			if err := mustExist(ctx, schools, next.SchoolID, "school"); err != nil {
				return err
			}
		}
		if cur == nil || next.Name != cur.Name || next.SchoolID != cur.SchoolID {
			return mustBeUnique(ctx, careers, repo.Filter{"nombre": next.Name, "id_escuela": next.SchoolID}, next.ID,
				"a career with this name already exists in the school")
		}
		return nil
	}
	return s
}

type CoordinatorInput struct {
	Names    *string `json:"nombres" binding:"omitempty,max=100"`
	Surnames *string `json:"apellidos" binding:"omitempty,max=100"`
	Email    *string `json:"correo_institucional" binding:"omitempty,email,max=150" example:"coordinador@universidad.edu"`
	Phone    *string `json:"telefono" binding:"omitempty,max=20"`
	CareerID *uint   `json:"id_carrera" example:"1"`
}

func (in CoordinatorInput) validate(create bool) error {
	err := texts(create, textField{"nombres", in.Names}, textField{"apellidos", in.Surnames}, textField{"correo_institucional", in.Email})
	if err != nil {
		return err
	}
	if create && in.CareerID == nil {
		return missing("id_carrera")
	}
	return nil
}

func (in CoordinatorInput) apply(c *model.Coordinator) error {
	set(&c.Names, in.Names)
	set(&c.Surnames, in.Surnames)
	set(&c.Email, in.Email)
	setPtr(&c.Phone, in.Phone)
	set(&c.CareerID, in.CareerID)
	return nil
}

type CoordinatorService interface {
	CRUD[model.Coordinator, CoordinatorInput]
}

func NewCoordinatorService(coordinators repo.CoordinatorRepo, careers repo.CareerRepo) CoordinatorService {
	s := newEntityService[model.Coordinator, CoordinatorInput](coordinators)
	s.check = func(ctx context.Context, next, cur *model.Coordinator) error {
		if cur == nil || next.CareerID != cur.CareerID {
			if err := mustExist(ctx, careers, next.CareerID, "career"); err != nil {
				return err
			}
		}
		if cur == nil || next.Email != cur.Email {
			return mustBeUnique(ctx, coordinators, repo.Filter{"correo_institucional": next.Email}, next.ID,
				"a coordinator with this email already exists")
		}
		return nil
	}
	return s
}
