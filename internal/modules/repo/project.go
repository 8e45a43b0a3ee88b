package repo

import (
	"github.com/ds611b/practicas/internal/modules/model"
	"gorm.io/gorm"
)

type InstitutionManagerRepo interface {
	Store[model.InstitutionManager]
}

type institutionManagerRepo struct{ crud[model.InstitutionManager] }

func NewInstitutionManagerRepo(db *gorm.DB, reg *model.Registry) InstitutionManagerRepo {
	return &institutionManagerRepo{newCrud[model.InstitutionManager](db, reg, "institution manager")}
}

type InstitutionRepo interface {
	Store[model.Institution]
}

type institutionRepo struct{ crud[model.Institution] }

func NewInstitutionRepo(db *gorm.DB, reg *model.Registry) InstitutionRepo {
	return &institutionRepo{newCrud[model.Institution](db, reg, "institution")}
}

type ProjectRepo interface {
	Store[model.Project]
}

type projectRepo struct{ crud[model.Project] }

func NewProjectRepo(db *gorm.DB, reg *model.Registry) ProjectRepo {
	return &projectRepo{newCrud[model.Project](db, reg, "project")}
}

type ApplicationRepo interface {
	Store[model.Application]
}

type applicationRepo struct{ crud[model.Application] }

func NewApplicationRepo(db *gorm.DB, reg *model.Registry) ApplicationRepo {
	return &applicationRepo{newCrud[model.Application](db, reg, "application")}
}
