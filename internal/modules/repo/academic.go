package repo

import (
	"github.com/ds611b/practicas/internal/modules/model"
	"gorm.io/gorm"
)

type SchoolRepo interface {
	Store[model.School]
}

type schoolRepo struct{ crud[model.School] }

func NewSchoolRepo(db *gorm.DB, reg *model.Registry) SchoolRepo {
	return &schoolRepo{newCrud[model.School](db, reg, "school")}
}

type CareerRepo interface {
	Store[model.Career]
}

type careerRepo struct{ crud[model.Career] }

func NewCareerRepo(db *gorm.DB, reg *model.Registry) CareerRepo {
	return &careerRepo{newCrud[model.Career](db, reg, "career")}
}

type CoordinatorRepo interface {
	Store[model.Coordinator]
}

type coordinatorRepo struct{ crud[model.Coordinator] }

func NewCoordinatorRepo(db *gorm.DB, reg *model.Registry) CoordinatorRepo {
	return &coordinatorRepo{newCrud[model.Coordinator](db, reg, "coordinator")}
}
