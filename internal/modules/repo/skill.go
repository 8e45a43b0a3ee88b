package repo

import (
	"github.com/ds611b/practicas/internal/modules/model"
	"gorm.io/gorm"
)

type SkillRepo interface {
	Store[model.Skill]
}

type skillRepo struct{ crud[model.Skill] }

func NewSkillRepo(db *gorm.DB, reg *model.Registry) SkillRepo {
	return &skillRepo{newCrud[model.Skill](db, reg, "skill")}
}

type UserSkillRepo interface {
	Store[model.UserSkill]
}

type userSkillRepo struct{ crud[model.UserSkill] }

func NewUserSkillRepo(db *gorm.DB, reg *model.Registry) UserSkillRepo {
	return &userSkillRepo{newCrud[model.UserSkill](db, reg, "user skill")}
}

type ProjectSkillRepo interface {
	Store[model.ProjectSkill]
}

type projectSkillRepo struct{ crud[model.ProjectSkill] }

func NewProjectSkillRepo(db *gorm.DB, reg *model.Registry) ProjectSkillRepo {
	return &projectSkillRepo{newCrud[model.ProjectSkill](db, reg, "project skill")}
}
