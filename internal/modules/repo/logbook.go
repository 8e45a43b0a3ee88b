package repo

import (
	"context"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"gorm.io/gorm"
)

type ProjectActivityRepo interface {
	Store[model.ProjectActivity]
}

type projectActivityRepo struct{ crud[model.ProjectActivity] }

func NewProjectActivityRepo(db *gorm.DB, reg *model.Registry) ProjectActivityRepo {
	return &projectActivityRepo{newCrud[model.ProjectActivity](db, reg, "project activity")}
}

type LogbookRepo interface {
	Store[model.Logbook]
}

type logbookRepo struct{ crud[model.Logbook] }

func NewLogbookRepo(db *gorm.DB, reg *model.Registry) LogbookRepo {
	return &logbookRepo{newCrud[model.Logbook](db, reg, "logbook")}
}

type LogbookItemRepo interface {
	Store[model.LogbookItem]
}

type logbookItemRepo struct{ crud[model.LogbookItem] }

func NewLogbookItemRepo(db *gorm.DB, reg *model.Registry) LogbookItemRepo {
	return &logbookItemRepo{newCrud[model.LogbookItem](db, reg, "logbook item")}
}

type LogbookProfileRepo interface {
	Store[model.LogbookProfile]
	DeletePair(ctx context.Context, logbookID, profileID uint) error
}

type logbookProfileRepo struct{ crud[model.LogbookProfile] }

func NewLogbookProfileRepo(db *gorm.DB, reg *model.Registry) LogbookProfileRepo {
	return &logbookProfileRepo{newCrud[model.LogbookProfile](db, reg, "logbook assignment")}
}

func (r *logbookProfileRepo) DeletePair(ctx context.Context, logbookID, profileID uint) error {
	res := r.db.WithContext(ctx).
		Where("id_bitacora = ? AND id_perfil_usuario = ?", logbookID, profileID).
		Delete(&model.LogbookProfile{})
	if res.Error != nil {
		return translate(res.Error, opDelete)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("NOT_FOUND", "profile is not assigned to this logbook")
	}
	return nil
}
