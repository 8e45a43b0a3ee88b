package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepo interface {
	Store[model.Role]
}

type roleRepo struct{ crud[model.Role] }

func NewRoleRepo(db *gorm.DB, reg *model.Registry) RoleRepo {
	return &roleRepo{newCrud[model.Role](db, reg, "role")}
}

// UserProfileChange is a combined edit of a user and its profile.
// Email, StudentCode and CareerID are the values that need checking before the write;
// ApplyUser and ApplyProfile copy the submitted fields onto the loaded rows.
type UserProfileChange struct {
	Email       *string
	StudentCode *string
	CareerID    *uint

	ApplyUser    func(*model.User)
	ApplyProfile func(*model.Profile)
}

type UserRepo interface {
	Store[model.User]
	// UpdateWithProfile applies ch in a single transaction and returns the resulting profile.
	UpdateWithProfile(ctx context.Context, userID uint, ch UserProfileChange) (*model.Profile, error)
}

type userRepo struct {
	crud[model.User]
	profiles crud[model.Profile]
}

func NewUserRepo(db *gorm.DB, reg *model.Registry) UserRepo {
	return &userRepo{
		crud:     newCrud[model.User](db, reg, "user"),
		profiles: newCrud[model.Profile](db, reg, "profile"),
	}
}

func (r *userRepo) UpdateWithProfile(ctx context.Context, userID uint, ch UserProfileChange) (*model.Profile, error) {
	var profileID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return r.notFound()
			}
			return err
		}

		if ch.Email != nil && *ch.Email != u.Email {
			taken, err := exists(tx, &model.User{}, Filter{"email": *ch.Email}, u.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.Conflict("EMAIL_TAKEN", "email is already used by another user")
			}
		}

		var p model.Profile
		found := true
		if err := tx.Where("usuario_id = ?", u.ID).First(&p).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
		}

		if ch.StudentCode != nil {
			taken, err := exists(tx, &model.Profile{}, Filter{"carnet": *ch.StudentCode}, p.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.Conflict("CARNET_TAKEN", "carnet is already used by another profile")
			}
		}

		if ch.CareerID != nil {
			ok, err := exists(tx, &model.Career{}, Filter{"id": *ch.CareerID}, 0)
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.Validation("CAREER_NOT_FOUND", fmt.Sprintf("career %d does not exist", *ch.CareerID))
			}
		}

		if ch.ApplyUser != nil {
			ch.ApplyUser(&u)
		}
		if err := tx.Model(&u).Select("*").Omit(clause.Associations, "created_at").Updates(&u).Error; err != nil {
			return err
		}

		if !found {
			p = model.Profile{UserID: u.ID}
		}
		if ch.ApplyProfile != nil {
			ch.ApplyProfile(&p)
		}
		if found {
			if err := tx.Model(&p).Select("*").Omit(clause.Associations, "created_at").Updates(&p).Error; err != nil {
				return err
			}
		} else {
			if p.StudentCode == nil || *p.StudentCode == "" {
				return apperrors.Validation("CARNET_REQUIRED", "carnet is required to create a profile")
			}
			if err := tx.Omit(clause.Associations).Create(&p).Error; err != nil {
				return err
			}
		}

		profileID = p.ID
		return nil
	})
	if err != nil {
		return nil, translate(err, opWrite)
	}
	return r.profiles.Get(ctx, profileID)
}

type ProfileRepo interface {
	Store[model.Profile]
}

type profileRepo struct{ crud[model.Profile] }

func NewProfileRepo(db *gorm.DB, reg *model.Registry) ProfileRepo {
	return &profileRepo{newCrud[model.Profile](db, reg, "profile")}
}

type EmergencyContactRepo interface {
	Store[model.EmergencyContact]
	// ListByUser returns the contacts attached to the profile of userID.
	ListByUser(ctx context.Context, userID uint) ([]model.EmergencyContact, error)
}

type emergencyContactRepo struct{ crud[model.EmergencyContact] }

func NewEmergencyContactRepo(db *gorm.DB, reg *model.Registry) EmergencyContactRepo {
	return &emergencyContactRepo{newCrud[model.EmergencyContact](db, reg, "emergency contact")}
}

func (r *emergencyContactRepo) ListByUser(ctx context.Context, userID uint) ([]model.EmergencyContact, error) {
	profiles := r.db.Model(&model.Profile{}).Select("id").Where("usuario_id = ?", userID)

	out := make([]model.EmergencyContact, 0)
	if err := r.query(ctx).Where("id_perfil_usuario IN (?)", profiles).Order("id").Find(&out).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return out, nil
}

func exists(tx *gorm.DB, m any, f Filter, exceptID uint) (bool, error) {
	q := tx.Model(m).Where(map[string]any(f))
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
