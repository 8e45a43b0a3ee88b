package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/ds611b/practicas/internal/infra/blob"
	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"go.uber.org/zap"
)

type ProfileInput struct {
	UserID       *uint       `json:"usuario_id" example:"1"`
	CareerID     *uint       `json:"id_carrera" example:"1"`
	Address      *string     `json:"direccion"`
	Phone        *string     `json:"telefono" binding:"omitempty,max=20"`
	BirthDate    *model.Date `json:"fecha_nacimiento" swaggertype:"string" format:"date" example:"2001-05-20"`
	Gender       *string     `json:"genero" binding:"omitempty,oneof=Masculino Femenino Otro" example:"Femenino"`
	Photo        *string     `json:"foto_perfil" binding:"omitempty,max=255"`
	AcademicYear *int        `json:"anio_academico" binding:"omitempty,min=1,max=10" example:"4"`
	StudentCode  *string     `json:"carnet" binding:"omitempty,max=20" example:"LO200101"`
}

func (in ProfileInput) validate(create bool) error {
	if create && in.UserID == nil {
		return missing("usuario_id")
	}
	return nil
}

func (in ProfileInput) apply(p *model.Profile) error {
	set(&p.UserID, in.UserID)
	setPtr(&p.CareerID, in.CareerID)
	setPtr(&p.Address, in.Address)
	setPtr(&p.Phone, in.Phone)
	setPtr(&p.BirthDate, in.BirthDate)
	setPtr(&p.Gender, in.Gender)
	setPtr(&p.Photo, in.Photo)
	setPtr(&p.AcademicYear, in.AcademicYear)
	setPtr(&p.StudentCode, in.StudentCode)
	return nil
}

// PhotoStore keeps profile photos in object storage.
type PhotoStore interface {
	UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
}

type ProfileService interface {
	CRUD[model.Profile, ProfileInput]
	GetByUser(ctx context.Context, userID uint) (*model.Profile, error)
	UploadPhoto(ctx context.Context, id uint, fh *multipart.FileHeader) (*model.Profile, error)
	PhotoURL(ctx context.Context, id uint) (string, error)
}

type profileService struct {
	*entityService[model.Profile, ProfileInput]
	profiles repo.ProfileRepo
	photos   PhotoStore
	expire   func() time.Duration
	log      *zap.Logger
}

// NewProfileService builds the profile service. photos may be nil when object storage is not configured.
func NewProfileService(
	profiles repo.ProfileRepo,
	users repo.UserRepo,
	careers repo.CareerRepo,
	photos PhotoStore,
	expire func() time.Duration,
	log *zap.Logger,
) ProfileService {
	s := newEntityService[model.Profile, ProfileInput](profiles)
	s.check = func(ctx context.Context, next, cur *model.Profile) error {
		if cur == nil || next.UserID != cur.UserID {
			if err := mustExist(ctx, users, next.UserID, "user"); err != nil {
				return err
			}
			if err := mustBeUnique(ctx, profiles, repo.Filter{"usuario_id": next.UserID}, next.ID, "user already has a profile"); err != nil {
				return err
			}
		}
		if next.CareerID != nil && (cur == nil || differs(next.CareerID, cur.CareerID)) {
			if err := mustExist(ctx, careers, *next.CareerID, "career"); err != nil {
				return err
			}
		}
		if next.StudentCode != nil && (cur == nil || differs(next.StudentCode, cur.StudentCode)) {
			return mustBeUnique(ctx, profiles, repo.Filter{"carnet": *next.StudentCode}, next.ID, "carnet is already used by another profile")
		}
		return nil
	}
	return &profileService{entityService: s, profiles: profiles, photos: photos, expire: expire, log: log}
}

func (s *profileService) GetByUser(ctx context.Context, userID uint) (*model.Profile, error) {
	if userID == 0 {
		return nil, invalidID()
	}
	list, err := s.profiles.List(ctx, repo.Filter{"usuario_id": userID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.NotFound("NOT_FOUND", "profile not found for this user")
	}
	return &list[0], nil
}

func (s *profileService) UploadPhoto(ctx context.Context, id uint, fh *multipart.FileHeader) (*model.Profile, error) {
	if s.photos == nil {
		return nil, storageDisabled()
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	meta, err := s.photos.UploadFormFile(ctx, fmt.Sprintf("perfiles/%d", p.ID), fh)
	if errors.Is(err, blob.ErrUnsupportedType) {
		return nil, apperrors.Validation("UNSUPPORTED_FILE_TYPE", "foto_perfil must be a jpeg, png, webp or gif image")
	}
	if err != nil {
		return nil, apperrors.Internal("STORAGE_ERROR", "could not store photo", err)
	}
	s.log.Sugar().Infow("profile photo stored", "profile_id", p.ID, "key", meta.Key, "size", meta.SizeB)

	old := p.Photo
	p.Photo = &meta.Key
	updated, err := s.profiles.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	// same content hashes to the same key
	if !blank(old) && *old != meta.Key {
		if err := s.photos.Delete(ctx, *old); err != nil {
			s.log.Sugar().Warnw("could not remove previous profile photo", "profile_id", p.ID, "key", *old, "err", err)
		}
	}
	return updated, nil
}

func (s *profileService) PhotoURL(ctx context.Context, id uint) (string, error) {
	if s.photos == nil {
		return "", storageDisabled()
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if blank(p.Photo) {
		return "", apperrors.NotFound("PHOTO_NOT_FOUND", "profile has no photo")
	}

	url, err := s.photos.PresignGet(ctx, *p.Photo, s.expire())
	if err != nil {
		return "", apperrors.Internal("STORAGE_ERROR", "could not sign photo url", err)
	}
	return url, nil
}

func storageDisabled() error {
	return apperrors.Unavailable("STORAGE_DISABLED", "photo storage is not configured")
}

type EmergencyContactInput struct {
	ProfileID *uint   `json:"id_perfil_usuario" example:"1"`
	Names     *string `json:"nombres" binding:"omitempty,max=100"`
	Surnames  *string `json:"apellidos" binding:"omitempty,max=100"`
	Phone     *string `json:"telefono" binding:"omitempty,max=20"`
	Address   *string `json:"direccion"`
}

func (in EmergencyContactInput) validate(create bool) error {
	if create && in.ProfileID == nil {
		return missing("id_perfil_usuario")
	}
	return texts(create, textField{"nombres", in.Names}, textField{"apellidos", in.Surnames}, textField{"telefono", in.Phone})
}

func (in EmergencyContactInput) apply(c *model.EmergencyContact) error {
	set(&c.ProfileID, in.ProfileID)
	set(&c.Names, in.Names)
	set(&c.Surnames, in.Surnames)
	set(&c.Phone, in.Phone)
	setPtr(&c.Address, in.Address)
	return nil
}

type EmergencyContactService interface {
	CRUD[model.EmergencyContact, EmergencyContactInput]
	ListByUser(ctx context.Context, userID uint) ([]model.EmergencyContact, error)
}

type emergencyContactService struct {
	*entityService[model.EmergencyContact, EmergencyContactInput]
	contacts repo.EmergencyContactRepo
}

func NewEmergencyContactService(contacts repo.EmergencyContactRepo, profiles repo.ProfileRepo) EmergencyContactService {
	s := newEntityService[model.EmergencyContact, EmergencyContactInput](contacts)
	s.check = func(ctx context.Context, next, cur *model.EmergencyContact) error {
		if cur == nil || next.ProfileID != cur.ProfileID {
			return mustExist(ctx, profiles, next.ProfileID, "profile")
		}
		return nil
	}
	return &emergencyContactService{entityService: s, contacts: contacts}
}

func (s *emergencyContactService) ListByUser(ctx context.Context, userID uint) ([]model.EmergencyContact, error) {
	if userID == 0 {
		return nil, invalidID()
	}
	return s.contacts.ListByUser(ctx, userID)
}
