package service

import (
	"context"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/ds611b/practicas/internal/pkg/utils"
)

type RoleInput struct {
	Name        *string `json:"nombre" binding:"omitempty,max=50" example:"Estudiante"`
	Description *string `json:"descripcion" example:"Estudiante en busca de practicas"`
}

func (in RoleInput) validate(create bool) error {
	return text(create, "nombre", in.Name)
}

func (in RoleInput) apply(r *model.Role) error {
	set(&r.Name, in.Name)
	setPtr(&r.Description, in.Description)
	return nil
}

type RoleService interface {
	CRUD[model.Role, RoleInput]
}

func NewRoleService(roles repo.RoleRepo) RoleService {
	s := newEntityService[model.Role, RoleInput](roles)
	s.check = func(ctx context.Context, next, cur *model.Role) error {
		if cur == nil || next.Name != cur.Name {
			return mustBeUnique(ctx, roles, repo.Filter{"nombre": next.Name}, next.ID, "a role with this name already exists")
		}
		return nil
	}
	return s
}

type UserInput struct {
	FirstName      *string `json:"primer_nombre" binding:"omitempty,max=100" example:"Ana"`
	MiddleName     *string `json:"segundo_nombre" binding:"omitempty,max=100"`
	LastName       *string `json:"primer_apellido" binding:"omitempty,max=100" example:"Lopez"`
	SecondLastName *string `json:"segundo_apellido" binding:"omitempty,max=100"`
	Email          *string `json:"email" binding:"omitempty,email,max=150" example:"ana@example.com"`
	Password       *string `json:"password" binding:"omitempty,min=8,max=72"`
	Phone          *string `json:"telefono" binding:"omitempty,max=20"`
	RoleID         *uint   `json:"rol_id" example:"1"`
	Active         *bool   `json:"activo"`
}

func (in UserInput) validate(create bool) error {
	err := texts(create,
		textField{"primer_nombre", in.FirstName},
		textField{"primer_apellido", in.LastName},
		textField{"email", in.Email},
		textField{"password", in.Password},
	)
	if err != nil {
		return err
	}
	if create && in.RoleID == nil {
		return missing("rol_id")
	}
	return nil
}

func (in UserInput) apply(u *model.User) error {
	set(&u.FirstName, in.FirstName)
	setPtr(&u.MiddleName, in.MiddleName)
	set(&u.LastName, in.LastName)
	setPtr(&u.SecondLastName, in.SecondLastName)
	set(&u.Email, in.Email)
	setPtr(&u.Phone, in.Phone)
	set(&u.RoleID, in.RoleID)
	set(&u.Active, in.Active)
	if in.Password != nil {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return apperrors.Internal("PASSWORD_HASH", "could not hash password", err)
		}
		u.PasswordHash = hash
	}
	return nil
}

// UserProfileInput is the payload of the combined user and profile update.
type UserProfileInput struct {
	FirstName      *string     `json:"primer_nombre" binding:"omitempty,max=100"`
	MiddleName     *string     `json:"segundo_nombre" binding:"omitempty,max=100"`
	LastName       *string     `json:"primer_apellido" binding:"omitempty,max=100"`
	SecondLastName *string     `json:"segundo_apellido" binding:"omitempty,max=100"`
	Email          *string     `json:"email" binding:"omitempty,email,max=150"`
	Phone          *string     `json:"telefono" binding:"omitempty,max=20"`
	CareerID       *uint       `json:"id_carrera"`
	Address        *string     `json:"direccion"`
	BirthDate      *model.Date `json:"fecha_nacimiento" swaggertype:"string" format:"date"`
	Gender         *string     `json:"genero" binding:"omitempty,oneof=Masculino Femenino Otro"`
	AcademicYear   *int        `json:"anio_academico" binding:"omitempty,min=1,max=10"`
	StudentCode    *string     `json:"carnet" binding:"omitempty,max=20" example:"LO200101"`
}

type UserService interface {
	CRUD[model.User, UserInput]
	// UpdateWithProfile edits a user and creates or edits its profile atomically.
	UpdateWithProfile(ctx context.Context, userID uint, in UserProfileInput) (*model.Profile, error)
}

type userService struct {
	*entityService[model.User, UserInput]
	users repo.UserRepo
}

func NewUserService(users repo.UserRepo, roles repo.RoleRepo) UserService {
	s := newEntityService[model.User, UserInput](users)
	s.init = func(u *model.User) { u.Active = true }
	s.check = func(ctx context.Context, next, cur *model.User) error {
		if cur == nil || next.RoleID != cur.RoleID {
			if err := mustExist(ctx, roles, next.RoleID, "role"); err != nil {
				return err
			}
		}
		if cur == nil || next.Email != cur.Email {
			return mustBeUnique(ctx, users, repo.Filter{"email": next.Email}, next.ID, "email is already used by another user")
		}
		return nil
	}
	return &userService{entityService: s, users: users}
}

func (s *userService) UpdateWithProfile(ctx context.Context, userID uint, in UserProfileInput) (*model.Profile, error) {
	if userID == 0 {
		return nil, invalidID()
	}
	err := texts(false,
		textField{"primer_nombre", in.FirstName},
		textField{"primer_apellido", in.LastName},
		textField{"email", in.Email},
		textField{"carnet", in.StudentCode},
	)
	if err != nil {
		return nil, err
	}

	return s.users.UpdateWithProfile(ctx, userID, repo.UserProfileChange{
		Email:       in.Email,
		StudentCode: in.StudentCode,
		CareerID:    in.CareerID,
		ApplyUser: func(u *model.User) {
			set(&u.FirstName, in.FirstName)
			setPtr(&u.MiddleName, in.MiddleName)
			set(&u.LastName, in.LastName)
			setPtr(&u.SecondLastName, in.SecondLastName)
			set(&u.Email, in.Email)
			setPtr(&u.Phone, in.Phone)
		},
		ApplyProfile: func(p *model.Profile) {
			setPtr(&p.CareerID, in.CareerID)
			setPtr(&p.Address, in.Address)
			setPtr(&p.BirthDate, in.BirthDate)
			setPtr(&p.Gender, in.Gender)
			setPtr(&p.AcademicYear, in.AcademicYear)
			setPtr(&p.StudentCode, in.StudentCode)
		},
	})
}
