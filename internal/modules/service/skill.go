package service

import (
	"context"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
)

type SkillInput struct {
	Description *string `json:"descripcion" binding:"omitempty,max=255" example:"Programacion en Go"`
}

func (in SkillInput) validate(create bool) error {
	return text(create, "descripcion", in.Description)
}

func (in SkillInput) apply(s *model.Skill) error {
	set(&s.Description, in.Description)
	return nil
}

type SkillService interface {
	CRUD[model.Skill, SkillInput]
}

func NewSkillService(skills repo.SkillRepo) SkillService {
	return newEntityService[model.Skill, SkillInput](skills)
}

// SkillLink is one skill assignment: its own id, the skill id and the skill text.
type SkillLink struct {
	ID          uint   `json:"id"`
	SkillID     uint   `json:"habilidad_id"`
	Description string `json:"descripcion"`
}

func link(id, skillID uint, s *model.Skill) SkillLink {
	l := SkillLink{ID: id, SkillID: skillID}
	if s != nil {
		l.Description = s.Description
	}
	return l
}

type UserSkillInput struct {
	UserID  *uint `json:"usuario_id" example:"1"`
	SkillID *uint `json:"habilidad_id" example:"1"`
}

func (in UserSkillInput) validate(create bool) error {
	if !create {
		return nil
	}
	if in.UserID == nil {
		return missing("usuario_id")
	}
	if in.SkillID == nil {
		return missing("habilidad_id")
	}
	return nil
}

func (in UserSkillInput) apply(us *model.UserSkill) error {
	set(&us.UserID, in.UserID)
	set(&us.SkillID, in.SkillID)
	return nil
}

type UserSkills struct {
	UserID uint        `json:"usuario_id"`
	Skills []SkillLink `json:"habilidades"`
}

type UserSkillService interface {
	CRUD[model.UserSkill, UserSkillInput]
	ListByUser(ctx context.Context, userID uint) (*UserSkills, error)
}

type userSkillService struct {
	*entityService[model.UserSkill, UserSkillInput]
	links repo.UserSkillRepo
}

func NewUserSkillService(links repo.UserSkillRepo, users repo.UserRepo, skills repo.SkillRepo) UserSkillService {
	s := newEntityService[model.UserSkill, UserSkillInput](links)
	s.check = func(ctx context.Context, next, cur *model.UserSkill) error {
		if cur == nil || next.UserID != cur.UserID {
			if err := mustExist(ctx, users, next.UserID, "user"); err != nil {
				return err
			}
		}
		if cur == nil || next.SkillID != cur.SkillID {
			if err := mustExist(ctx, skills, next.SkillID, "skill"); err != nil {
				return err
			}
		}
		if cur == nil || next.UserID != cur.UserID || next.SkillID != cur.SkillID {
			return mustBeUnique(ctx, links, repo.Filter{"usuario_id": next.UserID, "habilidad_id": next.SkillID}, next.ID,
				"the user already has this skill")
		}
		return nil
	}
	return &userSkillService{entityService: s, links: links}
}

func (s *userSkillService) ListByUser(ctx context.Context, userID uint) (*UserSkills, error) {
	if userID == 0 {
		return nil, invalidID()
	}
	list, err := s.links.List(ctx, repo.Filter{"usuario_id": userID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.NotFound("NOT_FOUND", "the user has no skills")
	}

	out := &UserSkills{UserID: userID, Skills: make([]SkillLink, 0, len(list))}
	for _, us := range list {
		out.Skills = append(out.Skills, link(us.ID, us.SkillID, us.Skill))
	}
	return out, nil
}

type ProjectSkillInput struct {
	ProjectID *uint `json:"proyecto_id" example:"1"`
	SkillID   *uint `json:"habilidad_id" example:"1"`
}

func (in ProjectSkillInput) validate(create bool) error {
	if !create {
		return nil
	}
	if in.ProjectID == nil {
		return missing("proyecto_id")
	}
	if in.SkillID == nil {
		return missing("habilidad_id")
	}
	return nil
}

func (in ProjectSkillInput) apply(ps *model.ProjectSkill) error {
	set(&ps.ProjectID, in.ProjectID)
	set(&ps.SkillID, in.SkillID)
	return nil
}

type ProjectSkills struct {
	ProjectID uint        `json:"proyecto_id"`
	Skills    []SkillLink `json:"habilidades"`
}

type ProjectSkillService interface {
	CRUD[model.ProjectSkill, ProjectSkillInput]
	ListByProject(ctx context.Context, projectID uint) (*ProjectSkills, error)
}

type projectSkillService struct {
	*entityService[model.ProjectSkill, ProjectSkillInput]
	links repo.ProjectSkillRepo
}

func NewProjectSkillService(links repo.ProjectSkillRepo, projects repo.ProjectRepo, skills repo.SkillRepo) ProjectSkillService {
	s := newEntityService[model.ProjectSkill, ProjectSkillInput](links)
	s.check = func(ctx context.Context, next, cur *model.ProjectSkill) error {
		if cur == nil || next.ProjectID != cur.ProjectID {
			if err := mustExist(ctx, projects, next.ProjectID, "project"); err != nil {
				return err
			}
		}
		if cur == nil || next.SkillID != cur.SkillID {
			if err := mustExist(ctx, skills, next.SkillID, "skill"); err != nil {
				return err
			}
		}
		if cur == nil || next.ProjectID != cur.ProjectID || next.SkillID != cur.SkillID {
			return mustBeUnique(ctx, links, repo.Filter{"proyecto_id": next.ProjectID, "habilidad_id": next.SkillID}, next.ID,
				"the project already requires this skill")
		}
		return nil
	}
	return &projectSkillService{entityService: s, links: links}
}

func (s *projectSkillService) ListByProject(ctx context.Context, projectID uint) (*ProjectSkills, error) {
	if projectID == 0 {
		return nil, invalidID()
	}
	list, err := s.links.List(ctx, repo.Filter{"proyecto_id": projectID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.NotFound("NOT_FOUND", "the project has no skills")
	}

	out := &ProjectSkills{ProjectID: projectID, Skills: make([]SkillLink, 0, len(list))}
	for _, ps := range list {
		out.Skills = append(out.Skills, link(ps.ID, ps.SkillID, ps.Skill))
	}
	return out, nil
}
