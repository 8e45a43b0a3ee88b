package handler

import (
	"net/http"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SkillHandler struct {
	crud[model.Skill, service.SkillInput]
	svc service.SkillService
}

func NewSkillHandler(s service.SkillService, log *zap.Logger) *SkillHandler {
	return &SkillHandler{crud: crud[model.Skill, service.SkillInput]{svc: s, log: log}, svc: s}
}

// ListSkills godoc
//
//	@Summary		List skills
//	@Description	Get every skill
//	@Tags			habilidades
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Skill
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/habilidades [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	h.list(c, nil)
}

// GetSkill godoc
//
//	@Summary		Get skill
//	@Description	Get a skill by its ID
//	@Tags			habilidades
//	@Produce		json
//	@Param			id	path	int	true	"Skill ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Skill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/habilidades/{id} [get]
func (h *SkillHandler) GetSkill(c *gin.Context) {
	h.get(c)
}

// CreateSkill godoc
//
//	@Summary		Create skill
//	@Tags			habilidades
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.SkillInput	true	"Skill payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Skill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/habilidades [post]
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	h.create(c)
}

// UpdateSkill godoc
//
//	@Summary		Update skill
//	@Description	Partially update a skill. Omitted fields keep their stored value.
//	@Tags			habilidades
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Skill ID"	example(1)
//	@Param			payload	body	service.SkillInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Skill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/habilidades/{id} [put]
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	h.update(c)
}

// DeleteSkill godoc
//
//	@Summary		Delete skill
//	@Tags			habilidades
//	@Param			id	path	int	true	"Skill ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/habilidades/{id} [delete]
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	h.delete(c)
}

type UserSkillHandler struct {
	crud[model.UserSkill, service.UserSkillInput]
	svc service.UserSkillService
}

func NewUserSkillHandler(s service.UserSkillService, log *zap.Logger) *UserSkillHandler {
	return &UserSkillHandler{crud: crud[model.UserSkill, service.UserSkillInput]{svc: s, log: log}, svc: s}
}

// ListUserSkills godoc
//
//	@Summary		List user skills
//	@Description	Get every user skill
//	@Tags			usuarios-habilidades
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.UserSkill
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/usuarios-habilidades [get]
func (h *UserSkillHandler) ListUserSkills(c *gin.Context) {
	h.list(c, nil)
}

// GetUserSkill godoc
//
//	@Summary		Get user skill
//	@Description	Get a user skill by its ID
//	@Tags			usuarios-habilidades
//	@Produce		json
//	@Param			id	path	int	true	"User skill ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.UserSkill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/usuarios-habilidades/{id} [get]
func (h *UserSkillHandler) GetUserSkill(c *gin.Context) {
	h.get(c)
}

// CreateUserSkill godoc
//
//	@Summary		Create user skill
//	@Tags			usuarios-habilidades
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.UserSkillInput	true	"User skill payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.UserSkill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/usuarios-habilidades [post]
func (h *UserSkillHandler) CreateUserSkill(c *gin.Context) {
	h.create(c)
}

// UpdateUserSkill godoc
//
//	@Summary		Update user skill
//	@Description	Partially update a user skill. Omitted fields keep their stored value.
//	@Tags			usuarios-habilidades
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"User skill ID"	example(1)
//	@Param			payload	body	service.UserSkillInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.UserSkill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/usuarios-habilidades/{id} [put]
func (h *UserSkillHandler) UpdateUserSkill(c *gin.Context) {
	h.update(c)
}

// DeleteUserSkill godoc
//
//	@Summary		Delete user skill
//	@Tags			usuarios-habilidades
//	@Param			id	path	int	true	"User skill ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/usuarios-habilidades/{id} [delete]
func (h *UserSkillHandler) DeleteUserSkill(c *gin.Context) {
	h.delete(c)
}

type ProjectSkillHandler struct {
	crud[model.ProjectSkill, service.ProjectSkillInput]
	svc service.ProjectSkillService
}

func NewProjectSkillHandler(s service.ProjectSkillService, log *zap.Logger) *ProjectSkillHandler {
	return &ProjectSkillHandler{crud: crud[model.ProjectSkill, service.ProjectSkillInput]{svc: s, log: log}, svc: s}
}

// ListProjectSkills godoc
//
//	@Summary		List project skills
//	@Description	Get every project skill
//	@Tags			proyectos-instituciones-habilidades
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.ProjectSkill
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/proyectos-instituciones-habilidades [get]
func (h *ProjectSkillHandler) ListProjectSkills(c *gin.Context) {
	h.list(c, nil)
}

// GetProjectSkill godoc
//
//	@Summary		Get project skill
//	@Description	Get a project skill by its ID
//	@Tags			proyectos-instituciones-habilidades
//	@Produce		json
//	@Param			id	path	int	true	"Project skill ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.ProjectSkill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/proyectos-instituciones-habilidades/{id} [get]
func (h *ProjectSkillHandler) GetProjectSkill(c *gin.Context) {
	h.get(c)
}

// CreateProjectSkill godoc
//
//	@Summary		Create project skill
//	@Tags			proyectos-instituciones-habilidades
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.ProjectSkillInput	true	"Project skill payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.ProjectSkill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/proyectos-instituciones-habilidades [post]
func (h *ProjectSkillHandler) CreateProjectSkill(c *gin.Context) {
	h.create(c)
}

// UpdateProjectSkill godoc
//
//	@Summary		Update project skill
//	@Description	Partially update a project skill. Omitted fields keep their stored value.
//	@Tags			proyectos-instituciones-habilidades
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Project skill ID"	example(1)
//	@Param			payload	body	service.ProjectSkillInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.ProjectSkill
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/proyectos-instituciones-habilidades/{id} [put]
func (h *ProjectSkillHandler) UpdateProjectSkill(c *gin.Context) {
	h.update(c)
}

// DeleteProjectSkill godoc
//
//	@Summary		Delete project skill
//	@Tags			proyectos-instituciones-habilidades
//	@Param			id	path	int	true	"Project skill ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/proyectos-instituciones-habilidades/{id} [delete]
func (h *ProjectSkillHandler) DeleteProjectSkill(c *gin.Context) {
	h.delete(c)
}

// ListSkillsByUser godoc
//
//	@Summary		List skills of a user
//	@Tags			usuarios-habilidades
//	@Produce		json
//	@Param			id	path	int	true	"User ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	service.UserSkills
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/usuarios-habilidades/usuario/{id} [get]
func (h *UserSkillHandler) ListSkillsByUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.ListByUser(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListSkillsByProject godoc
//
//	@Summary		List skills a project requires
//	@Tags			proyectos-instituciones-habilidades
//	@Produce		json
//	@Param			id	path	int	true	"Project ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	service.ProjectSkills
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/proyectos-instituciones-habilidades/proyecto/{id} [get]
func (h *ProjectSkillHandler) ListSkillsByProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.ListByProject(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
