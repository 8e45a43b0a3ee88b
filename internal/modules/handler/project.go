package handler

import (
	"net/http"
	"strconv"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/modules/serializer"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InstitutionManagerHandler struct {
	crud[model.InstitutionManager, service.InstitutionManagerInput]
	svc service.InstitutionManagerService
}

func NewInstitutionManagerHandler(s service.InstitutionManagerService, log *zap.Logger) *InstitutionManagerHandler {
	return &InstitutionManagerHandler{crud: crud[model.InstitutionManager, service.InstitutionManagerInput]{svc: s, log: log}, svc: s}
}

// ListInstitutionManagers godoc
//
//	@Summary		List institution managers
//	@Description	Get every institution manager
//	@Tags			encargados-institucion
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.InstitutionManager
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/encargados-institucion [get]
func (h *InstitutionManagerHandler) ListInstitutionManagers(c *gin.Context) {
	h.list(c, nil)
}

// GetInstitutionManager godoc
//
//	@Summary		Get institution manager
//	@Description	Get an institution manager by its ID
//	@Tags			encargados-institucion
//	@Produce		json
//	@Param			id	path	int	true	"Institution manager ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.InstitutionManager
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/encargados-institucion/{id} [get]
func (h *InstitutionManagerHandler) GetInstitutionManager(c *gin.Context) {
	h.get(c)
}

// CreateInstitutionManager godoc
//
//	@Summary		Create institution manager
//	@Tags			encargados-institucion
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.InstitutionManagerInput	true	"Institution manager payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.InstitutionManager
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/encargados-institucion [post]
func (h *InstitutionManagerHandler) CreateInstitutionManager(c *gin.Context) {
	h.create(c)
}

// UpdateInstitutionManager godoc
//
//	@Summary		Update institution manager
//	@Description	Partially update an institution manager. Omitted fields keep their stored value.
//	@Tags			encargados-institucion
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Institution manager ID"	example(1)
//	@Param			payload	body	service.InstitutionManagerInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.InstitutionManager
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/encargados-institucion/{id} [put]
func (h *InstitutionManagerHandler) UpdateInstitutionManager(c *gin.Context) {
	h.update(c)
}

// DeleteInstitutionManager godoc
//
//	@Summary		Delete institution manager
//	@Tags			encargados-institucion
//	@Param			id	path	int	true	"Institution manager ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/encargados-institucion/{id} [delete]
func (h *InstitutionManagerHandler) DeleteInstitutionManager(c *gin.Context) {
	h.delete(c)
}

type InstitutionHandler struct {
	crud[model.Institution, service.InstitutionInput]
	svc service.InstitutionService
}

func NewInstitutionHandler(s service.InstitutionService, log *zap.Logger) *InstitutionHandler {
	return &InstitutionHandler{crud: crud[model.Institution, service.InstitutionInput]{svc: s, log: log}, svc: s}
}

// ListInstitutions godoc
//
//	@Summary		List institutions
//	@Description	Get every institution
//	@Tags			instituciones
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Institution
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/instituciones [get]
func (h *InstitutionHandler) ListInstitutions(c *gin.Context) {
	h.list(c, nil)
}

// GetInstitution godoc
//
//	@Summary		Get institution
//	@Description	Get an institution by its ID
//	@Tags			instituciones
//	@Produce		json
//	@Param			id	path	int	true	"Institution ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Institution
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/instituciones/{id} [get]
func (h *InstitutionHandler) GetInstitution(c *gin.Context) {
	h.get(c)
}

// CreateInstitution godoc
//
//	@Summary		Create institution
//	@Tags			instituciones
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.InstitutionInput	true	"Institution payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Institution
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/instituciones [post]
func (h *InstitutionHandler) CreateInstitution(c *gin.Context) {
	h.create(c)
}

// UpdateInstitution godoc
//
//	@Summary		Update institution
//	@Description	Partially update an institution. Omitted fields keep their stored value.
//	@Tags			instituciones
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Institution ID"	example(1)
//	@Param			payload	body	service.InstitutionInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Institution
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/instituciones/{id} [put]
func (h *InstitutionHandler) UpdateInstitution(c *gin.Context) {
	h.update(c)
}

// DeleteInstitution godoc
//
//	@Summary		Delete institution
//	@Tags			instituciones
//	@Param			id	path	int	true	"Institution ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/instituciones/{id} [delete]
func (h *InstitutionHandler) DeleteInstitution(c *gin.Context) {
	h.delete(c)
}

type ProjectHandler struct {
	crud[model.Project, service.ProjectInput]
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{crud: crud[model.Project, service.ProjectInput]{svc: s, log: log}, svc: s}
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	Get every project
//	@Tags			proyectos-institucion
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Project
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/proyectos-institucion [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	h.list(c, nil)
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get a project by its ID
//	@Tags			proyectos-institucion
//	@Produce		json
//	@Param			id	path	int	true	"Project ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Project
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/proyectos-institucion/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	h.get(c)
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Tags			proyectos-institucion
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.ProjectInput	true	"Project payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Project
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/proyectos-institucion [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	h.create(c)
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Partially update a project. Omitted fields keep their stored value.
//	@Tags			proyectos-institucion
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Project ID"	example(1)
//	@Param			payload	body	service.ProjectInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Project
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/proyectos-institucion/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	h.update(c)
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Tags			proyectos-institucion
//	@Param			id	path	int	true	"Project ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/proyectos-institucion/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	h.delete(c)
}

type ApplicationHandler struct {
	crud[model.Application, service.ApplicationInput]
	svc service.ApplicationService
}

func NewApplicationHandler(s service.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{crud: crud[model.Application, service.ApplicationInput]{svc: s, log: log}, svc: s}
}

// ListApplications godoc
//
//	@Summary		List applications
//	@Description	Get every application
//	@Tags			aplicaciones-estudiantes
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Application
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/aplicaciones-estudiantes [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	h.list(c, nil)
}

// GetApplication godoc
//
//	@Summary		Get application
//	@Description	Get an application by its ID
//	@Tags			aplicaciones-estudiantes
//	@Produce		json
//	@Param			id	path	int	true	"Application ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Application
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/aplicaciones-estudiantes/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	h.get(c)
}

// CreateApplication godoc
//
//	@Summary		Create application
//	@Tags			aplicaciones-estudiantes
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.ApplicationInput	true	"Application payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Application
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/aplicaciones-estudiantes [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	h.create(c)
}

// UpdateApplication godoc
//
//	@Summary		Update application
//	@Description	Partially update an application. Omitted fields keep their stored value.
//	@Tags			aplicaciones-estudiantes
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Application ID"	example(1)
//	@Param			payload	body	service.ApplicationInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Application
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/aplicaciones-estudiantes/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	h.update(c)
}

// DeleteApplication godoc
//
//	@Summary		Delete application
//	@Tags			aplicaciones-estudiantes
//	@Param			id	path	int	true	"Application ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/aplicaciones-estudiantes/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	h.delete(c)
}

func validStatus(c *gin.Context) (string, bool) {
	s := c.Param("estado")
	switch s {
	case model.StatusPending, model.StatusApproved, model.StatusRejected:
		return s, true
	}
	c.JSON(http.StatusBadRequest, serializer.Err("VALIDATION_ERROR", "estado must be Pendiente, Aprobado or Rechazado", s))
	return "", false
}

// ListInstitutionsByStatus godoc
//
//	@Summary		List institutions by status
//	@Tags			instituciones
//	@Produce		json
//	@Param			estado	path	string	true	"Status"	Enums(Pendiente, Aprobado, Rechazado)
//	@Security		BearerAuth
//	@Success		200	{array}		model.Institution
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/instituciones/estado/{estado} [get]
func (h *InstitutionHandler) ListInstitutionsByStatus(c *gin.Context) {
	status, ok := validStatus(c)
	if !ok {
		return
	}
	h.list(c, repo.Filter{"estado": status})
}

// ListProjectsByStatus godoc
//
//	@Summary		List projects by status and availability
//	@Tags			proyectos-institucion
//	@Produce		json
//	@Param			estado			path	string	true	"Status"		Enums(Pendiente, Aprobado, Rechazado)
//	@Param			disponibilidad	path	bool	true	"Availability"	example(true)
//	@Security		BearerAuth
//	@Success		200	{array}		model.Project
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/proyectos-institucion/estado/{estado}/{disponibilidad} [get]
func (h *ProjectHandler) ListProjectsByStatus(c *gin.Context) {
	status, ok := validStatus(c)
	if !ok {
		return
	}
	raw := c.Param("disponibilidad")
	available, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err("VALIDATION_ERROR", "disponibilidad must be true or false", raw))
		return
	}
	h.list(c, repo.Filter{"estado": status, "disponibilidad": available})
}

// ListProjectsByInstitution godoc
//
//	@Summary		List projects of an institution
//	@Tags			proyectos-institucion
//	@Produce		json
//	@Param			id	path	int	true	"Institution ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{array}		model.Project
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/proyectos-institucion/institucion/{id} [get]
func (h *ProjectHandler) ListProjectsByInstitution(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.list(c, repo.Filter{"institucion_id": id})
}

// ListApplicationsByStudent godoc
//
//	@Summary		List applications of a student
//	@Description	Applications with their project and a summary of the student.
//	@Tags			aplicaciones-estudiantes
//	@Produce		json
//	@Param			id	path	int	true	"Student (user) ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{array}		service.StudentApplication
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/aplicaciones-estudiantes/estudiante/{id} [get]
func (h *ApplicationHandler) ListApplicationsByStudent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.ListByStudent(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListApplicantsByProject godoc
//
//	@Summary		List applicants of a project
//	@Description	The project and every student that applied to it, with the application id and status.
//	@Tags			aplicaciones-estudiantes
//	@Produce		json
//	@Param			id	path	int	true	"Project ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	service.ProjectApplicants
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/aplicaciones-estudiantes/proyecto/{id} [get]
func (h *ApplicationHandler) ListApplicantsByProject(c *gin.Context) {
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
