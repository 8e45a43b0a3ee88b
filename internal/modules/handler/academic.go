package handler

import (
	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SchoolHandler struct {
	crud[model.School, service.SchoolInput]
	svc service.SchoolService
}

func NewSchoolHandler(s service.SchoolService, log *zap.Logger) *SchoolHandler {
	return &SchoolHandler{crud: crud[model.School, service.SchoolInput]{svc: s, log: log}, svc: s}
}

// ListSchools godoc
//
//	@Summary		List schools
//	@Description	Get every school
//	@Tags			escuelas
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.School
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/escuelas [get]
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	h.list(c, nil)
}

// GetSchool godoc
//
//	@Summary		Get school
//	@Description	Get a school by its ID
//	@Tags			escuelas
//	@Produce		json
//	@Param			id	path	int	true	"School ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.School
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/escuelas/{id} [get]
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	h.get(c)
}

// CreateSchool godoc
//
//	@Summary		Create school
//	@Tags			escuelas
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.SchoolInput	true	"School payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.School
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/escuelas [post]
func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	h.create(c)
}

// UpdateSchool godoc
//
//	@Summary		Update school
//	@Description	Partially update a school. Omitted fields keep their stored value.
//	@Tags			escuelas
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"School ID"	example(1)
//	@Param			payload	body	service.SchoolInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.School
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/escuelas/{id} [put]
func (h *SchoolHandler) UpdateSchool(c *gin.Context) {
	h.update(c)
}

// DeleteSchool godoc
//
//	@Summary		Delete school
//	@Tags			escuelas
//	@Param			id	path	int	true	"School ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/escuelas/{id} [delete]
func (h *SchoolHandler) DeleteSchool(c *gin.Context) {
	h.delete(c)
}

type CareerHandler struct {
	crud[model.Career, service.CareerInput]
	svc service.CareerService
}

func NewCareerHandler(s service.CareerService, log *zap.Logger) *CareerHandler {
	return &CareerHandler{crud: crud[model.Career, service.CareerInput]{svc: s, log: log}, svc: s}
}

// ListCareers godoc
//
//	@Summary		List careers
//	@Description	Get every career
//	@Tags			carreras
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Career
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/carreras [get]
func (h *CareerHandler) ListCareers(c *gin.Context) {
	h.list(c, nil)
}

// GetCareer godoc
//
//	@Summary		Get career
//	@Description	Get a career by its ID
//	@Tags			carreras
//	@Produce		json
//	@Param			id	path	int	true	"Career ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Career
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/carreras/{id} [get]
func (h *CareerHandler) GetCareer(c *gin.Context) {
	h.get(c)
}

// CreateCareer godoc
//
//	@Summary		Create career
//	@Tags			carreras
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.CareerInput	true	"Career payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Career
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/carreras [post]
func (h *CareerHandler) CreateCareer(c *gin.Context) {
	h.create(c)
}

// UpdateCareer godoc
//
//	@Summary		Update career
//	@Description	Partially update a career. Omitted fields keep their stored value.
//	@Tags			carreras
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Career ID"	example(1)
//	@Param			payload	body	service.CareerInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Career
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/carreras/{id} [put]
func (h *CareerHandler) UpdateCareer(c *gin.Context) {
	h.update(c)
}

// DeleteCareer godoc
//
//	@Summary		Delete career
//	@Tags			carreras
//	@Param			id	path	int	true	"Career ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/carreras/{id} [delete]
func (h *CareerHandler) DeleteCareer(c *gin.Context) {
	h.delete(c)
}

type CoordinatorHandler struct {
	crud[model.Coordinator, service.CoordinatorInput]
	svc service.CoordinatorService
}

func NewCoordinatorHandler(s service.CoordinatorService, log *zap.Logger) *CoordinatorHandler {
	return &CoordinatorHandler{crud: crud[model.Coordinator, service.CoordinatorInput]{svc: s, log: log}, svc: s}
}

// ListCoordinators godoc
//
//	@Summary		List career coordinators
//	@Description	Get every career coordinator
//	@Tags			coordinadores-carrera
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Coordinator
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/coordinadores-carrera [get]
func (h *CoordinatorHandler) ListCoordinators(c *gin.Context) {
	h.list(c, nil)
}

// GetCoordinator godoc
//
//	@Summary		Get career coordinator
//	@Description	Get a career coordinator by its ID
//	@Tags			coordinadores-carrera
//	@Produce		json
//	@Param			id	path	int	true	"Career coordinator ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Coordinator
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/coordinadores-carrera/{id} [get]
func (h *CoordinatorHandler) GetCoordinator(c *gin.Context) {
	h.get(c)
}

// CreateCoordinator godoc
//
//	@Summary		Create career coordinator
//	@Tags			coordinadores-carrera
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.CoordinatorInput	true	"Career coordinator payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Coordinator
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/coordinadores-carrera [post]
func (h *CoordinatorHandler) CreateCoordinator(c *gin.Context) {
	h.create(c)
}

// UpdateCoordinator godoc
//
//	@Summary		Update career coordinator
//	@Description	Partially update a career coordinator. Omitted fields keep their stored value.
//	@Tags			coordinadores-carrera
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Career coordinator ID"	example(1)
//	@Param			payload	body	service.CoordinatorInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Coordinator
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/coordinadores-carrera/{id} [put]
func (h *CoordinatorHandler) UpdateCoordinator(c *gin.Context) {
	h.update(c)
}

// DeleteCoordinator godoc
//
//	@Summary		Delete career coordinator
//	@Tags			coordinadores-carrera
//	@Param			id	path	int	true	"Career coordinator ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/coordinadores-carrera/{id} [delete]
func (h *CoordinatorHandler) DeleteCoordinator(c *gin.Context) {
	h.delete(c)
}

// ListCareersBySchool godoc
//
//	@Summary		List careers of a school
//	@Tags			carreras
//	@Produce		json
//	@Param			id	path	int	true	"School ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{array}		model.Career
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/carreras/escuela/{id} [get]
func (h *CareerHandler) ListCareersBySchool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.list(c, repo.Filter{"id_escuela": id})
}

// ListCoordinatorsByCareer godoc
//
//	@Summary		List coordinators of a career
//	@Tags			coordinadores-carrera
//	@Produce		json
//	@Param			id	path	int	true	"Career ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{array}		model.Coordinator
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/coordinadores-carrera/carrera/{id} [get]
func (h *CoordinatorHandler) ListCoordinatorsByCareer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.list(c, repo.Filter{"id_carrera": id})
}
