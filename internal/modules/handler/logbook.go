package handler

import (
	"net/http"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProjectActivityHandler struct {
	crud[model.ProjectActivity, service.ProjectActivityInput]
	svc service.ProjectActivityService
}

func NewProjectActivityHandler(s service.ProjectActivityService, log *zap.Logger) *ProjectActivityHandler {
	return &ProjectActivityHandler{crud: crud[model.ProjectActivity, service.ProjectActivityInput]{svc: s, log: log}, svc: s}
}

// ListProjectActivities godoc
//
//	@Summary		List project activities
//	@Description	Get every project activity
//	@Tags			actividades-proyecto
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.ProjectActivity
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/actividades-proyecto [get]
func (h *ProjectActivityHandler) ListProjectActivities(c *gin.Context) {
	h.list(c, nil)
}

// GetProjectActivity godoc
//
//	@Summary		Get project activity
//	@Description	Get a project activity by its ID
//	@Tags			actividades-proyecto
//	@Produce		json
//	@Param			id	path	int	true	"Project activity ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.ProjectActivity
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/actividades-proyecto/{id} [get]
func (h *ProjectActivityHandler) GetProjectActivity(c *gin.Context) {
	h.get(c)
}

// CreateProjectActivity godoc
//
//	@Summary		Create project activity
//	@Tags			actividades-proyecto
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.ProjectActivityInput	true	"Project activity payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.ProjectActivity
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/actividades-proyecto [post]
func (h *ProjectActivityHandler) CreateProjectActivity(c *gin.Context) {
	h.create(c)
}

// UpdateProjectActivity godoc
//
//	@Summary		Update project activity
//	@Description	Partially update a project activity. Omitted fields keep their stored value.
//	@Tags			actividades-proyecto
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Project activity ID"	example(1)
//	@Param			payload	body	service.ProjectActivityInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.ProjectActivity
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/actividades-proyecto/{id} [put]
func (h *ProjectActivityHandler) UpdateProjectActivity(c *gin.Context) {
	h.update(c)
}

// DeleteProjectActivity godoc
//
//	@Summary		Delete project activity
//	@Tags			actividades-proyecto
//	@Param			id	path	int	true	"Project activity ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/actividades-proyecto/{id} [delete]
func (h *ProjectActivityHandler) DeleteProjectActivity(c *gin.Context) {
	h.delete(c)
}

type LogbookHandler struct {
	crud[model.Logbook, service.LogbookInput]
	svc service.LogbookService
}

func NewLogbookHandler(s service.LogbookService, log *zap.Logger) *LogbookHandler {
	return &LogbookHandler{crud: crud[model.Logbook, service.LogbookInput]{svc: s, log: log}, svc: s}
}

// ListLogbooks godoc
//
//	@Summary		List logbooks
//	@Description	Get every logbook
//	@Tags			bitacoras-proyecto
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Logbook
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/bitacoras-proyecto [get]
func (h *LogbookHandler) ListLogbooks(c *gin.Context) {
	h.list(c, nil)
}

// GetLogbook godoc
//
//	@Summary		Get logbook
//	@Description	Get a logbook by its ID
//	@Tags			bitacoras-proyecto
//	@Produce		json
//	@Param			id	path	int	true	"Logbook ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Logbook
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/bitacoras-proyecto/{id} [get]
func (h *LogbookHandler) GetLogbook(c *gin.Context) {
	h.get(c)
}

// CreateLogbook godoc
//
//	@Summary		Create logbook
//	@Tags			bitacoras-proyecto
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.LogbookInput	true	"Logbook payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Logbook
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/bitacoras-proyecto [post]
func (h *LogbookHandler) CreateLogbook(c *gin.Context) {
	h.create(c)
}

// UpdateLogbook godoc
//
//	@Summary		Update logbook
//	@Description	Partially update a logbook. Omitted fields keep their stored value.
//	@Tags			bitacoras-proyecto
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Logbook ID"	example(1)
//	@Param			payload	body	service.LogbookInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Logbook
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/bitacoras-proyecto/{id} [put]
func (h *LogbookHandler) UpdateLogbook(c *gin.Context) {
	h.update(c)
}

// DeleteLogbook godoc
//
//	@Summary		Delete logbook
//	@Tags			bitacoras-proyecto
//	@Param			id	path	int	true	"Logbook ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/bitacoras-proyecto/{id} [delete]
func (h *LogbookHandler) DeleteLogbook(c *gin.Context) {
	h.delete(c)
}

type LogbookItemHandler struct {
	crud[model.LogbookItem, service.LogbookItemInput]
	svc service.LogbookItemService
}

func NewLogbookItemHandler(s service.LogbookItemService, log *zap.Logger) *LogbookItemHandler {
	return &LogbookItemHandler{crud: crud[model.LogbookItem, service.LogbookItemInput]{svc: s, log: log}, svc: s}
}

// ListLogbookItems godoc
//
//	@Summary		List logbook items
//	@Description	Get every logbook item
//	@Tags			bitacora-items
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.LogbookItem
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/bitacora-items [get]
func (h *LogbookItemHandler) ListLogbookItems(c *gin.Context) {
	h.list(c, nil)
}

// GetLogbookItem godoc
//
//	@Summary		Get logbook item
//	@Description	Get a logbook item by its ID
//	@Tags			bitacora-items
//	@Produce		json
//	@Param			id	path	int	true	"Logbook item ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.LogbookItem
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/bitacora-items/{id} [get]
func (h *LogbookItemHandler) GetLogbookItem(c *gin.Context) {
	h.get(c)
}

// CreateLogbookItem godoc
//
//	@Summary		Create logbook item
//	@Tags			bitacora-items
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.LogbookItemInput	true	"Logbook item payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.LogbookItem
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/bitacora-items [post]
func (h *LogbookItemHandler) CreateLogbookItem(c *gin.Context) {
	h.create(c)
}

// UpdateLogbookItem godoc
//
//	@Summary		Update logbook item
//	@Description	Partially update a logbook item. Omitted fields keep their stored value.
//	@Tags			bitacora-items
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Logbook item ID"	example(1)
//	@Param			payload	body	service.LogbookItemInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.LogbookItem
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/bitacora-items/{id} [put]
func (h *LogbookItemHandler) UpdateLogbookItem(c *gin.Context) {
	h.update(c)
}

// DeleteLogbookItem godoc
//
//	@Summary		Delete logbook item
//	@Tags			bitacora-items
//	@Param			id	path	int	true	"Logbook item ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/bitacora-items/{id} [delete]
func (h *LogbookItemHandler) DeleteLogbookItem(c *gin.Context) {
	h.delete(c)
}

type AssignProfileReq struct {
	ProfileID uint `json:"id_perfil_usuario" binding:"required,min=1" example:"1"`
}

// AssignLogbookProfile godoc
//
//	@Summary		Assign a profile to a logbook
//	@Tags			bitacoras-proyecto
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Logbook ID"	example(1)
//	@Param			payload	body	handler.AssignProfileReq	true	"Profile to assign"
//	@Security		BearerAuth
//	@Success		201	{object}	model.LogbookProfile
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/bitacoras-proyecto/{id}/perfiles [post]
func (h *LogbookHandler) AssignLogbookProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AssignProfileReq
	if !bind(c, &req) {
		return
	}

	out, err := h.svc.AssignProfile(c.Request.Context(), id, req.ProfileID)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// UnassignLogbookProfile godoc
//
//	@Summary		Remove a profile from a logbook
//	@Tags			bitacoras-proyecto
//	@Param			id			path	int	true	"Logbook ID"	example(1)
//	@Param			perfil_id	path	int	true	"Profile ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/bitacoras-proyecto/{id}/perfiles/{perfil_id} [delete]
func (h *LogbookHandler) UnassignLogbookProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	profileID, ok := pathID(c, "perfil_id")
	if !ok {
		return
	}
	if err := h.svc.UnassignProfile(c.Request.Context(), id, profileID); err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
