package handler

import (
	"net/http"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoleHandler struct {
	crud[model.Role, service.RoleInput]
	svc service.RoleService
}

func NewRoleHandler(s service.RoleService, log *zap.Logger) *RoleHandler {
	return &RoleHandler{crud: crud[model.Role, service.RoleInput]{svc: s, log: log}, svc: s}
}

// ListRoles godoc
//
//	@Summary		List roles
//	@Description	Get every role
//	@Tags			roles
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Role
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	h.list(c, nil)
}

// GetRole godoc
//
//	@Summary		Get role
//	@Description	Get a role by its ID
//	@Tags			roles
//	@Produce		json
//	@Param			id	path	int	true	"Role ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Role
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/roles/{id} [get]
func (h *RoleHandler) GetRole(c *gin.Context) {
	h.get(c)
}

// CreateRole godoc
//
//	@Summary		Create role
//	@Tags			roles
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.RoleInput	true	"Role payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Role
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	h.create(c)
}

// UpdateRole godoc
//
//	@Summary		Update role
//	@Description	Partially update a role. Omitted fields keep their stored value.
//	@Tags			roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Role ID"	example(1)
//	@Param			payload	body	service.RoleInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Role
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	h.update(c)
}

// DeleteRole godoc
//
//	@Summary		Delete role
//	@Tags			roles
//	@Param			id	path	int	true	"Role ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	h.delete(c)
}

type UserHandler struct {
	crud[model.User, service.UserInput]
	svc service.UserService
}

func NewUserHandler(s service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{crud: crud[model.User, service.UserInput]{svc: s, log: log}, svc: s}
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	Get every user
//	@Tags			usuarios
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.User
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/usuarios [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	h.list(c, nil)
}

// GetUser godoc
//
//	@Summary		Get user
//	@Description	Get a user by its ID
//	@Tags			usuarios
//	@Produce		json
//	@Param			id	path	int	true	"User ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.User
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/usuarios/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	h.get(c)
}

// CreateUser godoc
//
//	@Summary		Create user
//	@Tags			usuarios
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.UserInput	true	"User payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.User
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/usuarios [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	h.create(c)
}

// UpdateUser godoc
//
//	@Summary		Update user
//	@Description	Partially update a user. Omitted fields keep their stored value.
//	@Tags			usuarios
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"User ID"	example(1)
//	@Param			payload	body	service.UserInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.User
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/usuarios/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	h.update(c)
}

// DeleteUser godoc
//
//	@Summary		Delete user
//	@Tags			usuarios
//	@Param			id	path	int	true	"User ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/usuarios/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	h.delete(c)
}

// UpdateUserProfile godoc
//
//	@Summary		Update user and profile
//	@Description	Update a user and create or update its profile in one transaction.
//	@Description	Creating the profile requires carnet.
//	@Tags			usuarios
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"User ID"	example(1)
//	@Param			payload	body	service.UserProfileInput	true	"User and profile fields"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Profile
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/usuarios/{id}/perfil [put]
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in service.UserProfileInput
	if !bind(c, &in) {
		return
	}

	out, err := h.svc.UpdateWithProfile(c.Request.Context(), id, in)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
