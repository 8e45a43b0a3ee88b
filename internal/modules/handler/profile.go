package handler

import (
	"net/http"
	"time"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/modules/serializer"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	crud[model.Profile, service.ProfileInput]
	svc    service.ProfileService
	expire func() time.Duration
}

func NewProfileHandler(s service.ProfileService, expire func() time.Duration, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{crud: crud[model.Profile, service.ProfileInput]{svc: s, log: log}, svc: s, expire: expire}
}

// ListProfiles godoc
//
//	@Summary		List profiles
//	@Description	Get every profile
//	@Tags			perfiles-usuario
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.Profile
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	h.list(c, nil)
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Description	Get a profile by its ID
//	@Tags			perfiles-usuario
//	@Produce		json
//	@Param			id	path	int	true	"Profile ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Profile
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	h.get(c)
}

// CreateProfile godoc
//
//	@Summary		Create profile
//	@Tags			perfiles-usuario
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.ProfileInput	true	"Profile payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.Profile
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	h.create(c)
}

// UpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Partially update a profile. Omitted fields keep their stored value.
//	@Tags			perfiles-usuario
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Profile ID"	example(1)
//	@Param			payload	body	service.ProfileInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Profile
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	h.update(c)
}

// DeleteProfile godoc
//
//	@Summary		Delete profile
//	@Tags			perfiles-usuario
//	@Param			id	path	int	true	"Profile ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	h.delete(c)
}

type EmergencyContactHandler struct {
	crud[model.EmergencyContact, service.EmergencyContactInput]
	svc service.EmergencyContactService
}

func NewEmergencyContactHandler(s service.EmergencyContactService, log *zap.Logger) *EmergencyContactHandler {
	return &EmergencyContactHandler{crud: crud[model.EmergencyContact, service.EmergencyContactInput]{svc: s, log: log}, svc: s}
}

// ListEmergencyContacts godoc
//
//	@Summary		List emergency contacts
//	@Description	Get every emergency contact
//	@Tags			contactos-emergencia
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		model.EmergencyContact
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/contactos-emergencia [get]
func (h *EmergencyContactHandler) ListEmergencyContacts(c *gin.Context) {
	h.list(c, nil)
}

// GetEmergencyContact godoc
//
//	@Summary		Get emergency contact
//	@Description	Get an emergency contact by its ID
//	@Tags			contactos-emergencia
//	@Produce		json
//	@Param			id	path	int	true	"Emergency contact ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.EmergencyContact
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/contactos-emergencia/{id} [get]
func (h *EmergencyContactHandler) GetEmergencyContact(c *gin.Context) {
	h.get(c)
}

// CreateEmergencyContact godoc
//
//	@Summary		Create emergency contact
//	@Tags			contactos-emergencia
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.EmergencyContactInput	true	"Emergency contact payload"
//	@Security		BearerAuth
//	@Success		201	{object}	model.EmergencyContact
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/contactos-emergencia [post]
func (h *EmergencyContactHandler) CreateEmergencyContact(c *gin.Context) {
	h.create(c)
}

// UpdateEmergencyContact godoc
//
//	@Summary		Update emergency contact
//	@Description	Partially update an emergency contact. Omitted fields keep their stored value.
//	@Tags			contactos-emergencia
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int	true	"Emergency contact ID"	example(1)
//	@Param			payload	body	service.EmergencyContactInput	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	model.EmergencyContact
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/contactos-emergencia/{id} [put]
func (h *EmergencyContactHandler) UpdateEmergencyContact(c *gin.Context) {
	h.update(c)
}

// DeleteEmergencyContact godoc
//
//	@Summary		Delete emergency contact
//	@Tags			contactos-emergencia
//	@Param			id	path	int	true	"Emergency contact ID"	example(1)
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		409	{object}	serializer.ErrorResponse
//	@Router			/contactos-emergencia/{id} [delete]
func (h *EmergencyContactHandler) DeleteEmergencyContact(c *gin.Context) {
	h.delete(c)
}

// ListProfilesByGender godoc
//
//	@Summary		List profiles by gender
//	@Tags			perfiles-usuario
//	@Produce		json
//	@Param			genero	path	string	true	"Gender"	Enums(Masculino, Femenino, Otro)
//	@Security		BearerAuth
//	@Success		200	{array}		model.Profile
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario/genero/{genero} [get]
func (h *ProfileHandler) ListProfilesByGender(c *gin.Context) {
	g := c.Param("genero")
	switch g {
	case model.GenderMale, model.GenderFemale, model.GenderOther:
	default:
		c.JSON(http.StatusBadRequest, serializer.Err("VALIDATION_ERROR", "genero must be Masculino, Femenino or Otro", g))
		return
	}
	h.list(c, repo.Filter{"genero": g})
}

// GetProfileByUser godoc
//
//	@Summary		Get profile of a user
//	@Tags			perfiles-usuario
//	@Produce		json
//	@Param			usuario_id	path	int	true	"User ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Profile
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario/usuario/{usuario_id} [get]
func (h *ProfileHandler) GetProfileByUser(c *gin.Context) {
	userID, ok := pathID(c, "usuario_id")
	if !ok {
		return
	}
	out, err := h.svc.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// UploadProfilePhoto godoc
//
//	@Summary		Upload profile photo
//	@Description	Store an image in object storage and save its key in foto_perfil.
//	@Tags			perfiles-usuario
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"Profile ID"	example(1)
//	@Param			file	formData	file	true	"jpeg, png, webp or gif image"
//	@Security		BearerAuth
//	@Success		200	{object}	model.Profile
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		503	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario/{id}/foto [post]
func (h *ProfileHandler) UploadProfilePhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	out, err := h.svc.UploadPhoto(c.Request.Context(), id, fh)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetProfilePhoto godoc
//
//	@Summary		Get profile photo URL
//	@Description	Return a presigned download URL for the profile photo.
//	@Tags			perfiles-usuario
//	@Produce		json
//	@Param			id	path	int	true	"Profile ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.PhotoURL
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		503	{object}	serializer.ErrorResponse
//	@Router			/perfiles-usuario/{id}/foto [get]
func (h *ProfileHandler) GetProfilePhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	url, err := h.svc.PhotoURL(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.PhotoURL{URL: url, ExpiresIn: int(h.expire().Seconds())})
}

// ListEmergencyContactsByUser godoc
//
//	@Summary		List emergency contacts of a user
//	@Tags			contactos-emergencia
//	@Produce		json
//	@Param			id_usuario	path	int	true	"User ID"	example(1)
//	@Security		BearerAuth
//	@Success		200	{array}		model.EmergencyContact
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/contactos-emergencia/usuario/{id_usuario} [get]
func (h *EmergencyContactHandler) ListEmergencyContactsByUser(c *gin.Context) {
	userID, ok := pathID(c, "id_usuario")
	if !ok {
		return
	}
	out, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
