package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/modules/serializer"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// crud holds the handler bodies shared by every resource. The exported, annotated
// methods on each resource handler delegate here.
type crud[T any, I any] struct {
	svc service.CRUD[T, I]
	log *zap.Logger
}

func (h crud[T, I]) list(c *gin.Context, f repo.Filter) {
	out, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h crud[T, I]) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h crud[T, I]) create(c *gin.Context) {
	var in I
	if !bind(c, &in) {
		return
	}
	out, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h crud[T, I]) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in I
	if !bind(c, &in) {
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h crud[T, I]) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses a positive integer path parameter, answering 400 when it is not one.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, serializer.Err("INVALID_ID", name+" must be a positive integer", raw))
		return 0, false
	}
	return uint(id), true
}

func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid request body", err))
		return false
	}
	return true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondErr writes the error body for err. 5xx responses are logged and never expose the cause message.
func respondErr(c *gin.Context, log *zap.Logger, err error) {
	ae := apperrors.As(err)
	status := statusOf(ae)

	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("code", ae.Code),
			zap.Error(err),
		)
		if status == http.StatusInternalServerError {
			c.JSON(status, serializer.Err(ae.Code, "internal server error", ae.Details()))
			return
		}
	}
	c.JSON(status, serializer.Err(ae.Code, ae.Message, ae.Details()))
}
