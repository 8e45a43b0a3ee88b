package serializer

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErr_DetailsByMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	gin.SetMode(gin.DebugMode)
	res := ParamErr("", errors.New("json: bad input"))
	assert.False(t, res.Success)
	assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
	assert.Equal(t, "parameter error", res.Error.Message)
	require.NotNil(t, res.Error.Details)
	assert.Equal(t, "json: bad input", *res.Error.Details)

	gin.SetMode(gin.ReleaseMode)
	res = ParamErr("bad body", errors.New("json: bad input"))
	assert.Nil(t, res.Error.Details)
}

func TestAuthErr(t *testing.T) {
	res := AuthErr("")
	assert.Equal(t, "UNAUTHORIZED", res.Error.Code)
	assert.Equal(t, "authentication error", res.Error.Message)
	assert.Nil(t, res.Error.Details)
}
