package router

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ds611b/practicas/docs"
	"github.com/ds611b/practicas/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiDoc struct {
	BasePath string                    `json:"basePath"`
	Paths    map[string]map[string]any `json:"paths"`
}

func readDoc(t *testing.T) apiDoc {
	t.Helper()
	var doc apiDoc
	require.NoError(t, sonic.UnmarshalString(docs.SwaggerInfo.ReadDoc(), &doc))
	return doc
}

func testRouter() *gin.Engine {
	cfg := &config.Config{}
	cfg.App.DocsPath = "swagger"
	cfg.App.PublicDir = "public"
	return NewRouter(RouterDeps{Config: cfg, Log: zap.NewNop()})
}

var ginParam = regexp.MustCompile(`:(\w+)`)

func TestAPIDoc_DescribesEveryRoute(t *testing.T) {
	doc := readDoc(t)
	require.Equal(t, "/api/v1", doc.BasePath)

	n := 0
	for _, rt := range testRouter().Routes() {
		if !strings.HasPrefix(rt.Path, doc.BasePath+"/") {
			continue
		}
		n++
		path := ginParam.ReplaceAllString(strings.TrimPrefix(rt.Path, doc.BasePath), "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "%s is not documented", path) {
			continue
		}
		assert.Contains(t, ops, strings.ToLower(rt.Method), "%s %s is not documented", rt.Method, path)
	}
	assert.Greater(t, n, 100)
}

func TestAPIDoc_Served(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/escuelas/{id}"`)
	assert.Contains(t, w.Body.String(), `"/bitacoras-proyecto/{id}/perfiles/{perfil_id}"`)
}
