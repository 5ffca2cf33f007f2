// internal/openapi/handler.go
package openapi

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
)

// DocsHandler serves a rendered document. Both encodings are produced once.
type DocsHandler struct {
	json []byte
	yaml []byte
}

func NewDocsHandler(spec *openapi3.T) (*DocsHandler, error) {
	jsonDoc, err := GenerateJSON(spec)
	if err != nil {
		return nil, err
	}
	yamlDoc, err := GenerateYAML(spec)
	if err != nil {
		return nil, err
	}
	return &DocsHandler{json: jsonDoc, yaml: yamlDoc}, nil
}

// GET /openapi.json
func (h *DocsHandler) JSON(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.json)
}

// GET /openapi.yaml
func (h *DocsHandler) YAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", h.yaml)
}
