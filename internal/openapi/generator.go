// internal/openapi/generator.go
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Info struct {
	Title       string
	Version     string
	Description string
}

// Param documents a query parameter.
type Param struct {
	Name        string
	Type        string // string, integer, number or boolean
	Array       bool
	Description string
}

// Operation documents one route. Body and Response are sample values whose
// types describe the JSON payloads; Response is wrapped in the API envelope.
type Operation struct {
	Summary  string
	Tag      string
	Query    []Param
	Body     interface{}
	Response interface{}
	Status   int
	Session  bool
}

// Key identifies an operation by method and gin path, e.g. "GET /v1/products/:slug".
func Key(method, path string) string {
	return method + " " + path
}

type Generator struct {
	info Info
}

func NewGenerator(info Info) *Generator {
	return &Generator{info: info}
}

// Generate builds a document for the registered routes. Routes without an
// entry in docs are listed with their handler name as summary.
func (g *Generator) Generate(routes gin.RoutesInfo, docs map[string]Operation) (*openapi3.T, error) {
	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.info.Title,
			Version:     g.info.Version,
			Description: g.info.Description,
		},
		Paths: &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: make(map[string]*openapi3.SchemaRef),
			SecuritySchemes: openapi3.SecuritySchemes{
				"session": &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()},
			},
		},
	}
	spec.Components.Schemas["Error"] = errorSchema()

	sorted := append(gin.RoutesInfo(nil), routes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Method < sorted[j].Method
	})

	for _, route := range sorted {
		doc, ok := docs[Key(route.Method, route.Path)]
		if !ok {
			doc = Operation{Summary: route.Handler}
		}
		if err := g.addOperation(spec, route.Method, route.Path, doc); err != nil {
			return nil, fmt.Errorf("failed to document %s %s: %w", route.Method, route.Path, err)
		}
	}

	return spec, nil
}

func (g *Generator) addOperation(spec *openapi3.T, method, ginPath string, doc Operation) error {
	path, pathParams := ToOpenAPIPath(ginPath)

	pathItem := spec.Paths.Find(path)
	if pathItem == nil {
		pathItem = &openapi3.PathItem{}
		spec.Paths.Set(path, pathItem)
	}

	operation := &openapi3.Operation{
		Summary:     doc.Summary,
		OperationID: operationID(method, ginPath),
		Responses:   &openapi3.Responses{},
	}
	if doc.Tag != "" {
		operation.Tags = []string{doc.Tag}
	}

	for _, name := range pathParams {
		operation.Parameters = append(operation.Parameters, &openapi3.ParameterRef{
			Value: openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()),
		})
	}
	for _, p := range doc.Query {
		operation.Parameters = append(operation.Parameters, &openapi3.ParameterRef{
			Value: openapi3.NewQueryParameter(p.Name).
				WithDescription(p.Description).
				WithSchema(paramSchema(p)),
		})
	}

	if doc.Body != nil {
		schema := SchemaOf(reflect.TypeOf(doc.Body))
		operation.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(schema),
		}
	}

	if doc.Session {
		operation.Security = &openapi3.SecurityRequirements{{"session": []string{}}}
		addError(operation, http.StatusUnauthorized, "Missing or invalid session token")
	}

	status := doc.Status
	if status == 0 {
		status = http.StatusOK
	}
	var data *openapi3.SchemaRef
	if doc.Response != nil {
		data = SchemaOf(reflect.TypeOf(doc.Response))
	}
	description := http.StatusText(status)
	operation.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content:     openapi3.NewContentWithJSONSchemaRef(envelope(data)),
		},
	})
	if doc.Body != nil || len(doc.Query) > 0 {
		addError(operation, http.StatusBadRequest, "Validation failed")
	}
	addError(operation, http.StatusInternalServerError, "Internal server error")

	pathItem.SetOperation(method, operation)
	return nil
}

// ToOpenAPIPath converts gin's ":name" segments to "{name}" and returns the
// parameter names in order.
func ToOpenAPIPath(ginPath string) (string, []string) {
	segments := strings.Split(ginPath, "/")
	var params []string
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			name := seg[1:]
			params = append(params, name)
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/"), params
}

func operationID(method, ginPath string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, part := range strings.FieldsFunc(ginPath, func(r rune) bool {
		return r == '/' || r == ':' || r == '_' || r == '-' || r == '.' || r == '*'
	}) {
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

func paramSchema(p Param) *openapi3.Schema {
	item := &openapi3.Schema{Type: &openapi3.Types{p.Type}}
	if p.Type == "" {
		item.Type = &openapi3.Types{"string"}
	}
	if !p.Array {
		return item
	}
	return &openapi3.Schema{
		Type:  &openapi3.Types{"array"},
		Items: &openapi3.SchemaRef{Value: item},
	}
}

func addError(operation *openapi3.Operation, status int, description string) {
	operation.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content: openapi3.NewContentWithJSONSchemaRef(&openapi3.SchemaRef{
				Ref:   "#/components/schemas/Error",
				Value: errorSchema().Value,
			}),
		},
	})
}

func envelope(data *openapi3.SchemaRef) *openapi3.SchemaRef {
	schema := &openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"success": openapi3.NewBoolSchema().NewRef(),
			"meta":    openapi3.NewObjectSchema().NewRef(),
		},
		Required: []string{"success"},
	}
	if data != nil {
		schema.Properties["data"] = data
	}
	return &openapi3.SchemaRef{Value: schema}
}

func errorSchema() *openapi3.SchemaRef {
	apiError := &openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"code":    openapi3.NewStringSchema().NewRef(),
			"message": openapi3.NewStringSchema().NewRef(),
			"details": openapi3.NewSchema().NewRef(),
		},
		Required: []string{"code", "message"},
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"success": openapi3.NewBoolSchema().NewRef(),
			"error":   apiError.NewRef(),
		},
		Required: []string{"success", "error"},
	}}
}

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	timeType    = reflect.TypeOf(time.Time{})
)

// SchemaOf derives a JSON schema from a Go type using its json tags.
func SchemaOf(t reflect.Type) *openapi3.SchemaRef {
	switch t {
	case decimalType:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}, Format: "decimal"}}
	case timeType:
		return openapi3.NewDateTimeSchema().NewRef()
	}

	schema := &openapi3.Schema{}
	switch t.Kind() {
	case reflect.String:
		schema.Type = &openapi3.Types{"string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema.Type = &openapi3.Types{"integer"}
	case reflect.Float32, reflect.Float64:
		schema.Type = &openapi3.Types{"number"}
	case reflect.Bool:
		schema.Type = &openapi3.Types{"boolean"}
	case reflect.Ptr:
		return SchemaOf(t.Elem())
	case reflect.Slice, reflect.Array:
		schema.Type = &openapi3.Types{"array"}
		schema.Items = SchemaOf(t.Elem())
	case reflect.Map:
		schema.Type = &openapi3.Types{"object"}
		schema.AdditionalProperties = openapi3.AdditionalProperties{Schema: SchemaOf(t.Elem())}
	case reflect.Struct:
		schema.Type = &openapi3.Types{"object"}
		schema.Properties = make(openapi3.Schemas)
		addFields(schema, t)
	default:
		schema.Type = &openapi3.Types{"object"}
	}
	return &openapi3.SchemaRef{Value: schema}
}

func addFields(schema *openapi3.Schema, t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				addFields(schema, field.Type)
			}
			continue
		}

		schema.Properties[name] = SchemaOf(field.Type)
		if !strings.Contains(opts, "omitempty") && field.Type.Kind() != reflect.Ptr {
			schema.Required = append(schema.Required, name)
		}
	}
}

func GenerateJSON(spec *openapi3.T) ([]byte, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI document to JSON: %w", err)
	}
	return data, nil
}

func GenerateYAML(spec *openapi3.T) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI document to YAML: %w", err)
	}
	return data, nil
}
