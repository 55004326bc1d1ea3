package http

import (
	"net/http"

	"github.com/aretw0/homey-mcp/pkg/registry"
	"github.com/getkin/kin-openapi/openapi3"
)

// BuildOpenAPI describes every catalog operation as a POST endpoint whose
// request body is the operation's argument object.
func BuildOpenAPI(catalog *registry.Catalog, version string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "homey-mcp",
			Description: "Homey controller operations",
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}

	result := resultSchema()
	for _, d := range catalog.List() {
		op := openapi3.NewOperation()
		op.OperationID = d.Name
		op.Summary = d.Description
		op.Tags = []string{"operations"}
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithJSONSchema(argumentSchema(d.Schema)),
		}
		op.Responses = openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription("Invocation result; failures set isError").
					WithJSONSchema(result),
			}),
		)
		doc.AddOperation("/operations/"+d.Name, http.MethodPost, op)
	}
	return doc
}

func argumentSchema(s registry.Schema) *openapi3.Schema {
	obj := openapi3.NewObjectSchema()
	for _, f := range s.Fields {
		obj.WithProperty(f.Name, fieldSchema(f))
	}
	obj.Required = s.RequiredNames()
	return obj
}

func fieldSchema(f registry.Field) *openapi3.Schema {
	var schema *openapi3.Schema
	if len(f.Kinds) == 1 {
		schema = kindSchema(f.Kinds[0])
	} else {
		alternatives := make([]*openapi3.Schema, 0, len(f.Kinds))
		for _, k := range f.Kinds {
			alternatives = append(alternatives, kindSchema(k))
		}
		schema = openapi3.NewOneOfSchema(alternatives...)
	}
	schema.Description = f.Description
	for _, v := range f.Enum {
		schema.Enum = append(schema.Enum, v)
	}
	return schema
}

func kindSchema(k registry.Kind) *openapi3.Schema {
	switch k {
	case registry.KindBoolean:
		return openapi3.NewBoolSchema()
	case registry.KindInteger:
		return openapi3.NewIntegerSchema()
	case registry.KindNumber:
		return openapi3.NewFloat64Schema()
	default:
		return openapi3.NewStringSchema()
	}
}

func resultSchema() *openapi3.Schema {
	content := openapi3.NewObjectSchema().
		WithProperty("type", openapi3.NewStringSchema()).
		WithProperty("text", openapi3.NewStringSchema())
	return openapi3.NewObjectSchema().
		WithProperty("content", openapi3.NewArraySchema().WithItems(content)).
		WithProperty("isError", openapi3.NewBoolSchema())
}
