package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// apiDoc serves the OpenAPI document to swagger UI through the swag registry.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

// RegisterDocs publishes doc under swag.Name and mounts swagger UI at /swagger/*.
// swag allows one registration per name, so only the first document is published.
func RegisterDocs(e *echo.Echo, doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(raw)})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
