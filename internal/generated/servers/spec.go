package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiSpec []byte

// OpenAPISpec returns the raw document the server code was generated from.
func OpenAPISpec() []byte {
	return openapiSpec
}

// GetSwagger returns the parsed OpenAPI document. Each call returns a fresh copy.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return doc, nil
}
