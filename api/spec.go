// Package api embeds the OpenAPI description of the HTTP interface.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	loadOnce sync.Once
	doc      *openapi3.T
	loadErr  error
)

// Raw returns the OpenAPI document as YAML.
func Raw() []byte {
	return rawSpec
}

// Load parses and validates the embedded document. The result is cached.
func Load() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, loadErr = loader.LoadFromData(rawSpec)
		if loadErr != nil {
			loadErr = fmt.Errorf("failed to parse openapi.yaml: %w", loadErr)
			return
		}
		if err := doc.Validate(context.Background()); err != nil {
			loadErr = fmt.Errorf("invalid openapi.yaml: %w", err)
		}
	})
	return doc, loadErr
}

// Version returns info.version of the document, or "unknown" if it cannot be loaded.
func Version() string {
	d, err := Load()
	if err != nil || d.Info == nil {
		return "unknown"
	}
	return d.Info.Version
}
