// Package schema provides JSON schema generation for host-side tooling.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/RachEma-ux/pack-sdk/domain/entities"
)

// Generate creates a JSON schema from a Go struct. It uses the
// `invopop/jsonschema` library to reflect on the struct and generate a
// standard JSON Schema (Draft 2020-12).
func Generate(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	s := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// ManifestSchema returns the JSON schema of the pack manifest, for
// editors and host-side validation tooling. The schema never crosses the
// ABI: it documents the out-of-band manifest file only.
func ManifestSchema() ([]byte, error) {
	return Generate(entities.PackManifest{})
}
