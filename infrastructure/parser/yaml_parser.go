// Package parser provides manifest parsers for the host side of the SDK.
package parser

import (
	"github.com/RachEma-ux/pack-sdk/domain/entities"
	"github.com/RachEma-ux/pack-sdk/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlManifestParser implements ManifestParser for YAML.
type YamlManifestParser struct{}

// NewYamlManifestParser creates a new YamlManifestParser.
func NewYamlManifestParser() ports.ManifestParser {
	return &YamlManifestParser{}
}

// Parse unmarshals YAML bytes into a PackManifest struct.
func (p *YamlManifestParser) Parse(data []byte) (*entities.PackManifest, error) {
	var manifest entities.PackManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
