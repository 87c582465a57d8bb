package ports

import "github.com/RachEma-ux/pack-sdk/domain/entities"

// ManifestParser parses raw manifest bytes into a PackManifest.
type ManifestParser interface {
	// Parse unmarshals manifest bytes into a PackManifest struct.
	Parse(data []byte) (*entities.PackManifest, error)
}
