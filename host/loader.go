package host

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/RachEma-ux/pack-sdk/domain/entities"
	sdkerrors "github.com/RachEma-ux/pack-sdk/domain/errors"
	"github.com/RachEma-ux/pack-sdk/domain/ports"
	"github.com/RachEma-ux/pack-sdk/infrastructure/parser"
)

// loaderConfig holds configuration for the Loader.
type loaderConfig struct {
	parser ports.ManifestParser
}

func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		parser: parser.NewYamlManifestParser(),
	}
}

// Loader parses and validates pack manifests. The manifest is the
// out-of-band description of a pack: the host reads it to learn where
// the wasm module lives and which export to call. Nothing in it crosses
// the ABI.
type Loader struct {
	validate *validator.Validate
	config   loaderConfig
}

// LoaderOption configures the Loader.
type LoaderOption func(*loaderConfig)

// WithParser sets a custom manifest parser.
func WithParser(p ports.ManifestParser) LoaderOption {
	return func(c *loaderConfig) {
		c.parser = p
	}
}

// NewLoader creates a new Loader with defaults.
func NewLoader(opts ...LoaderOption) *Loader {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{
		validate: validator.New(),
		config:   cfg,
	}
}

// LoadManifest parses and validates a pack manifest.
func (l *Loader) LoadManifest(raw []byte) (*entities.PackManifest, error) {
	manifest, err := l.config.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := l.validate.Struct(manifest); err != nil {
		var verrs validator.ValidationErrors
		if stdErrors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &sdkerrors.ManifestError{
				Field: strings.ToLower(verrs[0].Field()),
				Err:   err,
			}
		}
		return nil, &sdkerrors.ManifestError{Err: err}
	}

	return manifest, nil
}
