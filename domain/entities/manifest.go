package entities

// DefaultEntry is the export every pack exposes for host invocation.
const DefaultEntry = "greet"

// PackManifest describes a pack to the host, out of band: nothing in the
// manifest ever crosses the ABI. The host reads it to learn where the
// wasm module lives and which export to call.
type PackManifest struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Version     string `json:"version" yaml:"version" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Module is the path to the compiled wasm module, relative to the
	// manifest file.
	Module string `json:"module" yaml:"module" validate:"required"`

	// Entry is the export the host invokes. Defaults to DefaultEntry.
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`
}

// EntryOrDefault returns the entry export name, falling back to
// DefaultEntry when the manifest leaves it unset.
func (m *PackManifest) EntryOrDefault() string {
	if m.Entry == "" {
		return DefaultEntry
	}
	return m.Entry
}
