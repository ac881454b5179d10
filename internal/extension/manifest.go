package extension

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// ManifestFile is the extension package manifest name.
const ManifestFile = "package.json"

// Manifest holds the identity fields of an extension's package.json.
type Manifest struct {
	Publisher string
	Name      string
	Version   string
}

// ID returns the registry identifier, "publisher.name".
func (m *Manifest) ID() string {
	return m.Publisher + "." + m.Name
}

// LoadManifest reads package.json from path, which may be the manifest
// itself or the extension directory containing it.
func LoadManifest(path string) (*Manifest, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ManifestFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing manifest %s: invalid JSON", path)
	}

	fields := gjson.GetManyBytes(data, "publisher", "name", "version")
	m := &Manifest{
		Publisher: fields[0].String(),
		Name:      fields[1].String(),
		Version:   fields[2].String(),
	}

	var missing []string
	if m.Publisher == "" {
		missing = append(missing, "publisher")
	}
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Version == "" {
		missing = append(missing, "version")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("manifest %s is missing %v", path, missing)
	}
	return m, nil
}
