package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NewEntry builds the registry entry for t. Version must be strict semver
// and ID must look like publisher.name. A Default richness yields the
// minimal location form.
func NewEntry(t Target) (*Entry, error) {
	if err := validateID(t.ID); err != nil {
		return nil, err
	}
	if _, err := semver.StrictNewVersion(t.Version); err != nil {
		return nil, fmt.Errorf("invalid version %q for %s: %w", t.Version, t.ID, err)
	}
	if t.Root == "" {
		return nil, fmt.Errorf("extensions root is required for %s", t.ID)
	}
	if isUNC(t.Root) {
		return nil, fmt.Errorf("UNC extensions root %q is not supported", t.Root)
	}

	dir := t.DirName()
	return &Entry{
		Identifier:       Identifier{ID: t.ID},
		Version:          t.Version,
		Location:         BuildLocation(t.Root, dir, t.Richness),
		RelativeLocation: dir,
		Metadata: Metadata{
			InstalledTimestamp: t.Timestamp,
			Pinned:             t.Pinned,
			Source:             t.Source,
		},
	}, nil
}

// MarshalRaw encodes the entry as a compact JSON element, leaving characters
// such as & and < unescaped.
func (e *Entry) MarshalRaw() (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, fmt.Errorf("encoding entry %s: %w", e.Identifier.ID, err)
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// validateID checks the publisher.name shape. The ID is also used as a
// directory name, so path separators are rejected.
func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("extension id is required")
	}
	if strings.ContainsAny(id, `/\ `) {
		return fmt.Errorf("invalid extension id %q: must not contain separators or spaces", id)
	}
	publisher, name, ok := strings.Cut(id, ".")
	if !ok || publisher == "" || name == "" {
		return fmt.Errorf("invalid extension id %q: want publisher.name", id)
	}
	return nil
}
