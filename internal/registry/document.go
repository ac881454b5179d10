package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/extreg-labs/extreg/internal/platform"
	"github.com/tidwall/gjson"
)

// Load reads and parses the registry at path. A missing file wraps
// ErrNotFound; content that is not a JSON array of objects wraps
// ErrMalformedRegistry.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	return doc, nil
}

// Parse splits a registry document into raw entries.
func Parse(data []byte) (Document, error) {
	if err := checkShape(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRegistry, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// entryID returns the identifier.id of a raw entry, or "" if it has none.
func entryID(raw json.RawMessage) string {
	res := gjson.GetBytes(raw, "identifier.id")
	if res.Type != gjson.String {
		return ""
	}
	return res.Str
}

// sameID reports whether an entry's ID matches the target exactly. Entries
// without an ID never match.
func sameID(a, b string) bool {
	return a != "" && a == b
}

// IndexOf returns the position of the first entry for id, or -1.
func (d Document) IndexOf(id string) int {
	for i, raw := range d {
		if sameID(entryID(raw), id) {
			return i
		}
	}
	return -1
}

// VersionOf returns the version recorded by the last entry for id.
func (d Document) VersionOf(id string) (string, bool) {
	version, found := "", false
	for _, raw := range d {
		if sameID(entryID(raw), id) {
			version, found = gjson.GetBytes(raw, "version").String(), true
		}
	}
	return version, found
}

// Without returns a copy of d with every entry for id removed. The
// remaining entries keep their order and bytes.
func (d Document) Without(id string) Document {
	out := make(Document, 0, len(d)+1)
	for _, raw := range d {
		if !sameID(entryID(raw), id) {
			out = append(out, raw)
		}
	}
	return out
}

// Marshal renders the document. With an empty indent the array is written
// compactly and every element keeps its original bytes; otherwise the whole
// document is re-indented.
func (d Document) Marshal(indent string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, raw := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(raw)
	}
	buf.WriteByte(']')

	if indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("indenting registry: %w", err)
	}
	return out.Bytes(), nil
}

// Save writes doc over the registry at path. The content goes to a temp
// file in the same directory which is then renamed into place, so the
// original is untouched unless the write fully succeeds. Every failure
// wraps ErrWriteFailure.
func Save(path string, doc Document, indent string) error {
	data, err := doc.Marshal(indent)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	if err := replaceFile(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	return nil
}

func replaceFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	// CreateTemp uses 0600; keep whatever the host gave the original.
	if err = platform.CopyMode(path, tmpPath); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing registry: %w", err)
	}
	return nil
}
