package registry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is the registry file's array, one raw element per entry. Elements
// are kept exactly as read so untouched entries round-trip byte for byte.
type Document []json.RawMessage

// Entry is one extension's registration.
type Entry struct {
	Identifier       Identifier `json:"identifier"`
	Version          string     `json:"version"`
	Location         Location   `json:"location"`
	RelativeLocation string     `json:"relativeLocation"`
	Metadata         Metadata   `json:"metadata"`
}

// Identifier holds the namespace-qualified extension ID (publisher.name).
type Identifier struct {
	ID string `json:"id"`
}

// Location is the serialized URI of the install directory. The minimal form
// carries only Mid, Path and Scheme; the full form also sets FSPath, Sep and
// External.
type Location struct {
	Mid      int    `json:"$mid"`
	FSPath   string `json:"fsPath,omitempty"`
	Sep      int    `json:"_sep,omitempty"`
	External string `json:"external,omitempty"`
	Path     string `json:"path"`
	Scheme   string `json:"scheme"`
}

// Metadata records install provenance.
type Metadata struct {
	InstalledTimestamp int64  `json:"installedTimestamp"`
	Pinned             bool   `json:"pinned"`
	Source             string `json:"source"`
}

// Policy selects how Upsert treats an existing entry for the target.
type Policy int

const (
	// Replace drops any existing entry for the target and appends a new one.
	Replace Policy = iota
	// InsertIfAbsent leaves the document alone when the target is present.
	InsertIfAbsent
)

func (p Policy) String() string {
	switch p {
	case InsertIfAbsent:
		return "insert"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "insert"/"add" and "replace"/"update".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "insert", "add":
		return InsertIfAbsent, nil
	case "replace", "update", "":
		return Replace, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want insert or replace)", s)
	}
}

// Richness selects the Location form written for a new entry.
type Richness int

const (
	// Default picks Minimal for InsertIfAbsent and Full for Replace.
	Default Richness = iota
	Minimal
	Full
)

func (r Richness) String() string {
	switch r {
	case Minimal:
		return "minimal"
	case Full:
		return "full"
	default:
		return "default"
	}
}

// ParseRichness accepts "minimal", "full", or "" for the policy default.
func ParseRichness(s string) (Richness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Default, nil
	case "minimal":
		return Minimal, nil
	case "full":
		return Full, nil
	default:
		return 0, fmt.Errorf("unknown metadata form %q (want minimal or full)", s)
	}
}

// resolve returns the concrete richness for p.
func (r Richness) resolve(p Policy) Richness {
	if r != Default {
		return r
	}
	if p == InsertIfAbsent {
		return Minimal
	}
	return Full
}

// Target describes the entry a run should leave in the registry.
type Target struct {
	ID        string
	Version   string
	Root      string // extensions directory, in the host's native path form
	Timestamp int64  // epoch milliseconds, supplied by the caller
	Pinned    bool
	Source    string
	Richness  Richness
}

// DirName returns the install directory name, "<id>-<version>".
func (t Target) DirName() string {
	return t.ID + "-" + t.Version
}

// Outcome reports what Upsert did.
type Outcome struct {
	Kind            OutcomeKind
	PreviousVersion string // version of the replaced entry, if any
}

// OutcomeKind enumerates Upsert results.
type OutcomeKind int

const (
	Added OutcomeKind = iota
	AlreadyPresent
	Updated
)

func (k OutcomeKind) String() string {
	switch k {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already present"
	case Updated:
		return "updated"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}
