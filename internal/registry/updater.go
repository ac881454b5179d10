package registry

import (
	"fmt"
	"io"
	"log/slog"
)

// State tracks an Updater through one run.
type State int

const (
	Unloaded State = iota
	Loaded
	Saved
	Failed
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case Saved:
		return "saved"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Updater runs one load-upsert-save cycle against a registry file.
//
// Runs are not coordinated: two updaters writing the same file concurrently
// race, and the last rename wins.
type Updater struct {
	path   string
	policy Policy
	indent string
	logger *slog.Logger
	state  State
}

// Option configures an Updater.
type Option func(*Updater)

// WithIndent re-indents the saved document with the given string.
func WithIndent(indent string) Option {
	return func(u *Updater) {
		u.indent = indent
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(u *Updater) {
		u.logger = l
	}
}

// New creates an Updater for the registry at path.
func New(path string, policy Policy, opts ...Option) *Updater {
	u := &Updater{
		path:   path,
		policy: policy,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Path returns the registry file path.
func (u *Updater) Path() string { return u.path }

// State returns where the updater is in its run.
func (u *Updater) State() State { return u.state }

// Run loads the registry, upserts t, and saves the result. An AlreadyPresent
// outcome skips the save and leaves the file untouched. Any error moves the
// updater to Failed with nothing written. An Updater runs once.
func (u *Updater) Run(t Target) (Outcome, error) {
	if u.state != Unloaded {
		return Outcome{}, fmt.Errorf("updater for %s already ran (state %s)", u.path, u.state)
	}

	outcome, err := u.run(t)
	if err != nil {
		u.state = Failed
		u.logger.Debug("registry update failed", "path", u.path, "error", err)
		return Outcome{}, err
	}
	return outcome, nil
}

func (u *Updater) run(t Target) (Outcome, error) {
	doc, err := Load(u.path)
	if err != nil {
		return Outcome{}, err
	}
	u.state = Loaded
	u.logger.Debug("loaded registry", "path", u.path, "entries", len(doc))

	updated, outcome, err := Upsert(doc, t, u.policy)
	if err != nil {
		return Outcome{}, fmt.Errorf("building entry: %w", err)
	}
	if outcome.Kind == AlreadyPresent {
		u.logger.Info("extension already registered, skipping write", "id", t.ID, "path", u.path)
		return outcome, nil
	}

	if err := Save(u.path, updated, u.indent); err != nil {
		return Outcome{}, err
	}
	u.state = Saved
	u.logger.Info("registry saved", "id", t.ID, "version", t.Version,
		"policy", u.policy, "outcome", outcome.Kind, "entries", len(updated))
	return outcome, nil
}
