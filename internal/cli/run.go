package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/extreg-labs/extreg/internal/config"
	"github.com/extreg-labs/extreg/internal/extension"
	"github.com/extreg-labs/extreg/internal/registry"
	"github.com/spf13/cobra"
)

// runRegistration loads the settings and performs one registry update.
// A nil policy means the one named in the config.
func runRegistration(cmd *cobra.Command, policy *registry.Policy) error {
	if err := config.Load(configPath); err != nil {
		return err
	}
	s, err := config.Current()
	if err != nil {
		return err
	}

	p, err := registry.ParsePolicy(s.Policy)
	if err != nil {
		return err
	}
	if policy != nil {
		p = *policy
	}

	target, err := targetFromSettings(s, time.Now)
	if err != nil {
		return err
	}

	u := registry.New(s.Registry, p,
		registry.WithIndent(s.Indent),
		registry.WithLogger(slog.Default()),
	)
	outcome, err := u.Run(target)
	if err != nil {
		return fmt.Errorf("registering %s: %w", target.ID, err)
	}

	printOutcome(cmd.OutOrStdout(), cmd.ErrOrStderr(), u.Path(), target, outcome)
	return nil
}

// targetFromSettings turns the config into a registry target. id and
// version fall back to the extension manifest when one is configured; the
// timestamp falls back to now.
func targetFromSettings(s *config.Settings, now func() time.Time) (registry.Target, error) {
	if s.Registry == "" {
		return registry.Target{}, fmt.Errorf("no registry path configured (set %q)", config.KeyRegistry)
	}

	id, version := s.ID, s.Version
	if s.Manifest != "" && (id == "" || version == "") {
		m, err := extension.LoadManifest(s.Manifest)
		if err != nil {
			return registry.Target{}, err
		}
		if id == "" {
			id = m.ID()
		}
		if version == "" {
			version = m.Version
		}
	}
	if id == "" || version == "" {
		return registry.Target{}, fmt.Errorf("extension id and version are required (set %q and %q, or %q)",
			config.KeyID, config.KeyVersion, config.KeyManifest)
	}

	richness, err := registry.ParseRichness(s.Metadata)
	if err != nil {
		return registry.Target{}, err
	}

	ts := s.Timestamp
	if ts == 0 {
		ts = now().UnixMilli()
	}

	return registry.Target{
		ID:        id,
		Version:   version,
		Root:      s.RootDir(),
		Timestamp: ts,
		Pinned:    s.Pinned,
		Source:    s.Source,
		Richness:  richness,
	}, nil
}

func printOutcome(out, errOut io.Writer, path string, t registry.Target, o registry.Outcome) {
	switch o.Kind {
	case registry.Added:
		fmt.Fprintf(out, "Extension %s %s added to %s\n", t.ID, t.Version, path)
	case registry.AlreadyPresent:
		fmt.Fprintf(out, "Extension %s already in %s\n", t.ID, path)
	case registry.Updated:
		if o.PreviousVersion == "" {
			fmt.Fprintf(out, "Updated %s: %s %s\n", path, t.ID, t.Version)
			return
		}
		fmt.Fprintf(out, "Updated %s: %s %s -> %s\n", path, t.ID, o.PreviousVersion, t.Version)
		if isDowngrade(o.PreviousVersion, t.Version) {
			fmt.Fprintf(errOut, "Warning: %s was at %s; registered the older %s\n", t.ID, o.PreviousVersion, t.Version)
		}
	}
}

// isDowngrade reports whether next is older than prev. Unparseable
// versions never count as a downgrade.
func isDowngrade(prev, next string) bool {
	pv, err := semver.NewVersion(prev)
	if err != nil {
		return false
	}
	nv, err := semver.NewVersion(next)
	if err != nil {
		return false
	}
	return nv.LessThan(pv)
}
