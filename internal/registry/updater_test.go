package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUpdaterRun_Replace(t *testing.T) {
	path := writeRegistry(t, sampleRegistry)

	u := New(path, Replace)
	outcome, err := u.Run(testTarget())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome.Kind != Updated || outcome.PreviousVersion != "1.0.0" {
		t.Errorf("outcome = %+v", outcome)
	}
	if u.State() != Saved {
		t.Errorf("state = %v, want saved", u.State())
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if n := countID(doc, "acme.tool"); n != 1 {
		t.Errorf("%d entries for acme.tool, want 1", n)
	}
	if v, _ := doc.VersionOf("acme.tool"); v != "2.0.0" {
		t.Errorf("version = %q, want 2.0.0", v)
	}
	if doc.IndexOf("acme.tool") != len(doc)-1 {
		t.Error("updated entry is not last")
	}
}

func TestUpdaterRun_Indent(t *testing.T) {
	path := writeRegistry(t, "[]")

	if _, err := New(path, Replace, WithIndent("    ")).Run(testTarget()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "[\n    {\n        \"identifier\"") {
		t.Errorf("document not indented:\n%s", data)
	}
}

func TestUpdaterRun_AlreadyPresentDoesNotWrite(t *testing.T) {
	content := `[ {"identifier": {"id": "acme.tool"}, "version": "1.0.0"} ]`
	path := writeRegistry(t, content)
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	u := New(path, InsertIfAbsent)
	outcome, err := u.Run(testTarget())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome.Kind != AlreadyPresent {
		t.Errorf("outcome = %v, want AlreadyPresent", outcome.Kind)
	}
	if u.State() != Loaded {
		t.Errorf("state = %v, want loaded", u.State())
	}

	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Errorf("file changed:\n%s", data)
	}
	after, _ := os.Stat(path)
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("file was rewritten")
	}
}

func TestUpdaterRun_Malformed(t *testing.T) {
	content := `{"identifier":{"id":"acme.tool"}}`
	path := writeRegistry(t, content)

	u := New(path, Replace)
	_, err := u.Run(testTarget())
	if !errors.Is(err, ErrMalformedRegistry) {
		t.Errorf("error = %v, want ErrMalformedRegistry", err)
	}
	if u.State() != Failed {
		t.Errorf("state = %v, want failed", u.State())
	}
	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Errorf("file changed:\n%s", data)
	}
}

func TestUpdaterRun_NotFound(t *testing.T) {
	path := writeRegistry(t, "[]")
	os.Remove(path)

	u := New(path, InsertIfAbsent)
	_, err := u.Run(testTarget())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("registry was created")
	}
}

func TestUpdaterRun_InvalidTargetLeavesFile(t *testing.T) {
	path := writeRegistry(t, sampleRegistry)
	target := testTarget()
	target.ID = "nodot"

	u := New(path, Replace)
	if _, err := u.Run(target); err == nil {
		t.Fatal("expected error")
	}
	if u.State() != Failed {
		t.Errorf("state = %v, want failed", u.State())
	}
	data, _ := os.ReadFile(path)
	if string(data) != sampleRegistry {
		t.Error("file changed after failed run")
	}
}

func TestUpdaterRun_OnlyOnce(t *testing.T) {
	path := writeRegistry(t, "[]")
	u := New(path, Replace)
	if _, err := u.Run(testTarget()); err != nil {
		t.Fatal(err)
	}
	if _, err := u.Run(testTarget()); err == nil {
		t.Error("expected error on second run")
	}
}

func TestUpdaterRun_RepeatedRunsConverge(t *testing.T) {
	path := writeRegistry(t, sampleRegistry)

	if _, err := New(path, Replace).Run(testTarget()); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(path)
	if _, err := New(path, Replace).Run(testTarget()); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Errorf("second run changed file:\n%s\n%s", first, second)
	}
}

func TestUpdaterRun_WriteFailureKeepsOriginal(t *testing.T) {
	path := writeRegistry(t, sampleRegistry)
	readOnlyDir(t, filepath.Dir(path))

	u := New(path, Replace)
	_, err := u.Run(testTarget())
	if !errors.Is(err, ErrWriteFailure) {
		t.Errorf("error = %v, want ErrWriteFailure", err)
	}
	if u.State() != Failed {
		t.Errorf("state = %v, want failed", u.State())
	}
	data, _ := os.ReadFile(path)
	if string(data) != sampleRegistry {
		t.Errorf("original changed:\n%s", data)
	}
}
