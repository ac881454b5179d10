package branding

import "testing"

func TestDefaults(t *testing.T) {
	if got := CLIName(); got != "extreg" {
		t.Errorf("CLIName() = %q, want extreg", got)
	}
	if got := RegistryFile(); got != "extensions.json" {
		t.Errorf("RegistryFile() = %q, want extensions.json", got)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "EXTREG_LOG_LEVEL" {
		t.Errorf("EnvVar(log_level) = %q, want EXTREG_LOG_LEVEL", got)
	}
}
