package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "readmegen" {
		t.Errorf("CLIName() = %q, want %q", got, "readmegen")
	}
	if got := EnvPrefix(); got != "READMEGEN" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "READMEGEN")
	}
	if got := DisplayName(); got != "QSkinny ReadMe Generator" {
		t.Errorf("DisplayName() = %q, want %q", got, "QSkinny ReadMe Generator")
	}
	if got := GitHubRepo(); got != "vrcomputing/qskinny_vs_code_plugin" {
		t.Errorf("GitHubRepo() = %q, want %q", got, "vrcomputing/qskinny_vs_code_plugin")
	}
	want := "https://github.com/vrcomputing/qskinny_vs_code_plugin/raw/main/qskinny/doc"
	if got := ImageRoot(); got != want {
		t.Errorf("ImageRoot() = %q, want %q", got, want)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("image_root"); got != "READMEGEN_IMAGE_ROOT" {
		t.Errorf("EnvVar() = %q, want %q", got, "READMEGEN_IMAGE_ROOT")
	}
}
