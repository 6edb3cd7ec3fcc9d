package manifest

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	generr "github.com/vrcomputing/readmegen/internal/errors"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoad_ValidManifest(t *testing.T) {
	m, err := Load(testPath("valid-package.json"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.DisplayName != "QSkinny" {
		t.Errorf("DisplayName = %q, want %q", m.DisplayName, "QSkinny")
	}
	if m.Version != "0.0.7" {
		t.Errorf("Version = %q, want %q", m.Version, "0.0.7")
	}
	if m.Engines.VSCode != "^1.80.0" {
		t.Errorf("Engines.VSCode = %q, want %q", m.Engines.VSCode, "^1.80.0")
	}
	if len(m.Contributes.Commands) != 2 {
		t.Fatalf("Commands len = %d, want 2", len(m.Contributes.Commands))
	}
	if got := m.Contributes.Commands[1].Command; got != "qskinny.qsk_states.qsk_state" {
		t.Errorf("Commands[1].Command = %q, want %q", got, "qskinny.qsk_states.qsk_state")
	}
	if m.Contributes.Configuration.Title != "QSkinny" {
		t.Errorf("Configuration.Title = %q, want %q", m.Contributes.Configuration.Title, "QSkinny")
	}
}

func TestLoad_PropertiesKeepDeclarationOrder(t *testing.T) {
	m, err := Load(testPath("valid-package.json"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []string{
		"qskinny.diagnostics.enabled",
		"qskinny.diagnostics.include",
		"qskinny.indent",
	}
	if got := m.Contributes.Configuration.Properties.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v", got, want)
	}

	prop, ok := m.Contributes.Configuration.Properties.Lookup("qskinny.diagnostics.include")
	if !ok {
		t.Fatal("Lookup(qskinny.diagnostics.include) not found")
	}
	if got := prop.Default.String(); got != "['*.h', '*.hpp']" {
		t.Errorf("Default = %q, want %q", got, "['*.h', '*.hpp']")
	}
	if got := prop.Type.String(); got != "array" {
		t.Errorf("Type = %q, want %q", got, "array")
	}
}

func TestLoad_Minimal(t *testing.T) {
	m, err := Load(testPath("minimal-package.json"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(m.Contributes.Commands) != 0 {
		t.Errorf("Commands len = %d, want 0", len(m.Contributes.Commands))
	}
	if len(m.Contributes.Configuration.Properties) != 0 {
		t.Errorf("Properties len = %d, want 0", len(m.Contributes.Configuration.Properties))
	}
}

func TestLoad_ReportsEveryMissingField(t *testing.T) {
	_, err := Load(testPath("invalid-missing-fields.json"))
	if err == nil {
		t.Fatal("expected error for missing fields, got nil")
	}
	if got := generr.KindOf(err); got != generr.KindMissingField {
		t.Errorf("kind = %v, want %v", got, generr.KindMissingField)
	}

	msg := err.Error()
	for _, field := range []string{
		"displayName",
		"contributes.commands[0].command",
		"contributes.configuration.properties.x.setting.default",
	} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not mention %q", msg, field)
		}
	}
	if strings.Contains(msg, "commands[0].title") {
		t.Errorf("error %q reports a field that is present", msg)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(testPath("invalid-not-json.json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
	if got := generr.KindOf(err); got != generr.KindManifestParse {
		t.Errorf("kind = %v, want %v", got, generr.KindManifestParse)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(testPath("nonexistent.json"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
	if got := generr.KindOf(err); got != generr.KindManifestParse {
		t.Errorf("kind = %v, want %v", got, generr.KindManifestParse)
	}
}

func TestParse_DuplicatePropertyKeepsFirstPosition(t *testing.T) {
	data := []byte(`{
		"displayName": "d", "description": "d",
		"contributes": {"configuration": {"properties": {
			"a": {"type": "string", "default": "1", "description": "first"},
			"b": {"type": "string", "default": "2", "description": "b"},
			"a": {"type": "string", "default": "3", "description": "second"}
		}}}
	}`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	props := m.Contributes.Configuration.Properties
	if got := props.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("IDs = %v, want [a b]", got)
	}
	if props[0].Description != "second" {
		t.Errorf("Description = %q, want %q", props[0].Description, "second")
	}
}

func TestParse_NullDefaultIsPresent(t *testing.T) {
	data := []byte(`{
		"displayName": "d", "description": "d",
		"contributes": {"configuration": {"properties": {
			"p": {"type": "string", "default": null, "description": "nullable"}
		}}}
	}`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := m.Contributes.Configuration.Properties[0].Default.String(); got != "None" {
		t.Errorf("Default = %q, want %q", got, "None")
	}
}

func TestParse_PropertiesMustBeObject(t *testing.T) {
	data := []byte(`{"displayName": "d", "description": "d",
		"contributes": {"configuration": {"properties": [1, 2]}}}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for array properties, got nil")
	}
}
