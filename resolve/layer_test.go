package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeLayerFile writes a layer file fixture and returns its directory.
func writeLayerFile(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return dir
}

func TestDirSource_Present(t *testing.T) {
	dir := writeLayerFile(t, "RedHat-9.yml", `
fp_present: true
service_name: httpd
config_dir: /etc/httpd
`)

	var src DirSource

	file, err := src.Load(t.Context(), "RedHat-9", LayerDefaults, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !file.Present {
		t.Fatal("expected file to be present")
	}

	if file.Vars["service_name"] != "httpd" {
		t.Errorf("service_name = %v", file.Vars["service_name"])
	}

	if _, ok := file.Vars[MarkerKey]; ok {
		t.Error("marker key must not leak into variables")
	}
}

func TestDirSource_YamlExtension(t *testing.T) {
	dir := writeLayerFile(t, "Debian-12.yaml", `
fp_present: true
service_name: apache2
`)

	var src DirSource

	file, err := src.Load(t.Context(), "Debian-12", LayerDefaults, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !file.Present || file.Vars["service_name"] != "apache2" {
		t.Errorf("unexpected file: %+v", file)
	}
}

func TestDirSource_MissingFileIsAbsent(t *testing.T) {
	var src DirSource

	file, err := src.Load(t.Context(), "NoSuch", LayerDefaults, t.TempDir())
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}

	if file.Present {
		t.Error("missing file reported present")
	}

	if len(file.Vars) != 0 {
		t.Errorf("missing file contributed vars: %v", file.Vars)
	}
}

func TestDirSource_NoMarkerIsAbsent(t *testing.T) {
	dir := writeLayerFile(t, "RedHat-9.yml", `
service_name: httpd
`)

	var src DirSource

	file, err := src.Load(t.Context(), "RedHat-9", LayerDefaults, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if file.Present {
		t.Error("file without marker must be treated as absent")
	}

	if len(file.Vars) != 0 {
		t.Errorf("absent file contributed vars: %v", file.Vars)
	}
}

func TestDirSource_MarkerFalseIsAbsent(t *testing.T) {
	dir := writeLayerFile(t, "RedHat-9.yml", `
fp_present: false
service_name: httpd
`)

	var src DirSource

	file, err := src.Load(t.Context(), "RedHat-9", LayerDefaults, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if file.Present {
		t.Error("marker false must be treated as absent")
	}
}

func TestDirSource_EmptyButPresent(t *testing.T) {
	dir := writeLayerFile(t, "RedHat-9.yml", `
fp_present: true
`)

	var src DirSource

	file, err := src.Load(t.Context(), "RedHat-9", LayerDefaults, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !file.Present {
		t.Error("marker-only file must be present")
	}

	if len(file.Vars) != 0 {
		t.Errorf("marker-only file contributed vars: %v", file.Vars)
	}
}

func TestDirSource_MalformedYAML(t *testing.T) {
	dir := writeLayerFile(t, "RedHat-9.yml", "fp_present: [unclosed\n")

	var src DirSource

	_, err := src.Load(t.Context(), "RedHat-9", LayerDefaults, dir)
	if !errors.Is(err, ErrLayerLoad) {
		t.Errorf("expected ErrLayerLoad for malformed YAML, got %v", err)
	}
}

func TestLayerString(t *testing.T) {
	tests := []struct {
		layer Layer
		want  string
	}{
		{LayerDefaults, "defaults"},
		{LayerInstant, "instant"},
		{LayerDeferred, "deferred"},
		{Layer(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.layer.String(); got != tt.want {
			t.Errorf("Layer(%d).String() = %q, want %q", tt.layer, got, tt.want)
		}
	}
}
