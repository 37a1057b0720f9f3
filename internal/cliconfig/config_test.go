package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080", Grace: 5 * time.Second},
		Render: RenderConfig{Renderer: "vanilla", Engine: EnginePongo2},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := []byte(`
log:
  level: debug
server:
  addr: 127.0.0.1:9000
  grace: 2s
render:
  renderer: dom
  literal-classes: true
  engine: go-template
config:
  mismatches: 1
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BARCODEFORM_CONFIG_MISMATCHES", "2")
	t.Setenv("BARCODEFORM_LOG_JSON", "true")

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Fatalf("log config = %+v", cfg.Log)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.Grace != 2*time.Second {
		t.Fatalf("server config = %+v", cfg.Server)
	}
	if cfg.Render.Renderer != "dom" || !cfg.Render.LiteralClasses || cfg.Render.Engine != EngineGoTemplate {
		t.Fatalf("render config = %+v", cfg.Render)
	}
	if cfg.Config.Mismatches != 2 {
		t.Fatalf("env should override file, mismatches = %d", cfg.Config.Mismatches)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

func TestLoadRejectsNegativeMismatches(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BARCODEFORM_CONFIG_MISMATCHES", "-1")

	if _, err := Load(New(), ""); err == nil {
		t.Fatalf("expected error for negative mismatches")
	}
}

func TestLoadRejectsUnknownEngine(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BARCODEFORM_RENDER_ENGINE", "jinja")

	if _, err := Load(New(), ""); err == nil {
		t.Fatalf("expected error for unknown engine")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
