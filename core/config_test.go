package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gobuffalo/envy"
	"github.com/projectperil/peril/core"
)

func TestReadConfig(t *testing.T) {
	options := `{
		"window_width": 1280,
		"window_height": 720,
		"render_width": 640,
		"render_height": 360,
		"horizontal_fov": 100,
		"mouse_sensitivity": 0.5,
		"mouse_invert_y": true,
		"asset_directory": "./testdata"
	}`

	path := filepath.Join(t.TempDir(), "options.json")
	if err := os.WriteFile(path, []byte(options), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := core.ReadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Renderer.WindowWidth != 1280 || cfg.Renderer.WindowHeight != 720 {
		t.Errorf("incorrect window dimensions: %dx%d", cfg.Renderer.WindowWidth, cfg.Renderer.WindowHeight)
	}
	if cfg.Renderer.RenderWidth != 640 || cfg.Renderer.RenderHeight != 360 {
		t.Errorf("incorrect render dimensions: %dx%d", cfg.Renderer.RenderWidth, cfg.Renderer.RenderHeight)
	}
	if cfg.Renderer.HorizontalFov != 100 {
		t.Errorf("incorrect fov: %f", cfg.Renderer.HorizontalFov)
	}
	if !cfg.Renderer.MouseInvertY || cfg.Renderer.MouseInvertX {
		t.Error("incorrect mouse inversion settings")
	}
	// Options the file does not mention keep their defaults.
	if cfg.Renderer.FarPlane != 1000.0 {
		t.Errorf("default far plane lost: %f", cfg.Renderer.FarPlane)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := core.ReadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing options file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	options := `{"window_width": 800, "window_height": 600}`
	path := filepath.Join(t.TempDir(), "options.json")
	if err := os.WriteFile(path, []byte(options), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PERIL_WINDOW_WIDTH", "1024")
	t.Setenv("PERIL_ASSET_DIR", "/srv/assets")
	// envy snapshots the environment at init; refresh it so the
	// variables set above are visible to the config loader.
	envy.Reload()
	t.Cleanup(envy.Reload)

	cfg, err := core.ReadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Renderer.WindowWidth != 1024 {
		t.Errorf("environment did not override width: %d", cfg.Renderer.WindowWidth)
	}
	if cfg.Renderer.WindowHeight != 600 {
		t.Errorf("height should come from the file: %d", cfg.Renderer.WindowHeight)
	}
	if cfg.Renderer.AssetDirectory != "/srv/assets" {
		t.Errorf("environment did not override asset dir: %s", cfg.Renderer.AssetDirectory)
	}
}

func TestVersionRoundTrip(t *testing.T) {
	version := core.MakeVersion(1, 22, 333)
	if got := core.VersionString(version); got != "v1.22.333" {
		t.Errorf("version formatted incorrectly: %s", got)
	}
}

func TestVersionMasksOverflow(t *testing.T) {
	// 10/10/12 bit fields, anything above must not leak into neighbours.
	version := core.MakeVersion(0x3FF+1, 0, 1)
	if got := core.VersionString(version); got != "v0.0.1" {
		t.Errorf("major overflow leaked: %s", got)
	}
}
