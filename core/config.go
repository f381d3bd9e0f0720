package core

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	App      AppConfiguration
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// AppConfiguration identifies the application to the rest of the engine
type AppConfiguration struct {
	Name    string
	Version uint32
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between event queue polls,
	// in milliseconds
	EventPollDelay int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	WindowWidth  uint32 `json:"window_width"`
	WindowHeight uint32 `json:"window_height"`
	RenderWidth  uint32 `json:"render_width"`
	RenderHeight uint32 `json:"render_height"`

	// HorizontalFov is given in degrees. The vertical field of view
	// is derived from it and the render aspect ratio.
	HorizontalFov float64 `json:"horizontal_fov"`

	NearPlane float32 `json:"near_plane"`
	FarPlane  float32 `json:"far_plane"`

	MouseSensitivity float64 `json:"mouse_sensitivity"`
	MouseInvertX     bool    `json:"mouse_invert_x"`
	MouseInvertY     bool    `json:"mouse_invert_y"`

	// AssetDirectory is searched before any bundled resources.
	AssetDirectory string `json:"asset_directory"`

	// AssetArchive optionally points to a pak archive with game assets.
	AssetArchive string `json:"asset_archive"`
}

// DefaultConfiguration returns the configuration the engine runs with
// when no options file is present.
func DefaultConfiguration() Configuration {
	return Configuration{
		App: AppConfiguration{
			Name:    "ProjectPeril",
			Version: MakeVersion(0, 2, 0),
		},
		Time: TimeConfiguration{
			FramesPerSecond: 60,
			EventPollDelay:  10,
		},
		Renderer: RendererConfiguration{
			WindowWidth:      800,
			WindowHeight:     600,
			RenderWidth:      800,
			RenderHeight:     600,
			HorizontalFov:    90,
			NearPlane:        1.0,
			FarPlane:         1000.0,
			MouseSensitivity: 1.0,
			AssetDirectory:   "./assets",
		},
	}
}

// ReadConfig loads the options file at path on top of the default
// configuration, then applies PERIL_* environment overrides.
func ReadConfig(path string) (Configuration, error) {
	cfg := DefaultConfiguration()

	contents, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("core.ReadConfig(): %w", err)
	}
	if err := json.Unmarshal(contents, &cfg.Renderer); err != nil {
		return cfg, fmt.Errorf("core.ReadConfig(): %w", err)
	}

	applyEnvironment(&cfg)
	return cfg, nil
}

// applyEnvironment overrides select options from the process environment.
// Missing or malformed values keep the configured setting.
func applyEnvironment(cfg *Configuration) {
	cfg.Renderer.AssetDirectory = envy.Get("PERIL_ASSET_DIR", cfg.Renderer.AssetDirectory)
	cfg.Renderer.AssetArchive = envy.Get("PERIL_ASSET_ARCHIVE", cfg.Renderer.AssetArchive)

	if fps, err := strconv.Atoi(envy.Get("PERIL_FPS", "")); err == nil {
		cfg.Time.FramesPerSecond = fps
	}
	if w, err := strconv.ParseUint(envy.Get("PERIL_WINDOW_WIDTH", ""), 10, 32); err == nil {
		cfg.Renderer.WindowWidth = uint32(w)
	}
	if h, err := strconv.ParseUint(envy.Get("PERIL_WINDOW_HEIGHT", ""), 10, 32); err == nil {
		cfg.Renderer.WindowHeight = uint32(h)
	}
}
