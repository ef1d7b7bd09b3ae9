package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"slotmachine/internal/reel"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/slotmachine.yaml"

// MinReelWidth is the narrowest column that still leaves a pixel for icons inside the inset.
const MinReelWidth = 2*reel.IconInset + 1

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid config")

// Window describes the OS window.
type Window struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	TargetFPS int32  `yaml:"target_fps"`
}

// Assets holds the asset paths, relative to the assets root.
type Assets struct {
	Background  string   `yaml:"background"`
	FrameBottom string   `yaml:"frame_bottom"`
	FrameHeader string   `yaml:"frame_header"`
	Icons       []string `yaml:"icons"`
	FPSFont     string   `yaml:"fps_font"`
	ButtonFont  string   `yaml:"button_font"`
	Music       string   `yaml:"music"`
	ClickSound  string   `yaml:"click_sound"`
}

// Reels configures the reel strip and its timing.
type Reels struct {
	Count        int           `yaml:"count"`
	FrameWidth   int32         `yaml:"frame_width"`
	FrameHeight  int32         `yaml:"frame_height"`
	SpinDuration time.Duration `yaml:"spin_duration"`
	StopStagger  time.Duration `yaml:"stop_stagger"`
	// Speeds are in pixels per millisecond; each spin picks one in [SpeedMin, SpeedMax).
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
}

// Button places the start button relative to the bottom-centre of the window.
type Button struct {
	Label    string `yaml:"label"`
	OffsetX  int32  `yaml:"offset_x"`
	OffsetY  int32  `yaml:"offset_y"`
	Width    int32  `yaml:"width"`
	Height   int32  `yaml:"height"`
	FontSize int32  `yaml:"font_size"`
}

// Config is the whole slot machine configuration.
type Config struct {
	Window      Window  `yaml:"window"`
	Assets      Assets  `yaml:"assets"`
	Reels       Reels   `yaml:"reels"`
	Button      Button  `yaml:"button"`
	FPSFontSize int32   `yaml:"fps_font_size"`
	MusicVolume float32 `yaml:"music_volume"`
	// ShowMemAlloc adds the Go heap size above the FPS counter.
	ShowMemAlloc bool `yaml:"show_memalloc"`
	// Colors overrides widget colours by name, e.g. button_base: "#ff0000".
	Colors map[string]string `yaml:"colors,omitempty"`
	// Seed for the reel PRNG; 0 means seed from the clock.
	Seed uint64 `yaml:"seed"`
}

// Default returns the stock 5-reel layout.
func Default() Config {
	return Config{
		Window: Window{Title: "Slot Machine", Width: 1024, Height: 768, TargetFPS: 60},
		Assets: Assets{
			Background:  "textures/background.jpeg",
			FrameBottom: "textures/bottom.jpg",
			FrameHeader: "textures/top.jpg",
			Icons:       []string{"icons/watermelon.png", "icons/apple.png", "icons/cherries.png"},
			FPSFont:     "fonts/arial.ttf",
			ButtonFont:  "fonts/FalloutFont.ttf",
			Music:       "sounds/jazz.mp3",
			ClickSound:  "sounds/click2.mp3",
		},
		Reels: Reels{
			Count:        5,
			FrameWidth:   500,
			FrameHeight:  300,
			SpinDuration: 2 * time.Second,
			StopStagger:  500 * time.Millisecond,
			SpeedMin:     0.5,
			SpeedMax:     0.9,
		},
		Button:      Button{Label: "START", OffsetX: 115, OffsetY: 128, Width: 100, Height: 50, FontSize: 26},
		FPSFontSize: 28,
		MusicVolume: 1,
	}
}

// Validate reports the first problem that would make the game misbehave.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Reels.Count <= 0:
		return fmt.Errorf("%w: reel count %d", ErrInvalid, c.Reels.Count)
	case c.Reels.FrameWidth <= 0 || c.Reels.FrameHeight <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalid, c.Reels.FrameWidth, c.Reels.FrameHeight)
	case c.Reels.FrameWidth/int32(c.Reels.Count) < MinReelWidth:
		return fmt.Errorf("%w: %d reels in a %dpx frame are narrower than %dpx", ErrInvalid,
			c.Reels.Count, c.Reels.FrameWidth, MinReelWidth)
	case c.Reels.SpinDuration <= 0:
		return fmt.Errorf("%w: spin duration %s", ErrInvalid, c.Reels.SpinDuration)
	case c.Reels.StopStagger < 0:
		return fmt.Errorf("%w: stop stagger %s", ErrInvalid, c.Reels.StopStagger)
	case c.Reels.SpeedMin <= 0 || c.Reels.SpeedMax < c.Reels.SpeedMin:
		return fmt.Errorf("%w: speed range [%g, %g)", ErrInvalid, c.Reels.SpeedMin, c.Reels.SpeedMax)
	case len(c.Assets.Icons) == 0:
		return fmt.Errorf("%w: no reel icons", ErrInvalid)
	case c.Button.Width <= 0 || c.Button.Height <= 0:
		return fmt.Errorf("%w: button size %dx%d", ErrInvalid, c.Button.Width, c.Button.Height)
	case c.MusicVolume < 0 || c.MusicVolume > 1:
		return fmt.Errorf("%w: music volume %g", ErrInvalid, c.MusicVolume)
	}
	return nil
}

// Load reads the config from path, layered over Default(). A missing file is not an error.
// If the file is unreadable YAML or fails Validate, Default() is returned with the error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
