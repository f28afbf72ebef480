package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pyre/internal/fire"
	"github.com/san-kum/pyre/internal/term"
)

const (
	DefaultFPS        = 60
	DefaultBufferKiB  = 256
	DefaultFireWidth  = 320
	DefaultFireHeight = 200
	DefaultScale      = 3
	DefaultCubeSize   = 128
)

// Config holds every renderer's tuning. CLI flags override individual
// fields after loading.
type Config struct {
	Fire    FireConfig    `yaml:"fire"`
	Display DisplayConfig `yaml:"display"`
	Window  WindowConfig  `yaml:"window"`
	Sound   SoundConfig   `yaml:"sound"`
	Seed    int64         `yaml:"seed"`
}

type FireConfig struct {
	CoolingMax  int `yaml:"cooling_max"`
	SparkChance int `yaml:"spark_chance"`
}

type DisplayConfig struct {
	FPS       int    `yaml:"fps"`
	Color     string `yaml:"color"` // auto, truecolor or 256
	BufferKiB int    `yaml:"buffer_kib"`
}

type WindowConfig struct {
	FireWidth  int `yaml:"fire_width"`
	FireHeight int `yaml:"fire_height"`
	Scale      int `yaml:"scale"`
	CubeSize   int `yaml:"cube_size"`
}

type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		Fire: FireConfig{
			CoolingMax:  fire.DefaultCoolingMax,
			SparkChance: fire.DefaultSparkChance,
		},
		Display: DisplayConfig{
			FPS:       DefaultFPS,
			Color:     "auto",
			BufferKiB: DefaultBufferKiB,
		},
		Window: WindowConfig{
			FireWidth:  DefaultFireWidth,
			FireHeight: DefaultFireHeight,
			Scale:      DefaultScale,
			CubeSize:   DefaultCubeSize,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FireParams converts the fire section into simulation parameters.
func (c *Config) FireParams() fire.Params {
	return fire.Params{
		CoolingMax:  c.Fire.CoolingMax,
		SparkChance: c.Fire.SparkChance,
	}
}

// ColorDepth resolves the color setting. A nil depth means "auto": the
// terminal controller negotiates from the environment instead.
func (c *Config) ColorDepth() (*term.ColorDepth, error) {
	switch c.Display.Color {
	case "", "auto":
		return nil, nil
	case "truecolor", "24bit":
		d := term.TrueColor
		return &d, nil
	case "256", "indexed":
		d := term.Indexed256
		return &d, nil
	default:
		return nil, fmt.Errorf("config: unknown color mode %q", c.Display.Color)
	}
}

// BufferSize returns the display buffer capacity in bytes.
func (c *Config) BufferSize() int {
	if c.Display.BufferKiB <= 0 {
		return DefaultBufferKiB * 1024
	}
	return c.Display.BufferKiB * 1024
}
