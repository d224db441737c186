package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jo-hoe/goadvent/internal/common"
	"github.com/jo-hoe/goadvent/internal/render"
)

type Database struct {
	Type             string `yaml:"type" validate:"required,oneof=sqlite redis"`
	ConnectionString string `yaml:"connectionString" validate:"required"`
}

// Animation controls how animator scenes are turned into images.
type Animation struct {
	FrameDelay int  `yaml:"frameDelay" validate:"min=1,max=500"`
	MaxFrames  int  `yaml:"maxFrames" validate:"min=0"`
	MaxWidth   int  `yaml:"maxWidth" validate:"min=0"`
	MaxHeight  int  `yaml:"maxHeight" validate:"min=0"`
	Dither     bool `yaml:"dither"`
}

type ServiceConfig struct {
	Port      int       `yaml:"port" validate:"min=1,max=65535"`
	InputDir  string    `yaml:"inputDir" validate:"required"`
	Database  Database  `yaml:"database"`
	Animation Animation `yaml:"animation"`
}

// DefaultConfig returns a configuration that needs no external services.
func DefaultConfig() *ServiceConfig {
	opts := render.DefaultOptions()
	return &ServiceConfig{
		Port:     8080,
		InputDir: "inputs",
		Database: Database{
			Type:             "sqlite",
			ConnectionString: ":memory:",
		},
		Animation: Animation{
			FrameDelay: opts.FrameDelay,
			MaxFrames:  opts.MaxFrames,
			MaxWidth:   opts.MaxWidth,
			MaxHeight:  opts.MaxHeight,
			Dither:     opts.Dither,
		},
	}
}

// LoadConfig loads configuration from the specified YAML file. Keys missing
// from the file keep their DefaultConfig values.
func LoadConfig(configPath string) (*ServiceConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}
	return config, nil
}

func (c *ServiceConfig) Validate() error {
	return common.ValidateStruct(nil, c)
}

// RenderOptions converts the animation settings for the render package.
func (c *ServiceConfig) RenderOptions() render.Options {
	return render.Options{
		MaxWidth:   c.Animation.MaxWidth,
		MaxHeight:  c.Animation.MaxHeight,
		FrameDelay: c.Animation.FrameDelay,
		MaxFrames:  c.Animation.MaxFrames,
		Dither:     c.Animation.Dither,
	}
}
