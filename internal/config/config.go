// Package config provides YAML-based tuning for the jumper.
package config

import (
	"errors"
	"fmt"
)

// JumperConfig contains all tunables for the jumper scene.
// Distances are world units; the visible view is World.Width x World.Height.
type JumperConfig struct {
	World        WorldConfig       `yaml:"world"`
	Camera       CameraConfig      `yaml:"camera"`
	Player       PlayerConfig      `yaml:"player"`
	Platforms    PlatformConfig    `yaml:"platforms"`
	Clouds       CloudConfig       `yaml:"clouds"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Rules        RulesConfig       `yaml:"rules"`
}

// WorldConfig defines the view size and gravity.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // Units per second squared, positive is down
}

// CameraConfig defines the follow dead zone, centred on the view.
type CameraConfig struct {
	DeadzoneWidth  float64 `yaml:"deadzone_width"`
	DeadzoneHeight float64 `yaml:"deadzone_height"`
}

// PlayerConfig defines the bunny.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative is up
	MoveSpeed    float64 `yaml:"move_speed"`
}

// PlatformConfig defines the platform pool and its recycle rule.
type PlatformConfig struct {
	Count            int     `yaml:"count"`   // Pooled platforms besides the base
	Spacing          float64 `yaml:"spacing"` // Initial vertical spacing
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	BaseX            float64 `yaml:"base_x"`
	BaseY            float64 `yaml:"base_y"`
	InitialMinX      int     `yaml:"initial_min_x"`
	InitialMaxX      int     `yaml:"initial_max_x"`
	RecycleThreshold float64 `yaml:"recycle_threshold"`
	MinGap           int     `yaml:"min_gap"`
	MaxGap           int     `yaml:"max_gap"`
	MinX             int     `yaml:"min_x"`
	MaxX             int     `yaml:"max_x"`
}

// CloudConfig defines the decorative cloud pool.
type CloudConfig struct {
	Count            int     `yaml:"count"`
	Spacing          float64 `yaml:"spacing"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	RecycleThreshold float64 `yaml:"recycle_threshold"`
	MinGap           int     `yaml:"min_gap"`
	MaxGap           int     `yaml:"max_gap"`
}

// CollectibleConfig defines the carrot size.
type CollectibleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RulesConfig defines the lose condition.
type RulesConfig struct {
	LoseMargin float64 `yaml:"lose_margin"` // Distance below the lowest platform
}

// Validate reports every impossible setting at once.
func (c JumperConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("player jump_velocity must be negative (up), got %v", c.Player.JumpVelocity))
	}
	if c.Platforms.Count < 1 {
		errs = append(errs, fmt.Errorf("platforms count must be at least 1, got %d", c.Platforms.Count))
	}
	if c.Platforms.Width <= 0 || c.Platforms.Height <= 0 {
		errs = append(errs, errors.New("platform size must be positive"))
	}
	if c.Platforms.MinGap > c.Platforms.MaxGap {
		errs = append(errs, fmt.Errorf("platforms min_gap %d exceeds max_gap %d", c.Platforms.MinGap, c.Platforms.MaxGap))
	}
	if c.Platforms.MinGap <= 0 {
		errs = append(errs, fmt.Errorf("platforms min_gap must be positive, got %d", c.Platforms.MinGap))
	}
	if c.Platforms.MinX > c.Platforms.MaxX {
		errs = append(errs, fmt.Errorf("platforms min_x %d exceeds max_x %d", c.Platforms.MinX, c.Platforms.MaxX))
	}
	if c.Platforms.InitialMinX > c.Platforms.InitialMaxX {
		errs = append(errs, fmt.Errorf("platforms initial_min_x %d exceeds initial_max_x %d", c.Platforms.InitialMinX, c.Platforms.InitialMaxX))
	}
	if c.Platforms.RecycleThreshold <= 0 {
		errs = append(errs, errors.New("platforms recycle_threshold must be positive"))
	}
	if c.Clouds.Count < 0 {
		errs = append(errs, fmt.Errorf("clouds count must not be negative, got %d", c.Clouds.Count))
	}
	if c.Clouds.MinGap > c.Clouds.MaxGap {
		errs = append(errs, fmt.Errorf("clouds min_gap %d exceeds max_gap %d", c.Clouds.MinGap, c.Clouds.MaxGap))
	}
	if c.Clouds.MinGap <= 0 && c.Clouds.Count > 0 {
		errs = append(errs, fmt.Errorf("clouds min_gap must be positive, got %d", c.Clouds.MinGap))
	}
	if c.Collectibles.Width <= 0 || c.Collectibles.Height <= 0 {
		errs = append(errs, errors.New("collectible size must be positive"))
	}
	if c.Rules.LoseMargin < 0 {
		errs = append(errs, fmt.Errorf("rules lose_margin must not be negative, got %v", c.Rules.LoseMargin))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid jumper config: %w", errors.Join(errs...))
	}
	return nil
}
