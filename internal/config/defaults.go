package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in tuning, matching defaults/jumper.yaml.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			Width:   480,
			Height:  640,
			Gravity: 500,
		},
		Camera: CameraConfig{
			DeadzoneWidth:  720, // 1.5x the view width
			DeadzoneHeight: 0,
		},
		Player: PlayerConfig{
			StartX:       240,
			StartY:       320,
			Width:        60,
			Height:       95,
			JumpVelocity: -450,
			MoveSpeed:    200,
		},
		Platforms: PlatformConfig{
			Count:            5,
			Spacing:          150,
			Width:            95,
			Height:           24,
			BaseX:            240,
			BaseY:            550,
			InitialMinX:      80,
			InitialMaxX:      400,
			RecycleThreshold: 640,
			MinGap:           80,
			MaxGap:           120,
			MinX:             40,
			MaxX:             440,
		},
		Clouds: CloudConfig{
			Count:            3,
			Spacing:          250,
			Width:            128,
			Height:           70,
			RecycleThreshold: 800,
			MinGap:           20,
			MaxGap:           60,
		},
		Collectibles: CollectibleConfig{
			Width:  28,
			Height: 26,
		},
		Rules: RulesConfig{
			LoseMargin: 200,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
