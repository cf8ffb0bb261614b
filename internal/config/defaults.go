package config

import (
	_ "embed"
)

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

// DefaultZombiesConfig returns the built-in configuration.
// It mirrors defaults/zombies.yaml and is used when the embedded file cannot be parsed.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		PlayArea: PlayArea{
			Width:  800,
			Height: 600,
		},
		Player: Player{
			StartX: 375,
			StartY: 520,
			Width:  50,
			Height: 50,
			Health: 100,
			Speed:  5,
		},
		Projectile: Projectile{
			Width:  10,
			Height: 20,
			Speed:  8,
			Damage: 25,
		},
		Enemy: Enemy{
			Width:          50,
			Height:         50,
			SpawnY:         -50,
			MarginLeft:     40,
			MarginRight:    90,
			MinHealth:      30,
			MaxHealth:      60,
			HealthPerLevel: 10,
			BaseSpeed:      1.0,
			SpeedPerLevel:  0.3,
			ContactDamage:  10,
			BiteDamage:     5,
			BreachDamage:   10,
			BreachOffset:   60,
		},
		Waves: Waves{
			Quota:            5,
			SpawnInterval:    60,
			MaxLevel:         5,
			DoubleSpawnLevel: 3,
		},
		Timing: Timing{
			TickRate:      60,
			AnnounceTicks: 90,  // 1.5s
			ClearedTicks:  90,  // 1.5s
			GameOverTicks: 120, // 2s
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultZombiesYAML
}
