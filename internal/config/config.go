// Package config provides YAML-based game configuration loading and
// validation for Zombie Survival Queue.
package config

// ZombiesConfig contains all tunable constants of the simulation.
// Defaults reproduce the fixed formulas of the game.
type ZombiesConfig struct {
	PlayArea   PlayArea   `yaml:"play_area"`
	Player     Player     `yaml:"player"`
	Projectile Projectile `yaml:"projectile"`
	Enemy      Enemy      `yaml:"enemy"`
	Waves      Waves      `yaml:"waves"`
	Timing     Timing     `yaml:"timing"`
}

// PlayArea defines the logical field in play-area units.
type PlayArea struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Player defines the player avatar.
type Player struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Health int `yaml:"health"`
	Speed  int `yaml:"speed"` // Units per tick per axis
}

// Projectile defines the shots fired by the player.
type Projectile struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`  // Units per tick, upward
	Damage int `yaml:"damage"` // Health removed from the enemy hit
}

// Enemy defines zombie spawning and contact parameters.
type Enemy struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	SpawnY         int     `yaml:"spawn_y"`
	MarginLeft     int     `yaml:"margin_left"`  // Minimum spawn x
	MarginRight    int     `yaml:"margin_right"` // Spawn x stays <= width - margin_right
	MinHealth      int     `yaml:"min_health"`
	MaxHealth      int     `yaml:"max_health"`
	HealthPerLevel int     `yaml:"health_per_level"`
	BaseSpeed      float64 `yaml:"base_speed"`      // Units per tick at level 0
	SpeedPerLevel  float64 `yaml:"speed_per_level"` // Added per level
	ContactDamage  int     `yaml:"contact_damage"`  // Taken by the enemy while touching the player
	BiteDamage     int     `yaml:"bite_damage"`     // Taken by the player while touched
	BreachDamage   int     `yaml:"breach_damage"`   // Taken by the player when an enemy gets through
	BreachOffset   int     `yaml:"breach_offset"`   // Breach line is height - breach_offset
}

// Waves defines level structure and spawn cadence.
type Waves struct {
	Quota            int `yaml:"quota"`              // Enemies spawned per level
	SpawnInterval    int `yaml:"spawn_interval"`     // Ticks between spawn waves
	MaxLevel         int `yaml:"max_level"`          // Clearing this level wins the game
	DoubleSpawnLevel int `yaml:"double_spawn_level"` // From this level on, waves spawn two enemies
}

// Timing defines tick rate and the length of the non-simulated phases.
type Timing struct {
	TickRate      int `yaml:"tick_rate"`
	AnnounceTicks int `yaml:"announce_ticks"`  // "Level N Starting..."
	ClearedTicks  int `yaml:"cleared_ticks"`   // "Level N Cleared!"
	GameOverTicks int `yaml:"game_over_ticks"` // Terminal message hold
}
