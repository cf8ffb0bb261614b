package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
// It reports the first problem found.
func (c ZombiesConfig) Validate() error {
	checks := []struct {
		ok    bool
		field string
		msg   string
		value any
	}{
		{c.PlayArea.Width > 0, "play_area.width", "must be positive", c.PlayArea.Width},
		{c.PlayArea.Height > 0, "play_area.height", "must be positive", c.PlayArea.Height},

		{c.Player.Width > 0 && c.Player.Width <= c.PlayArea.Width, "player.width", "must fit the play area", c.Player.Width},
		{c.Player.Height > 0 && c.Player.Height <= c.PlayArea.Height, "player.height", "must fit the play area", c.Player.Height},
		{c.Player.Health > 0, "player.health", "must be positive", c.Player.Health},
		{c.Player.Speed >= 0, "player.speed", "must not be negative", c.Player.Speed},

		{c.Projectile.Width > 0, "projectile.width", "must be positive", c.Projectile.Width},
		{c.Projectile.Height > 0, "projectile.height", "must be positive", c.Projectile.Height},
		{c.Projectile.Speed >= 0, "projectile.speed", "must not be negative", c.Projectile.Speed},
		{c.Projectile.Damage >= 0, "projectile.damage", "must not be negative", c.Projectile.Damage},

		{c.Enemy.Width > 0, "enemy.width", "must be positive", c.Enemy.Width},
		{c.Enemy.Height > 0, "enemy.height", "must be positive", c.Enemy.Height},
		{c.Enemy.MarginLeft >= 0, "enemy.margin_left", "must not be negative", c.Enemy.MarginLeft},
		{c.Enemy.MarginLeft <= c.PlayArea.Width-c.Enemy.MarginRight, "enemy.margin_right", "leaves no room to spawn", c.Enemy.MarginRight},
		{c.Enemy.MinHealth > 0, "enemy.min_health", "must be positive", c.Enemy.MinHealth},
		{c.Enemy.MaxHealth >= c.Enemy.MinHealth, "enemy.max_health", "must be >= min_health", c.Enemy.MaxHealth},
		{c.Enemy.HealthPerLevel >= 0, "enemy.health_per_level", "must not be negative", c.Enemy.HealthPerLevel},
		{c.Enemy.BaseSpeed >= 0, "enemy.base_speed", "must not be negative", c.Enemy.BaseSpeed},
		{c.Enemy.SpeedPerLevel >= 0, "enemy.speed_per_level", "must not be negative", c.Enemy.SpeedPerLevel},
		{c.Enemy.ContactDamage >= 0, "enemy.contact_damage", "must not be negative", c.Enemy.ContactDamage},
		{c.Enemy.BiteDamage >= 0, "enemy.bite_damage", "must not be negative", c.Enemy.BiteDamage},
		{c.Enemy.BreachDamage >= 0, "enemy.breach_damage", "must not be negative", c.Enemy.BreachDamage},

		{c.Waves.Quota > 0, "waves.quota", "must be positive", c.Waves.Quota},
		{c.Waves.SpawnInterval >= 0, "waves.spawn_interval", "must not be negative", c.Waves.SpawnInterval},
		{c.Waves.MaxLevel > 0, "waves.max_level", "must be positive", c.Waves.MaxLevel},
		{c.Waves.DoubleSpawnLevel > 0, "waves.double_spawn_level", "must be positive", c.Waves.DoubleSpawnLevel},

		{c.Timing.TickRate > 0, "timing.tick_rate", "must be positive", c.Timing.TickRate},
		{c.Timing.AnnounceTicks >= 0, "timing.announce_ticks", "must not be negative", c.Timing.AnnounceTicks},
		{c.Timing.ClearedTicks >= 0, "timing.cleared_ticks", "must not be negative", c.Timing.ClearedTicks},
		{c.Timing.GameOverTicks >= 0, "timing.game_over_ticks", "must not be negative", c.Timing.GameOverTicks},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s %s (got %v)", ErrInvalidConfig, chk.field, chk.msg, chk.value)
		}
	}
	return nil
}
