package zombies

import (
	"github.com/vovakirdan/zombie-queue/internal/config"
	"github.com/vovakirdan/zombie-queue/internal/core"
)

// EnemyID identifies an enemy for its whole lifetime. IDs are never reused within a session.
type EnemyID uint64

// HealthTier buckets a health ratio for display.
type HealthTier int

const (
	TierCritical HealthTier = iota // ratio <= 0.3
	TierWounded                    // ratio <= 0.6
	TierHealthy
)

// String returns the tier name.
func (t HealthTier) String() string {
	switch t {
	case TierHealthy:
		return "healthy"
	case TierWounded:
		return "wounded"
	default:
		return "critical"
	}
}

// TierFor maps a health ratio to its display tier.
func TierFor(ratio float64) HealthTier {
	switch {
	case ratio > 0.6:
		return TierHealthy
	case ratio > 0.3:
		return TierWounded
	default:
		return TierCritical
	}
}

// Player is the avatar at the bottom of the play area.
type Player struct {
	Rect   core.RectF
	Health int // Can go below zero; the game is lost at <= 0
}

// NewPlayer places a player at the configured start position.
func NewPlayer(cfg config.Player) Player {
	return Player{
		Rect: core.NewRectF(
			float64(cfg.StartX), float64(cfg.StartY),
			float64(cfg.Width), float64(cfg.Height),
		),
		Health: cfg.Health,
	}
}

// Alive reports whether the player still has health.
func (p Player) Alive() bool {
	return p.Health > 0
}

// Enemy is a descending zombie.
type Enemy struct {
	ID        EnemyID
	Rect      core.RectF
	Health    int
	MaxHealth int // Fixed at spawn
}

// HealthRatio returns Health/MaxHealth clamped to [0, 1].
func (e Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return core.Clamp(float64(e.Health)/float64(e.MaxHealth), 0, 1)
}

// HealthTier returns the display tier of the enemy's health.
func (e Enemy) HealthTier() HealthTier {
	return TierFor(e.HealthRatio())
}

// Projectile is a shot travelling upward.
type Projectile struct {
	Rect core.RectF
}

// NewProjectile spawns a shot centered on the player's top edge.
func NewProjectile(p Player, cfg config.Projectile) Projectile {
	w := float64(cfg.Width)
	return Projectile{
		Rect: core.NewRectF(p.Rect.CenterX()-w/2, p.Rect.Y, w, float64(cfg.Height)),
	}
}
