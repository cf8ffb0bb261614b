package zombies

import (
	"github.com/vovakirdan/zombie-queue/internal/config"
	"github.com/vovakirdan/zombie-queue/internal/core"
)

// Engine applies movement and collision rules to a State.
// It holds only configuration; all mutable data lives in the State passed in.
type Engine struct {
	cfg config.ZombiesConfig
}

// NewEngine creates an engine for the given configuration.
func NewEngine(cfg config.ZombiesConfig) Engine {
	return Engine{cfg: cfg}
}

// EnemySpeed returns the per-tick descent at a level.
func (e Engine) EnemySpeed(level int) float64 {
	return e.cfg.Enemy.BaseSpeed + float64(level)*e.cfg.Enemy.SpeedPerLevel
}

// Fire spawns a projectile from the player's current position.
func (e Engine) Fire(st *State) {
	st.Projectiles = append(st.Projectiles, NewProjectile(st.Player, e.cfg.Projectile))
}

// MovePlayer moves the player one step per held direction, kept inside the play area.
// Diagonals are not normalized.
func (e Engine) MovePlayer(st *State, in Input) {
	speed := float64(e.cfg.Player.Speed)
	r := &st.Player.Rect

	if in.Left {
		r.X -= speed
	}
	if in.Right {
		r.X += speed
	}
	if in.Up {
		r.Y -= speed
	}
	if in.Down {
		r.Y += speed
	}

	r.X = core.Clamp(r.X, 0, float64(e.cfg.PlayArea.Width)-r.W)
	r.Y = core.Clamp(r.Y, 0, float64(e.cfg.PlayArea.Height)-r.H)
}

// StepProjectiles advances every projectile and resolves hits.
// A projectile damages at most one enemy, the first overlapping one in spawn order.
// It returns the number of enemies destroyed.
func (e Engine) StepProjectiles(st *State) int {
	kills := 0
	damage := e.cfg.Projectile.Damage
	speed := float64(e.cfg.Projectile.Speed)

	live := st.Projectiles[:0]
	for _, p := range st.Projectiles {
		p.Rect.Y -= speed
		if p.Rect.Y < 0 {
			continue
		}

		hit := false
		for enemy := range st.Roster.All() {
			if !p.Rect.Intersects(enemy.Rect) {
				continue
			}
			enemy.Health -= damage
			if enemy.Health <= 0 {
				st.Roster.Remove(enemy.ID)
				kills++
			}
			hit = true
			break
		}
		if !hit {
			live = append(live, p)
		}
	}
	st.Projectiles = live
	return kills
}

// StepEnemies advances every live enemy and resolves player contact and breaches.
// Contact and breach are exclusive for an enemy within one tick; contact wins.
// It returns the number of enemies destroyed by contact.
func (e Engine) StepEnemies(st *State) int {
	kills := 0
	speed := e.EnemySpeed(st.Progress.Level)
	breachY := float64(e.cfg.PlayArea.Height - e.cfg.Enemy.BreachOffset)

	for _, id := range st.Roster.IDs() {
		enemy, ok := st.Roster.Get(id)
		if !ok {
			continue
		}
		enemy.Rect.Y += speed

		switch {
		case enemy.Rect.Intersects(st.Player.Rect):
			enemy.Health -= e.cfg.Enemy.ContactDamage
			st.Player.Health -= e.cfg.Enemy.BiteDamage
			if enemy.Health <= 0 {
				st.Roster.Remove(id)
				kills++
			}
		case enemy.Rect.Y > breachY:
			st.Player.Health -= e.cfg.Enemy.BreachDamage
			st.Roster.Remove(id)
		}
	}
	return kills
}
