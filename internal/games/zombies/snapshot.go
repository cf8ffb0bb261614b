package zombies

import (
	"fmt"
	"math"

	"github.com/vovakirdan/zombie-queue/internal/core"
)

// EnemyView is a read-only copy of an enemy for rendering.
type EnemyView struct {
	ID        EnemyID
	Rect      core.RectF
	Health    int
	MaxHealth int
}

// HealthRatio returns Health/MaxHealth clamped to [0, 1].
func (v EnemyView) HealthRatio() float64 {
	return Enemy{Health: v.Health, MaxHealth: v.MaxHealth}.HealthRatio()
}

// HealthTier returns the display tier of the enemy's health.
func (v EnemyView) HealthTier() HealthTier {
	return TierFor(v.HealthRatio())
}

// Snapshot is a copy of everything a frontend needs to draw one tick.
// It shares no memory with the session.
type Snapshot struct {
	Phase        Phase
	Tick         uint64
	Level        int
	ClearedLevel int
	PhaseTicks   int // Ticks left in Announce or Cleared

	Player          core.RectF
	PlayerHealth    int
	PlayerMaxHealth int

	Projectiles []core.RectF // Oldest first
	Enemies     []EnemyView  // Spawn order

	QueueLen int // Live enemies
	Spawned  int
	Quota    int
	Kills    int

	Width  int
	Height int
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	st := &s.state

	projectiles := make([]core.RectF, len(st.Projectiles))
	for i, p := range st.Projectiles {
		projectiles[i] = p.Rect
	}

	enemies := make([]EnemyView, 0, st.Roster.Len())
	for e := range st.Roster.All() {
		enemies = append(enemies, EnemyView{
			ID:        e.ID,
			Rect:      e.Rect,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
		})
	}

	return Snapshot{
		Phase:        st.Progress.Phase,
		Tick:         st.Tick,
		Level:        st.Progress.Level,
		ClearedLevel: st.Progress.ClearedLevel,
		PhaseTicks:   st.Progress.PhaseTicks,

		Player:          st.Player.Rect,
		PlayerHealth:    st.Player.Health,
		PlayerMaxHealth: s.cfg.Player.Health,

		Projectiles: projectiles,
		Enemies:     enemies,

		QueueLen: st.Roster.Len(),
		Spawned:  st.Progress.Spawned,
		Quota:    st.Progress.Quota,
		Kills:    st.Kills,

		Width:  s.cfg.PlayArea.Width,
		Height: s.cfg.PlayArea.Height,
	}
}

// Banner returns the centered message for the phase, or "" while playing.
func (snap *Snapshot) Banner() string {
	switch snap.Phase {
	case PhaseAnnounce:
		return fmt.Sprintf("Level %d Starting...", snap.Level)
	case PhaseCleared:
		return fmt.Sprintf("Level %d Cleared!", snap.ClearedLevel)
	case PhaseWon:
		return "YOU WON THE GAME!"
	case PhaseLost:
		return "Game Over"
	default:
		return ""
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHealth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spawned)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)        //#nosec G115 -- hash computation
	h = hashRect(h, snap.Player)

	for _, p := range snap.Projectiles {
		h = hashRect(h, p)
	}

	for _, e := range snap.Enemies {
		h = h*31 + uint64(e.ID)
		h = h*31 + uint64(e.Health)    //#nosec G115 -- hash computation
		h = h*31 + uint64(e.MaxHealth) //#nosec G115 -- hash computation
		h = hashRect(h, e.Rect)
	}

	return h
}

func hashRect(h uint64, r core.RectF) uint64 {
	h = h*31 + math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	h = h*31 + math.Float64bits(r.H)
	return h
}
