package zombies

import "github.com/vovakirdan/zombie-queue/internal/config"

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseMenu     Phase = iota // Waiting for START GAME or EXIT
	PhaseAnnounce              // "Level N Starting..."
	PhasePlaying               // Simulation running
	PhaseCleared               // "Level N Cleared!"
	PhaseWon
	PhaseLost
	PhaseExited
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseAnnounce:
		return "announce"
	case PhasePlaying:
		return "playing"
	case PhaseCleared:
		return "cleared"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseExited
}

// Timed reports whether the phase is a fixed-length message with no simulation.
func (p Phase) Timed() bool {
	return p == PhaseAnnounce || p == PhaseCleared
}

// Progression tracks levels, per-level spawning and the timed message phases.
type Progression struct {
	Phase        Phase
	Level        int // 1-based; MaxLevel+1 once won
	ClearedLevel int // Level shown by the Cleared phase
	Spawned      int // Enemies spawned this level
	Quota        int
	SpawnTimer   int // Ticks since the last spawn wave
	PhaseTicks   int // Ticks left in a timed phase

	spawnInterval int
	maxLevel      int
	announceTicks int
	clearedTicks  int
}

// NewProgression returns a progression waiting in the menu at level 1.
func NewProgression(cfg config.ZombiesConfig) Progression {
	return Progression{
		Phase:         PhaseMenu,
		Level:         1,
		Quota:         cfg.Waves.Quota,
		spawnInterval: cfg.Waves.SpawnInterval,
		maxLevel:      cfg.Waves.MaxLevel,
		announceTicks: cfg.Timing.AnnounceTicks,
		clearedTicks:  cfg.Timing.ClearedTicks,
	}
}

// TickSpawnTimer advances the cadence timer and reports whether a wave is due.
// The caller must call SpawnDone after spawning.
func (p *Progression) TickSpawnTimer() bool {
	p.SpawnTimer++
	return p.Level <= p.maxLevel && p.Spawned < p.Quota && p.SpawnTimer >= p.spawnInterval
}

// SpawnDone records a spawn wave and restarts the cadence timer.
func (p *Progression) SpawnDone(spawned int) {
	p.Spawned = spawned
	p.SpawnTimer = 0
}

// LevelCleared reports whether the current level is done: every enemy of the
// quota has spawned and none is left alive.
func (p Progression) LevelCleared(r *Roster) bool {
	return r.Empty() && p.Spawned >= p.Quota
}

// CompleteLevel moves to the next level, or to PhaseWon after the last one.
// The cadence timer is left alone.
func (p *Progression) CompleteLevel() {
	p.ClearedLevel = p.Level
	p.Level++
	p.Spawned = 0
	if p.Level > p.maxLevel {
		p.Phase = PhaseWon
		p.PhaseTicks = 0
		return
	}
	p.enterCleared()
}

// Start leaves the menu and announces the current level.
func (p *Progression) Start() {
	p.enterAnnounce()
}

// Lose ends the session as lost.
func (p *Progression) Lose() {
	p.Phase = PhaseLost
	p.PhaseTicks = 0
}

// Exit ends the session without an outcome.
func (p *Progression) Exit() {
	p.Phase = PhaseExited
	p.PhaseTicks = 0
}

// TickTimed counts down a timed phase and moves on when it runs out.
func (p *Progression) TickTimed() {
	if !p.Phase.Timed() {
		return
	}
	p.PhaseTicks--
	if p.PhaseTicks > 0 {
		return
	}
	switch p.Phase {
	case PhaseCleared:
		p.enterAnnounce()
	case PhaseAnnounce:
		p.Phase = PhasePlaying
		p.PhaseTicks = 0
	}
}

func (p *Progression) enterCleared() {
	if p.clearedTicks <= 0 {
		p.enterAnnounce()
		return
	}
	p.Phase = PhaseCleared
	p.PhaseTicks = p.clearedTicks
}

func (p *Progression) enterAnnounce() {
	if p.announceTicks <= 0 {
		p.Phase = PhasePlaying
		p.PhaseTicks = 0
		return
	}
	p.Phase = PhaseAnnounce
	p.PhaseTicks = p.announceTicks
}
