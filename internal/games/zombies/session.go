package zombies

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/zombie-queue/internal/config"
)

// ErrNotInMenu is returned by ChooseMenu once the session has left the start menu.
var ErrNotInMenu = errors.New("session is not in the start menu")

// MenuChoice is a start menu button.
type MenuChoice int

const (
	MenuStart MenuChoice = iota
	MenuExit
)

// String returns the button label.
func (c MenuChoice) String() string {
	if c == MenuExit {
		return "EXIT"
	}
	return "START GAME"
}

// Input is one tick of player input.
// Fire may be held; a projectile spawns only when it goes from false to true.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

// TickKind classifies the outcome of a tick.
type TickKind int

const (
	TickContinue      TickKind = iota // Simulation ran
	TickLevelAnnounce                 // A level message is showing
	TickLost
	TickWon
	TickMenu   // Still in the start menu
	TickExited // Quit or EXIT chosen
)

// String returns the kind name.
func (k TickKind) String() string {
	switch k {
	case TickContinue:
		return "continue"
	case TickLevelAnnounce:
		return "announce"
	case TickLost:
		return "lost"
	case TickWon:
		return "won"
	case TickMenu:
		return "menu"
	case TickExited:
		return "exited"
	default:
		return "unknown"
	}
}

// TickResult is returned by RunTick.
type TickResult struct {
	Kind     TickKind
	Level    int // Level being announced for TickLevelAnnounce, current level otherwise
	Snapshot Snapshot
}

// Outcome is the final state of a session.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeExited
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeExited:
		return "exited"
	default:
		return "running"
	}
}

// SessionResult summarizes a session.
type SessionResult struct {
	Outcome      Outcome
	Level        int // MaxLevel+1 after a win
	Ticks        uint64
	Kills        int
	PlayerHealth int
}

// State is all mutable game data of a session.
type State struct {
	Player      Player
	Projectiles []Projectile
	Roster      *Roster
	Progress    Progression
	Tick        uint64 // Ticks run outside the menu and terminal phases
	Kills       int
}

// Session drives one run of the game, from the start menu to a terminal phase.
// It is not safe for concurrent use.
type Session struct {
	cfg     config.ZombiesConfig
	seed    int64
	engine  Engine
	spawner *Spawner
	state   State

	prevFire bool
	quit     bool
}

// NewSession validates cfg and returns a session waiting in the start menu.
func NewSession(cfg config.ZombiesConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s := &Session{
		cfg:     cfg,
		seed:    seed,
		engine:  NewEngine(cfg),
		spawner: NewSpawner(seed, cfg),
	}
	s.Reset()
	return s, nil
}

// Reset returns the session to the start menu with fresh state and the original seed.
func (s *Session) Reset() {
	s.spawner.Reset(s.seed)
	s.state = State{
		Player:      NewPlayer(s.cfg.Player),
		Projectiles: make([]Projectile, 0, 16),
		Roster:      NewRoster(),
		Progress:    NewProgression(s.cfg),
	}
	s.prevFire = false
	s.quit = false
}

// Reseed resets the session and uses seed for every later Reset.
func (s *Session) Reseed(seed int64) {
	s.seed = seed
	s.Reset()
}

// Config returns the session configuration.
func (s *Session) Config() config.ZombiesConfig {
	return s.cfg
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.Progress.Phase
}

// ChooseMenu applies a start menu choice.
func (s *Session) ChooseMenu(choice MenuChoice) error {
	if s.state.Progress.Phase != PhaseMenu {
		return ErrNotInMenu
	}
	switch choice {
	case MenuStart:
		s.state.Progress.Start()
	case MenuExit:
		s.state.Progress.Exit()
	default:
		return fmt.Errorf("unknown menu choice %d", choice)
	}
	return nil
}

// Quit requests the session to end. It takes effect at the next tick.
func (s *Session) Quit() {
	s.quit = true
}

// RunTick advances the session by one tick.
//
// While playing, a tick runs in order: cadence timer and spawn check, fire,
// player movement, projectile pass, enemy pass, then the lost and cleared checks.
func (s *Session) RunTick(in Input) TickResult {
	fired := in.Fire && !s.prevFire
	s.prevFire = in.Fire

	prog := &s.state.Progress
	if s.quit && !prog.Phase.Terminal() {
		prog.Exit()
	}

	switch prog.Phase {
	case PhaseMenu:
		return s.result(TickMenu)
	case PhaseWon:
		return s.result(TickWon)
	case PhaseLost:
		return s.result(TickLost)
	case PhaseExited:
		return s.result(TickExited)
	case PhaseAnnounce, PhaseCleared:
		s.state.Tick++
		res := s.result(TickLevelAnnounce)
		prog.TickTimed()
		return res
	}

	s.state.Tick++
	s.simulate(in, fired)

	if !s.state.Player.Alive() {
		prog.Lose()
		return s.result(TickLost)
	}
	if prog.LevelCleared(s.state.Roster) {
		prog.CompleteLevel()
		if prog.Phase == PhaseWon {
			return s.result(TickWon)
		}
		return s.result(TickLevelAnnounce)
	}
	return s.result(TickContinue)
}

// simulate runs one playing tick on the state.
func (s *Session) simulate(in Input, fired bool) {
	st := &s.state
	prog := &st.Progress

	if prog.TickSpawnTimer() {
		wave, spawned := s.spawner.SpawnWave(prog.Level, prog.Quota, prog.Spawned)
		for _, e := range wave {
			st.Roster.Add(e)
		}
		prog.SpawnDone(spawned)
	}

	if fired {
		s.engine.Fire(st)
	}
	s.engine.MovePlayer(st, in)
	st.Kills += s.engine.StepProjectiles(st)
	st.Kills += s.engine.StepEnemies(st)
	st.Roster.Compact()
}

func (s *Session) result(kind TickKind) TickResult {
	return TickResult{
		Kind:     kind,
		Level:    s.state.Progress.Level,
		Snapshot: s.Snapshot(),
	}
}

// Result returns the session outcome so far.
func (s *Session) Result() SessionResult {
	var outcome Outcome
	switch s.state.Progress.Phase {
	case PhaseWon:
		outcome = OutcomeWon
	case PhaseLost:
		outcome = OutcomeLost
	case PhaseExited:
		outcome = OutcomeExited
	default:
		outcome = OutcomeRunning
	}
	return SessionResult{
		Outcome:      outcome,
		Level:        s.state.Progress.Level,
		Ticks:        s.state.Tick,
		Kills:        s.state.Kills,
		PlayerHealth: s.state.Player.Health,
	}
}
