package zombies

import (
	"errors"
	"testing"

	"github.com/vovakirdan/zombie-queue/internal/config"
	"github.com/vovakirdan/zombie-queue/internal/core"
)

// quickConfig skips the timed message phases.
func quickConfig() config.ZombiesConfig {
	cfg := config.DefaultZombiesConfig()
	cfg.Timing.AnnounceTicks = 0
	cfg.Timing.ClearedTicks = 0
	return cfg
}

func newPlayingSession(t *testing.T, cfg config.ZombiesConfig) *Session {
	t.Helper()
	s, err := NewSession(cfg, 42)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.ChooseMenu(MenuStart); err != nil {
		t.Fatalf("ChooseMenu() failed: %v", err)
	}
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", s.Phase())
	}
	return s
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	cfg.Waves.SpawnInterval = -1

	_, err := NewSession(cfg, 1)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestMenu(t *testing.T) {
	s, err := NewSession(quickConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}

	if res := s.RunTick(Input{Fire: true}); res.Kind != TickMenu {
		t.Errorf("tick in menu = %v, expected menu", res.Kind)
	}
	if err := s.ChooseMenu(MenuStart); err != nil {
		t.Fatalf("ChooseMenu(Start) failed: %v", err)
	}
	if err := s.ChooseMenu(MenuExit); !errors.Is(err, ErrNotInMenu) {
		t.Errorf("second ChooseMenu = %v, expected ErrNotInMenu", err)
	}
}

func TestMenuExit(t *testing.T) {
	s, err := NewSession(quickConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ChooseMenu(MenuExit); err != nil {
		t.Fatal(err)
	}

	if res := s.RunTick(Input{}); res.Kind != TickExited {
		t.Errorf("tick after EXIT = %v, expected exited", res.Kind)
	}
	if got := s.Result().Outcome; got != OutcomeExited {
		t.Errorf("outcome = %v, expected exited", got)
	}
}

func TestFiveSpawnsInThreeHundredTicks(t *testing.T) {
	s := newPlayingSession(t, quickConfig())

	for tick := 1; tick <= 300; tick++ {
		res := s.RunTick(Input{})
		if res.Kind != TickContinue {
			t.Fatalf("tick %d: kind = %v, expected continue", tick, res.Kind)
		}
		if !s.state.Roster.Consistent() {
			t.Fatalf("tick %d: roster inconsistent", tick)
		}
		if tick == 299 && s.state.Progress.Spawned != 4 {
			t.Errorf("after 299 ticks spawned = %d, expected 4", s.state.Progress.Spawned)
		}
	}

	snap := s.Snapshot()
	if snap.Spawned != 5 {
		t.Errorf("spawned = %d, expected 5", snap.Spawned)
	}
	if snap.QueueLen != 5 || len(snap.Enemies) != 5 {
		t.Errorf("queue = %d (%d views), expected 5", snap.QueueLen, len(snap.Enemies))
	}

	// Quota reached: no further spawns
	for range 300 {
		s.RunTick(Input{})
	}
	if got := s.state.Progress.Spawned; got != 5 {
		t.Errorf("spawned after quota = %d, expected 5", got)
	}
}

func TestKillingWaveAnnouncesNextLevel(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	for range 300 {
		s.RunTick(Input{})
	}

	// Line the wave up above the player, one shot each
	i := 0
	for e := range s.state.Roster.All() {
		e.Rect.X = s.state.Player.Rect.X
		e.Rect.Y = 400 - float64(i)*60
		e.Health = 25
		i++
	}

	var res TickResult
	for tick := range 200 {
		res = s.RunTick(Input{Fire: tick%2 == 0})
		if !s.state.Roster.Consistent() {
			t.Fatalf("tick %d: roster inconsistent", tick)
		}
		if res.Kind != TickContinue {
			break
		}
		if s.state.Progress.Level != 1 {
			t.Fatalf("level changed before the result reported it")
		}
	}

	if res.Kind != TickLevelAnnounce {
		t.Fatalf("kind = %v, expected announce", res.Kind)
	}
	if res.Level != 2 || res.Snapshot.Level != 2 {
		t.Errorf("announced level %d (snapshot %d), expected 2", res.Level, res.Snapshot.Level)
	}
	if res.Snapshot.Spawned != 0 {
		t.Errorf("spawned = %d, expected reset to 0", res.Snapshot.Spawned)
	}
	if res.Snapshot.Kills != 5 {
		t.Errorf("kills = %d, expected 5", res.Snapshot.Kills)
	}
	if res.Snapshot.PlayerHealth != 100 {
		t.Errorf("player health = %d, expected 100", res.Snapshot.PlayerHealth)
	}
}

func TestNoClearBeforeQuotaSpawned(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	for range 120 {
		s.RunTick(Input{})
	}

	// Roster empty but quota not reached
	s.state.Roster.Clear()
	res := s.RunTick(Input{})

	if res.Kind != TickContinue {
		t.Errorf("kind = %v, expected continue", res.Kind)
	}
	if s.state.Progress.Level != 1 {
		t.Errorf("level = %d, expected 1", s.state.Progress.Level)
	}
}

func TestQuotaGatingAtDoubleSpawnLevel(t *testing.T) {
	cfg := quickConfig()
	s := newPlayingSession(t, cfg)
	s.state.Progress.Level = 3
	s.state.Progress.Spawned = 4
	s.state.Progress.SpawnTimer = cfg.Waves.SpawnInterval - 1

	s.RunTick(Input{})

	if s.state.Progress.Spawned != 5 {
		t.Errorf("spawned = %d, expected 5", s.state.Progress.Spawned)
	}
	if s.state.Roster.Len() != 1 {
		t.Errorf("roster = %d, expected 1", s.state.Roster.Len())
	}
	if s.state.Progress.SpawnTimer != 0 {
		t.Errorf("spawn timer = %d, expected 0 after a wave", s.state.Progress.SpawnTimer)
	}
}

func TestLostByBreachPreemptsClear(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	s.state.Progress.Spawned = s.state.Progress.Quota
	s.state.Player.Health = 10
	s.state.Roster.Add(enemyAt(0, 540, 30))

	res := s.RunTick(Input{})

	if res.Kind != TickLost {
		t.Fatalf("kind = %v, expected lost", res.Kind)
	}
	if s.state.Progress.Level != 1 {
		t.Errorf("level = %d, clear must not run on a lost tick", s.state.Progress.Level)
	}
	r := s.Result()
	if r.Outcome != OutcomeLost || r.PlayerHealth != 0 {
		t.Errorf("result = %+v, expected lost with 0 health", r)
	}

	// Terminal phase is sticky
	if res := s.RunTick(Input{}); res.Kind != TickLost {
		t.Errorf("kind after loss = %v, expected lost", res.Kind)
	}
}

func TestLostByContact(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	s.state.Player.Health = 5
	p := s.state.Player.Rect
	s.state.Roster.Add(enemyAt(p.X, p.Y-10, 100))

	if res := s.RunTick(Input{}); res.Kind != TickLost {
		t.Fatalf("kind = %v, expected lost", res.Kind)
	}
	if s.Result().PlayerHealth != 0 {
		t.Errorf("player health = %d, expected 0", s.Result().PlayerHealth)
	}
}

func TestWinAfterLastLevel(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	s.state.Progress.Level = 5
	s.state.Progress.Spawned = 5

	res := s.RunTick(Input{})

	if res.Kind != TickWon {
		t.Fatalf("kind = %v, expected won", res.Kind)
	}
	if res.Snapshot.Phase != PhaseWon {
		t.Errorf("phase = %v, expected won", res.Snapshot.Phase)
	}
	if res.Snapshot.ClearedLevel != 5 {
		t.Errorf("cleared level = %d, expected 5", res.Snapshot.ClearedLevel)
	}

	for range 10 {
		res := s.RunTick(Input{Fire: true})
		if res.Kind != TickWon || res.Snapshot.Phase == PhasePlaying {
			t.Fatalf("won session resumed play: %v / %v", res.Kind, res.Snapshot.Phase)
		}
	}
	if got := s.Result().Outcome; got != OutcomeWon {
		t.Errorf("outcome = %v, expected won", got)
	}
}

func TestTimedPhases(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	s, err := NewSession(cfg, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ChooseMenu(MenuStart); err != nil {
		t.Fatal(err)
	}

	for i := range cfg.Timing.AnnounceTicks {
		res := s.RunTick(Input{})
		if res.Kind != TickLevelAnnounce || res.Level != 1 {
			t.Fatalf("announce tick %d = %v level %d", i, res.Kind, res.Level)
		}
		if res.Snapshot.Banner() != "Level 1 Starting..." {
			t.Fatalf("banner = %q", res.Snapshot.Banner())
		}
	}
	if s.state.Progress.SpawnTimer != 0 {
		t.Errorf("spawn timer advanced during announce: %d", s.state.Progress.SpawnTimer)
	}

	if res := s.RunTick(Input{}); res.Kind != TickContinue {
		t.Fatalf("after announce kind = %v, expected continue", res.Kind)
	}

	// Clear level 1 directly
	s.state.Progress.Spawned = s.state.Progress.Quota
	res := s.RunTick(Input{})
	if res.Kind != TickLevelAnnounce || res.Snapshot.Phase != PhaseCleared {
		t.Fatalf("clear tick = %v / %v", res.Kind, res.Snapshot.Phase)
	}
	if res.Snapshot.Banner() != "Level 1 Cleared!" {
		t.Errorf("banner = %q", res.Snapshot.Banner())
	}

	timer := s.state.Progress.SpawnTimer
	messages := 0
	for {
		res = s.RunTick(Input{})
		if res.Kind != TickLevelAnnounce {
			break
		}
		messages++
	}
	if want := cfg.Timing.ClearedTicks + cfg.Timing.AnnounceTicks; messages != want {
		t.Errorf("message ticks = %d, expected %d", messages, want)
	}
	if res.Kind != TickContinue || res.Level != 2 {
		t.Errorf("after messages = %v level %d, expected continue at level 2", res.Kind, res.Level)
	}
	if s.state.Progress.SpawnTimer != timer+1 {
		t.Errorf("spawn timer = %d, expected %d", s.state.Progress.SpawnTimer, timer+1)
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	s := newPlayingSession(t, quickConfig())

	for range 10 {
		s.RunTick(Input{Fire: true})
	}
	if n := len(s.state.Projectiles); n != 1 {
		t.Fatalf("held fire spawned %d projectiles, expected 1", n)
	}

	for i := range 10 {
		s.RunTick(Input{Fire: i%2 == 1})
	}
	if n := len(s.state.Projectiles); n != 6 {
		t.Errorf("toggled fire: %d projectiles, expected 6", n)
	}
}

func TestProjectilesCarryOverLevels(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	s.RunTick(Input{Fire: true})
	s.state.Progress.Spawned = s.state.Progress.Quota

	res := s.RunTick(Input{})
	if res.Kind != TickLevelAnnounce {
		t.Fatalf("kind = %v, expected announce", res.Kind)
	}
	if len(res.Snapshot.Projectiles) != 1 {
		t.Errorf("projectiles = %d, expected 1 carried into level 2", len(res.Snapshot.Projectiles))
	}
}

func TestQuit(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	s.RunTick(Input{})
	s.Quit()

	if res := s.RunTick(Input{}); res.Kind != TickExited {
		t.Errorf("kind = %v, expected exited", res.Kind)
	}
	if got := s.Result().Outcome; got != OutcomeExited {
		t.Errorf("outcome = %v, expected exited", got)
	}
}

func TestQuitKeepsTerminalOutcome(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	s.state.Progress.Level = 5
	s.state.Progress.Spawned = 5
	s.RunTick(Input{})
	s.Quit()
	s.RunTick(Input{})

	if got := s.Result().Outcome; got != OutcomeWon {
		t.Errorf("outcome = %v, expected won", got)
	}
}

func TestReset(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	for i := range 200 {
		s.RunTick(Input{Left: true, Fire: i%2 == 0})
	}

	s.Reset()

	if s.Phase() != PhaseMenu {
		t.Errorf("phase = %v, expected menu", s.Phase())
	}
	snap := s.Snapshot()
	if snap.Tick != 0 || snap.Kills != 0 || snap.QueueLen != 0 || len(snap.Projectiles) != 0 {
		t.Errorf("reset left state behind: %+v", snap)
	}
	if snap.Player != core.NewRectF(375, 520, 50, 50) || snap.PlayerHealth != 100 {
		t.Errorf("player not reset: %+v / %d", snap.Player, snap.PlayerHealth)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newPlayingSession(t, quickConfig())
	for range 61 {
		s.RunTick(Input{Fire: true})
	}

	snap := s.Snapshot()
	if len(snap.Enemies) != 1 || len(snap.Projectiles) != 1 {
		t.Fatalf("unexpected snapshot: %d enemies, %d projectiles", len(snap.Enemies), len(snap.Projectiles))
	}
	snap.Enemies[0].Health = -999
	snap.Projectiles[0].Y = -999

	again := s.Snapshot()
	if again.Enemies[0].Health == -999 || again.Projectiles[0].Y == -999 {
		t.Error("mutating a snapshot changed session state")
	}
}

func TestSessionDeterminism(t *testing.T) {
	inputs := make([]Input, 900)
	for i := range inputs {
		inputs[i] = Input{
			Left:  i%90 < 30,
			Right: i%90 >= 60,
			Fire:  i%6 == 0,
		}
	}

	run := func(seed int64) Snapshot {
		s, err := NewSession(quickConfig(), seed)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.ChooseMenu(MenuStart); err != nil {
			t.Fatal(err)
		}
		for _, in := range inputs {
			s.RunTick(in)
			if !s.state.Roster.Consistent() {
				t.Fatal("roster inconsistent")
			}
		}
		return s.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Kills != snap2.Kills || snap1.PlayerHealth != snap2.PlayerHealth {
		t.Errorf("Determinism failed: %+v vs %+v", snap1, snap2)
	}

	snap3 := run(54321)
	if snap1.Hash() == snap3.Hash() {
		t.Error("different seeds produced identical runs")
	}
}
