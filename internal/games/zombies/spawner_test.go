package zombies

import (
	"testing"

	"github.com/vovakirdan/zombie-queue/internal/config"
)

func TestSpawnWaveSize(t *testing.T) {
	cfg := config.DefaultZombiesConfig()

	tests := []struct {
		name        string
		level       int
		already     int
		wantCount   int
		wantSpawned int
	}{
		{"level 1 spawns one", 1, 0, 1, 1},
		{"level 2 spawns one", 2, 3, 1, 4},
		{"level 3 spawns two", 3, 0, 2, 2},
		{"level 5 spawns two", 5, 2, 2, 4},
		{"level 3 one short of quota", 3, 4, 1, 5},
		{"level 4 at quota", 4, 5, 0, 5},
		{"level 1 at quota", 1, 5, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(7, cfg)
			wave, spawned := s.SpawnWave(tt.level, cfg.Waves.Quota, tt.already)
			if len(wave) != tt.wantCount {
				t.Errorf("spawned %d enemies, expected %d", len(wave), tt.wantCount)
			}
			if spawned != tt.wantSpawned {
				t.Errorf("spawned count = %d, expected %d", spawned, tt.wantSpawned)
			}
			if spawned > cfg.Waves.Quota {
				t.Errorf("spawned count %d exceeds quota %d", spawned, cfg.Waves.Quota)
			}
		})
	}
}

func TestSpawnWaveRanges(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	s := NewSpawner(99, cfg)

	for level := 1; level <= 5; level++ {
		for range 200 {
			wave, _ := s.SpawnWave(level, 1000, 0)
			for _, e := range wave {
				if e.Rect.X < 40 || e.Rect.X > 710 {
					t.Fatalf("x = %v outside [40, 710]", e.Rect.X)
				}
				if e.Rect.Y != -50 {
					t.Fatalf("y = %v, expected -50", e.Rect.Y)
				}
				if e.Rect.W != 50 || e.Rect.H != 50 {
					t.Fatalf("size = %vx%v, expected 50x50", e.Rect.W, e.Rect.H)
				}
				lo, hi := 30+level*10, 60+level*10
				if e.Health < lo || e.Health > hi {
					t.Fatalf("level %d health = %d outside [%d, %d]", level, e.Health, lo, hi)
				}
				if e.MaxHealth != e.Health {
					t.Fatalf("MaxHealth = %d, expected %d", e.MaxHealth, e.Health)
				}
			}
		}
	}
}

func TestSpawnWaveDeterminism(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	a := NewSpawner(12345, cfg)
	b := NewSpawner(12345, cfg)

	for i := range 50 {
		wa, _ := a.SpawnWave(3, 10, 0)
		wb, _ := b.SpawnWave(3, 10, 0)
		for j := range wa {
			if wa[j] != wb[j] {
				t.Fatalf("wave %d enemy %d differs: %+v vs %+v", i, j, wa[j], wb[j])
			}
		}
	}
}

func TestSpawnerReset(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	s := NewSpawner(5, cfg)
	first, _ := s.SpawnWave(1, 5, 0)

	s.SpawnWave(1, 5, 0)
	s.Reset(5)
	again, _ := s.SpawnWave(1, 5, 0)

	if first[0] != again[0] {
		t.Errorf("Reset should replay the sequence: %+v vs %+v", first[0], again[0])
	}
}
