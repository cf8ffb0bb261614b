package zombies

import (
	"math/rand"

	"github.com/vovakirdan/zombie-queue/internal/config"
	"github.com/vovakirdan/zombie-queue/internal/core"
)

// Spawner creates enemy waves from a seeded RNG.
type Spawner struct {
	rng      *rand.Rand
	enemy    config.Enemy
	waves    config.Waves
	playArea config.PlayArea
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.ZombiesConfig) *Spawner {
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		enemy:    cfg.Enemy,
		waves:    cfg.Waves,
		playArea: cfg.PlayArea,
	}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// WaveSize returns how many enemies one wave tries to spawn at the given level.
func (s *Spawner) WaveSize(level int) int {
	if level >= s.waves.DoubleSpawnLevel {
		return 2
	}
	return 1
}

// SpawnWave creates up to WaveSize(level) enemies, never letting the level's
// spawned count exceed quota. It returns the new enemies and the updated count.
func (s *Spawner) SpawnWave(level, quota, alreadySpawned int) ([]Enemy, int) {
	spawned := alreadySpawned
	n := s.WaveSize(level)
	wave := make([]Enemy, 0, n)
	for range n {
		if spawned >= quota {
			break
		}
		wave = append(wave, s.spawnOne(level))
		spawned++
	}
	return wave, spawned
}

// spawnOne rolls a single enemy above the top edge.
func (s *Spawner) spawnOne(level int) Enemy {
	minX := s.enemy.MarginLeft
	maxX := s.playArea.Width - s.enemy.MarginRight
	x := minX
	if maxX > minX {
		x = minX + s.rng.Intn(maxX-minX+1)
	}

	hp := s.enemy.MinHealth
	if s.enemy.MaxHealth > s.enemy.MinHealth {
		hp = s.enemy.MinHealth + s.rng.Intn(s.enemy.MaxHealth-s.enemy.MinHealth+1)
	}
	hp += level * s.enemy.HealthPerLevel

	return Enemy{
		Rect: core.NewRectF(
			float64(x), float64(s.enemy.SpawnY),
			float64(s.enemy.Width), float64(s.enemy.Height),
		),
		Health:    hp,
		MaxHealth: hp,
	}
}
