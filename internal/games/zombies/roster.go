package zombies

import "iter"

// Roster is the single registry of live enemies.
//
// Enemies are owned by an arena keyed by ID. A separate ID sequence records spawn
// order; removal only deletes from the arena and the sequence skips missing IDs
// until Compact drops them. Spawn order and membership therefore cannot diverge.
type Roster struct {
	arena  map[EnemyID]*Enemy
	order  []EnemyID
	nextID EnemyID
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		arena:  make(map[EnemyID]*Enemy),
		order:  make([]EnemyID, 0, 16),
		nextID: 1,
	}
}

// Add registers an enemy, assigns it a fresh ID, and returns the ID.
func (r *Roster) Add(e Enemy) EnemyID {
	id := r.nextID
	r.nextID++
	e.ID = id
	r.arena[id] = &e
	r.order = append(r.order, id)
	return id
}

// Get returns the live enemy with the given ID.
func (r *Roster) Get(id EnemyID) (*Enemy, bool) {
	e, ok := r.arena[id]
	return e, ok
}

// Remove deletes an enemy. It reports whether the enemy was live.
func (r *Roster) Remove(id EnemyID) bool {
	if _, ok := r.arena[id]; !ok {
		return false
	}
	delete(r.arena, id)
	return true
}

// Len returns the number of live enemies.
func (r *Roster) Len() int {
	return len(r.arena)
}

// Empty reports whether no enemies are live.
func (r *Roster) Empty() bool {
	return len(r.arena) == 0
}

// All yields live enemies in spawn order.
// Enemies removed during iteration are skipped.
func (r *Roster) All() iter.Seq[*Enemy] {
	return func(yield func(*Enemy) bool) {
		for _, id := range r.order {
			e, ok := r.arena[id]
			if !ok {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// IDs returns a copy of the live IDs in spawn order.
func (r *Roster) IDs() []EnemyID {
	ids := make([]EnemyID, 0, len(r.arena))
	for e := range r.All() {
		ids = append(ids, e.ID)
	}
	return ids
}

// Compact drops removed IDs from the spawn sequence.
func (r *Roster) Compact() {
	live := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.arena[id]; ok {
			live = append(live, id)
		}
	}
	r.order = live
}

// Clear removes every enemy. IDs keep increasing.
func (r *Roster) Clear() {
	clear(r.arena)
	r.order = r.order[:0]
}

// Consistent reports whether every live enemy appears exactly once in the
// spawn sequence and the sequence holds no duplicates.
func (r *Roster) Consistent() bool {
	seen := make(map[EnemyID]bool, len(r.order))
	for _, id := range r.order {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	for id, e := range r.arena {
		if !seen[id] || e.ID != id {
			return false
		}
	}
	return true
}
