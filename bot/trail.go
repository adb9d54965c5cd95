package bot

import "cycles/game"

// DefaultTrailCapacity bounds how many of the bot's own recent cells are
// remembered for self-collision checks.
const DefaultTrailCapacity = 5000

// Trail is a bounded FIFO set of the bot's own recently visited cells. The
// server grid already carries every player's trail; this cache only guards
// against stepping back onto a cell the bot itself just claimed, without
// waiting for the next snapshot to reflect it.
type Trail struct {
	capacity int
	members  map[game.Position]struct{}
	order    []game.Position // ring buffer holding insertion order
	head     int             // index of the oldest entry
	size     int
}

// NewTrail returns a trail that remembers at most capacity positions.
func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		panic("trail capacity must be positive")
	}
	return &Trail{
		capacity: capacity,
		members:  make(map[game.Position]struct{}, capacity),
		// one spare slot so insertion happens before eviction
		order: make([]game.Position, capacity+1),
	}
}

// Record remembers p, evicting the oldest remembered position once the
// capacity is exceeded. Recording an already-present position is an ordinary
// insert: it consumes an order slot, and evicting the older copy later drops
// the membership.
func (t *Trail) Record(p game.Position) {
	tail := (t.head + t.size) % len(t.order)
	t.order[tail] = p
	t.members[p] = struct{}{}
	t.size++

	if t.size > t.capacity {
		oldest := t.order[t.head]
		delete(t.members, oldest)
		t.head = (t.head + 1) % len(t.order)
		t.size--
	}
}

// Contains reports whether p is currently remembered.
func (t *Trail) Contains(p game.Position) bool {
	_, ok := t.members[p]
	return ok
}

// Len returns the number of order slots in use.
func (t *Trail) Len() int {
	return t.size
}
