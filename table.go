package growmap

import "hash/maphash"

const (
	// Size of the small table, and the initial fill ceiling.
	smallFill = 8

	slotLive    = 0x00
	slotDeleted = 0xFE
)

// slot is one occupied position in a store. The key's hash is computed once,
// when the slot is filled, and never recomputed. A deleted slot keeps its
// position but carries the slotDeleted state; the state tag (rather than a
// reserved key value) is what makes a tombstone unforgeable by user data.
type slot[K comparable, V any] struct {
	state uint8

	hash  uint64
	key   K
	value V
}

type table[K comparable, V any] struct {
	// Pretending to be stack memory: the fixed-size table every instance
	// starts with.
	small []slot[K, V]

	// Pretending to be heap memory: authoritative after the first grow,
	// append-only, never rehashed.
	big []slot[K, V]

	// Live (non-tombstone) entries.
	used int

	// Fill ceiling. Starts at smallFill, doubles on every grow, resets
	// only on clear.
	fill int

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	t.small = make([]slot[K, V], 0, smallFill)
	t.fill = smallFill

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

// active returns whichever store is currently authoritative. Callers must
// re-fetch it on every operation: a grow inside set switches the answer from
// small to big mid-lifetime.
func (t *table[K, V]) active() []slot[K, V] {
	if t.fill <= smallFill {
		return t.small
	}

	return t.big
}

func (t *table[K, V]) get(key K) (V, bool) {
	h := t.hashFunc(key)

	store := t.active()
	for i := range store {
		if store[i].state == slotLive && store[i].hash == h {
			return store[i].value, true
		}
	}

	return t.emptyV, false
}

func (t *table[K, V]) set(key K, value V) {
	h := t.hashFunc(key)

	// 1. Update in place if the key is already there. No count change, no
	// growth check.
	store := t.active()
	for i := range store {
		if store[i].state == slotLive && store[i].hash == h {
			store[i].value = value
			return
		}
	}

	ns := slot[K, V]{state: slotLive, hash: h, key: key, value: value}

	// 2. Recycle the first tombstone if there is one.
	for i := range store {
		if store[i].state == slotDeleted {
			store[i] = ns
			t.bumpUsed()

			return
		}
	}

	// 3. Append to the end of the active store.
	if t.fill <= smallFill {
		t.small = append(t.small, ns)
	} else {
		t.big = append(t.big, ns)
	}

	t.bumpUsed()
}

func (t *table[K, V]) delete(key K) bool {
	h := t.hashFunc(key)

	store := t.active()
	for i := range store {
		if store[i].state == slotLive && store[i].hash == h {
			// Tombstone the slot in place; the position persists until a
			// later insert recycles it.
			store[i] = slot[K, V]{state: slotDeleted}
			t.used--

			return true
		}
	}

	return false
}

// bumpUsed records a freshly inserted key. The counter is bumped first so the
// new total is what gets tested against the old ceiling.
func (t *table[K, V]) bumpUsed() {
	t.used++
	if 3*t.used > 2*t.fill {
		t.grow()
	}
}

// grow promotes small to big on the first call (copying every slot,
// tombstones included, in order), then doubles the fill ceiling. Later grows
// only bump the ceiling; big is never reallocated or rehashed.
func (t *table[K, V]) grow() {
	if t.fill == smallFill {
		t.big = append(t.big, t.small...)
		t.small = nil
	}

	t.fill *= 2
}

func (t *table[K, V]) len() int {
	return t.used
}

func (t *table[K, V]) clear() {
	t.small = make([]slot[K, V], 0, smallFill)
	t.big = nil
	t.fill = smallFill
	t.used = 0
}

func (t *table[K, V]) stats() Stats {
	store := t.active()

	tombstones := 0
	for i := range store {
		if store[i].state == slotDeleted {
			tombstones++
		}
	}

	return Stats{
		Size:       t.used,
		Fill:       t.fill,
		Slots:      len(store),
		Tombstones: tombstones,
		Promoted:   t.fill > smallFill,
	}
}
