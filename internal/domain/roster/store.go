package roster

import "sync"

type subscriber struct {
	id int
	fn func()
}

// Store is the authoritative in-memory employee collection. Insertion order is
// display order. Mutations notify subscribers synchronously, in registration
// order, after the store lock is released.
type Store struct {
	mu     sync.Mutex
	items  []Employee
	nextID int
	subs   []subscriber
	subSeq int
}

// NewStore copies seed into a fresh store. Ids are assigned from a counter
// initialized past the highest seeded id, so a deleted id is never reissued.
func NewStore(seed []Employee) *Store {
	items := make([]Employee, len(seed))
	copy(items, seed)

	maxID := 0
	for _, emp := range items {
		if emp.ID > maxID {
			maxID = emp.ID
		}
	}
	return &Store{items: items, nextID: maxID + 1}
}

// Add assigns the next id to candidate, appends it and returns the stored
// record. No validation happens here; that is the upsert workflow's job.
func (s *Store) Add(candidate Employee) Employee {
	s.mu.Lock()
	candidate.ID = s.nextID
	s.nextID++
	s.items = append(s.items, candidate)
	s.mu.Unlock()

	s.notify()
	return candidate
}

// Update replaces the record with the same id in place, keeping its position.
// A missing id is a silent no-op.
func (s *Store) Update(record Employee) {
	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.items[i].ID == record.ID {
			s.items[i] = record
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.notify()
	}
}

// Remove deletes the record with the given id. A missing id is a silent no-op,
// which makes Remove idempotent.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	removed := false
	kept := s.items[:0]
	for _, emp := range s.items {
		if emp.ID == id {
			removed = true
			continue
		}
		kept = append(kept, emp)
	}
	s.items = kept
	s.mu.Unlock()

	if removed {
		s.notify()
	}
}

// Get returns the record with the given id, if present.
func (s *Store) Get(id int) (Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range s.items {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// List returns a copy of the collection in display order.
func (s *Store) List() []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Employee, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the current collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Subscribe registers fn to run after every mutation and returns an
// unsubscribe func. Subscribers may call back into the store.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	s.subSeq++
	id := s.subSeq
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}
