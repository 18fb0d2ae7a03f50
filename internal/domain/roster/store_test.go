package roster

import "testing"

func seededStore() *Store {
	return NewStore(Seed())
}

func TestAddAssignsFreshID(t *testing.T) {
	store := seededStore()

	added := store.Add(Employee{FirstName: "Test", LastName: "User"})
	if added.ID != 13 {
		t.Fatalf("expected id 13 for first add on a 12-record seed, got %d", added.ID)
	}

	got, ok := store.Get(added.ID)
	if !ok {
		t.Fatal("expected added employee to be retrievable by id")
	}
	if got.FirstName != "Test" {
		t.Fatalf("expected stored record, got %+v", got)
	}
}

func TestAddAfterRemoveDoesNotReuseID(t *testing.T) {
	store := seededStore()

	store.Remove(3)
	added := store.Add(Employee{FirstName: "New", LastName: "Hire"})

	if _, ok := store.Get(3); ok {
		t.Fatal("removed id should stay absent")
	}
	if added.ID <= 12 {
		t.Fatalf("expected an unused id after deletion, got %d", added.ID)
	}
	seen := map[int]bool{}
	for _, emp := range store.List() {
		if seen[emp.ID] {
			t.Fatalf("duplicate id %d after delete-then-add", emp.ID)
		}
		seen[emp.ID] = true
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	store := seededStore()

	record, _ := store.Get(5)
	record.Position = "Senior"
	store.Update(record)

	if store.Len() != 12 {
		t.Fatalf("update must not change collection size, got %d", store.Len())
	}
	list := store.List()
	if list[4].ID != 5 || list[4].Position != "Senior" {
		t.Fatalf("expected record 5 updated in place, got %+v", list[4])
	}
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	store := seededStore()
	before := store.List()

	store.Update(Employee{ID: 999, FirstName: "Ghost"})

	after := store.List()
	if len(after) != len(before) {
		t.Fatalf("expected no size change, got %d", len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("expected collection unchanged at %d", i)
		}
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := seededStore()

	store.Remove(7)
	store.Remove(7)

	if store.Len() != 11 {
		t.Fatalf("expected 11 records after double remove, got %d", store.Len())
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	store := seededStore()

	calls := 0
	unsubscribe := store.Subscribe(func() { calls++ })

	store.Add(Employee{FirstName: "A"})
	store.Remove(1)
	if calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls)
	}

	store.Update(Employee{ID: 999})
	if calls != 2 {
		t.Fatalf("no-op update must not notify, got %d", calls)
	}

	unsubscribe()
	store.Remove(2)
	if calls != 2 {
		t.Fatalf("expected no notification after unsubscribe, got %d", calls)
	}
}

func TestSubscriberMayReadStore(t *testing.T) {
	store := seededStore()

	var observed int
	store.Subscribe(func() { observed = store.Len() })

	store.Remove(1)
	if observed != 11 {
		t.Fatalf("subscriber should observe the mutated collection, got %d", observed)
	}
}
