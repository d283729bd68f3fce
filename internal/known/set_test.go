package known

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func loadSet(t *testing.T, store *MemoryStore, defaults []string) *Set {
	t.Helper()
	set, err := Load(context.Background(), store, defaults, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return set
}

func TestLoadSeedsDefaultsOnFirstUse(t *testing.T) {
	store := NewMemoryStore(nil)
	set := loadSet(t, store, []string{"the", "AND", "the"})
	if !reflect.DeepEqual(set.Words(), []string{"THE", "AND"}) {
		t.Fatalf("unexpected seeded words: %v", set.Words())
	}
	saved, saves := store.Saved()
	if saves != 1 || !reflect.DeepEqual(saved, []string{"THE", "AND"}) {
		t.Fatalf("expected seed to be persisted once, got %v (%d saves)", saved, saves)
	}
}

func TestLoadRestoresPersistedState(t *testing.T) {
	store := NewMemoryStore([]string{"CAT", "DOG"})
	set := loadSet(t, store, []string{"THE"})
	if !reflect.DeepEqual(set.Words(), []string{"CAT", "DOG"}) {
		t.Fatalf("unexpected words: %v", set.Words())
	}
	if _, saves := store.Saved(); saves != 0 {
		t.Fatalf("expected no write on restore, got %d", saves)
	}
}

func TestLoadRestoresEmptyStateWithoutSeeding(t *testing.T) {
	store := NewMemoryStore([]string{})
	set := loadSet(t, store, []string{"THE"})
	if set.Len() != 0 {
		t.Fatalf("expected empty persisted set to stay empty, got %v", set.Words())
	}
}

func TestLoadMalformedStateFailsSoft(t *testing.T) {
	store := NewMemoryStore(nil)
	store.FailWith(ErrMalformedState)
	set, err := Load(context.Background(), store, []string{"THE"}, nil)
	if err != nil {
		t.Fatalf("expected malformed state to be recovered, got %v", err)
	}
	if set.Len() != 0 {
		t.Fatalf("expected empty set, got %v", set.Words())
	}
}

func TestLoadPropagatesStoreFailure(t *testing.T) {
	store := NewMemoryStore(nil)
	store.FailWith(errors.New("disk gone"))
	if _, err := Load(context.Background(), store, nil, nil); err == nil {
		t.Fatalf("expected store failure to be returned")
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore([]string{"CAT"})
	set := loadSet(t, store, nil)

	changed, err := set.Add(ctx, " the ")
	if err != nil || !changed {
		t.Fatalf("expected add to change set, got %v %v", changed, err)
	}
	if !set.Contains("the") || !set.Contains("THE") {
		t.Fatalf("expected THE to be known")
	}
	saved, _ := store.Saved()
	if !reflect.DeepEqual(saved, []string{"CAT", "THE"}) {
		t.Fatalf("expected add to persist, got %v", saved)
	}

	changed, err = set.Remove(ctx, "The")
	if err != nil || !changed {
		t.Fatalf("expected remove to change set, got %v %v", changed, err)
	}
	if set.Contains("THE") {
		t.Fatalf("expected THE to be forgotten")
	}
	if !reflect.DeepEqual(set.Words(), []string{"CAT"}) {
		t.Fatalf("expected prior membership, got %v", set.Words())
	}
}

func TestAddRemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore([]string{"CAT"})
	set := loadSet(t, store, nil)

	if changed, err := set.Add(ctx, "cat"); err != nil || changed {
		t.Fatalf("expected duplicate add to be a no-op, got %v %v", changed, err)
	}
	if changed, err := set.Remove(ctx, "dog"); err != nil || changed {
		t.Fatalf("expected missing remove to be a no-op, got %v %v", changed, err)
	}
	if changed, err := set.Add(ctx, "   "); err != nil || changed {
		t.Fatalf("expected blank add to be a no-op, got %v %v", changed, err)
	}
	if _, saves := store.Saved(); saves != 0 {
		t.Fatalf("expected no writes for no-ops, got %d", saves)
	}
}

func TestMergeCommutativeAndIdempotent(t *testing.T) {
	ctx := context.Background()
	a := []string{"cat", "Dog", "CAT"}
	b := []string{"bird", "dog"}

	first := loadSet(t, NewMemoryStore([]string{}), nil)
	if _, err := first.Merge(ctx, a); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, err := first.Merge(ctx, b); err != nil {
		t.Fatalf("merge: %v", err)
	}

	second := loadSet(t, NewMemoryStore([]string{}), nil)
	if _, err := second.Merge(ctx, b); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, err := second.Merge(ctx, a); err != nil {
		t.Fatalf("merge: %v", err)
	}

	if !sameMembers(first, second) {
		t.Fatalf("merge not commutative: %v vs %v", first.Words(), second.Words())
	}
	if first.Len() != 3 {
		t.Fatalf("expected 3 distinct words, got %v", first.Words())
	}

	added, err := first.Merge(ctx, a)
	if err != nil || added != 0 {
		t.Fatalf("expected repeated merge to add nothing, got %d %v", added, err)
	}
}

func TestClearEmptiesAndPersists(t *testing.T) {
	store := NewMemoryStore([]string{"CAT", "DOG"})
	set := loadSet(t, store, nil)
	if err := set.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if set.Len() != 0 || set.Contains("CAT") {
		t.Fatalf("expected empty set, got %v", set.Words())
	}
	saved, saves := store.Saved()
	if len(saved) != 0 || saves != 1 {
		t.Fatalf("expected clear to persist an empty set, got %v (%d saves)", saved, saves)
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	store := NewMemoryStore([]string{})
	set := loadSet(t, store, nil)
	store.FailWith(errors.New("read-only"))
	changed, err := set.Add(context.Background(), "cat")
	if err == nil {
		t.Fatalf("expected save failure to be returned")
	}
	if !changed || !set.Contains("CAT") {
		t.Fatalf("expected in-memory set to keep the mutation")
	}
}

func sameMembers(a, b *Set) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, word := range a.Words() {
		if !b.Contains(word) {
			return false
		}
	}
	return true
}
