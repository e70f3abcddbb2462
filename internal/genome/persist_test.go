package genome

import (
	"context"
	"errors"
	"testing"

	"sporos/internal/storage"
)

func seedTestPopulation(t *testing.T) *Population[float64] {
	t.Helper()
	f, err := NewFactory[float64](validSpec(), 31)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	pop, err := f.CreatePopulation(0.75, 8)
	if err != nil {
		t.Fatalf("CreatePopulation: %v", err)
	}
	return pop
}

func TestPopulationSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	pop := seedTestPopulation(t)
	id, err := SavePopulationSnapshot(ctx, store, "", pop)
	if err != nil {
		t.Fatalf("SavePopulationSnapshot: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated population id")
	}

	loaded, err := LoadPopulationSnapshot[float64](ctx, store, id)
	if err != nil {
		t.Fatalf("LoadPopulationSnapshot: %v", err)
	}

	if loaded.Spec != pop.Spec {
		t.Fatalf("spec mismatch: %+v vs %+v", loaded.Spec, pop.Spec)
	}
	if len(loaded.Genomes) != len(pop.Genomes) {
		t.Fatalf("expected %d genomes, got %d", len(pop.Genomes), len(loaded.Genomes))
	}
	for i, want := range pop.Genomes {
		got := loaded.Genomes[i]
		if got.ID != want.ID || got.Conns.Len() != want.Conns.Len() {
			t.Fatalf("genome %d shape mismatch after reload", i)
		}
		for j := 0; j < want.Conns.Len(); j++ {
			if got.Conns.IDs[j] != want.Conns.IDs[j] ||
				got.Conns.Sources[j] != want.Conns.Sources[j] ||
				got.Conns.Targets[j] != want.Conns.Targets[j] ||
				got.Conns.Weights[j] != want.Conns.Weights[j] {
				t.Fatalf("genome %d gene %d differs after reload", i, j)
			}
		}
	}
}

func TestPopulationSnapshotRestoresSequenceCursors(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	pop := seedTestPopulation(t)
	wantGenome := pop.GenomeIDs.Peek()
	wantInnovation := pop.Innovations.Peek()

	id, err := SavePopulationSnapshot(ctx, store, "cursors", pop)
	if err != nil {
		t.Fatalf("SavePopulationSnapshot: %v", err)
	}
	if id != "cursors" {
		t.Fatalf("expected caller-supplied id to stick, got %q", id)
	}

	loaded, err := LoadPopulationSnapshot[float64](ctx, store, id)
	if err != nil {
		t.Fatalf("LoadPopulationSnapshot: %v", err)
	}
	if got := loaded.GenomeIDs.Next(); got != wantGenome {
		t.Fatalf("genome id cursor restored to %d, expected %d", got, wantGenome)
	}
	if got := loaded.Innovations.Next(); got != wantInnovation {
		t.Fatalf("innovation cursor restored to %d, expected %d", got, wantInnovation)
	}
}

func TestLoadPopulationSnapshotPrecisionMismatch(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	pop := seedTestPopulation(t)
	id, err := SavePopulationSnapshot(ctx, store, "mismatch", pop)
	if err != nil {
		t.Fatalf("SavePopulationSnapshot: %v", err)
	}

	if _, err := LoadPopulationSnapshot[float32](ctx, store, id); !errors.Is(err, ErrPrecision) {
		t.Fatalf("expected ErrPrecision, got %v", err)
	}
}

func TestLoadPopulationSnapshotMissing(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := LoadPopulationSnapshot[float64](ctx, store, "nope"); err == nil {
		t.Fatal("expected error for missing population")
	}
}

func TestLoadPopulationSnapshotResortsNonCanonical(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	pop := seedTestPopulation(t)
	g := pop.Genomes[0]
	n := g.Conns.Len()
	if n < 2 {
		t.Fatalf("test needs a genome with at least 2 connections, got %d", n)
	}
	// Reverse the stored order before persisting.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		g.Conns.IDs[i], g.Conns.IDs[j] = g.Conns.IDs[j], g.Conns.IDs[i]
		g.Conns.Sources[i], g.Conns.Sources[j] = g.Conns.Sources[j], g.Conns.Sources[i]
		g.Conns.Targets[i], g.Conns.Targets[j] = g.Conns.Targets[j], g.Conns.Targets[i]
		g.Conns.Weights[i], g.Conns.Weights[j] = g.Conns.Weights[j], g.Conns.Weights[i]
	}

	id, err := SavePopulationSnapshot(ctx, store, "resort", pop)
	if err != nil {
		t.Fatalf("SavePopulationSnapshot: %v", err)
	}
	loaded, err := LoadPopulationSnapshot[float64](ctx, store, id)
	if err != nil {
		t.Fatalf("LoadPopulationSnapshot: %v", err)
	}
	if !loaded.Genomes[0].Conns.IsCanonical() {
		t.Fatal("reloaded genome not canonicalized")
	}
}
