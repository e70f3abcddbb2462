package storage

import (
	"context"
	"testing"

	"sporos/internal/model"
)

func testGenome(id uint32) model.GenomeRecord {
	return model.GenomeRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: CurrentSchemaVersion,
			CodecVersion:  CurrentCodecVersion,
		},
		ID: id,
		Connections: []model.ConnectionRecord{
			{ID: 4, Source: 0, Target: 2, Weight: 0.5},
			{ID: 5, Source: 0, Target: 3, Weight: -1.5},
		},
	}
}

func testPopulation(id string, genomeIDs ...uint32) model.PopulationRecord {
	return model.PopulationRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: CurrentSchemaVersion,
			CodecVersion:  CurrentCodecVersion,
		},
		ID:               id,
		Inputs:           2,
		Outputs:          2,
		WeightMin:        -5,
		WeightMax:        5,
		Acyclic:          true,
		Precision:        "float64",
		NextGenomeID:     uint32(len(genomeIDs)),
		NextInnovationID: 8,
		GenomeIDs:        genomeIDs,
	}
}

func TestMemoryStoreGenomeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	want := testGenome(7)
	if err := store.SaveGenome(ctx, "pop-a", want); err != nil {
		t.Fatalf("SaveGenome: %v", err)
	}

	got, ok, err := store.GetGenome(ctx, "pop-a", 7)
	if err != nil {
		t.Fatalf("GetGenome: %v", err)
	}
	if !ok {
		t.Fatal("saved genome not found")
	}
	if got.ID != want.ID || len(got.Connections) != len(want.Connections) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if _, ok, err := store.GetGenome(ctx, "pop-b", 7); err != nil || ok {
		t.Fatalf("genome leaked across population namespaces: ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.GetGenome(ctx, "pop-a", 8); err != nil || ok {
		t.Fatalf("expected miss for unknown id: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStorePopulationRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	want := testPopulation("pop-a", 0, 1, 2)
	if err := store.SavePopulation(ctx, want); err != nil {
		t.Fatalf("SavePopulation: %v", err)
	}

	got, ok, err := store.GetPopulation(ctx, "pop-a")
	if err != nil {
		t.Fatalf("GetPopulation: %v", err)
	}
	if !ok {
		t.Fatal("saved population not found")
	}
	if got.ID != want.ID || got.NextInnovationID != want.NextInnovationID || len(got.GenomeIDs) != 3 {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestMemoryStoreDeletePopulationRemovesGenomes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := store.SavePopulation(ctx, testPopulation("pop-a", 0)); err != nil {
		t.Fatalf("SavePopulation: %v", err)
	}
	if err := store.SaveGenome(ctx, "pop-a", testGenome(0)); err != nil {
		t.Fatalf("SaveGenome: %v", err)
	}
	if err := store.SaveGenome(ctx, "pop-b", testGenome(0)); err != nil {
		t.Fatalf("SaveGenome: %v", err)
	}

	if err := store.DeletePopulation(ctx, "pop-a"); err != nil {
		t.Fatalf("DeletePopulation: %v", err)
	}

	if _, ok, _ := store.GetPopulation(ctx, "pop-a"); ok {
		t.Fatal("deleted population still present")
	}
	if _, ok, _ := store.GetGenome(ctx, "pop-a", 0); ok {
		t.Fatal("deleted population's genome still present")
	}
	if _, ok, _ := store.GetGenome(ctx, "pop-b", 0); !ok {
		t.Fatal("delete removed another population's genome")
	}
}

func TestMemoryStoreListPopulationsSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		if err := store.SavePopulation(ctx, testPopulation(id)); err != nil {
			t.Fatalf("SavePopulation(%s): %v", id, err)
		}
	}

	ids, err := store.ListPopulations(ctx)
	if err != nil {
		t.Fatalf("ListPopulations: %v", err)
	}
	want := []string{"alpha", "bravo", "charlie"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}
