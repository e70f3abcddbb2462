//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "sporos-test.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Init(context.Background()); err == nil {
		t.Fatal("expected error for empty sqlite path")
	}
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "uninit.db"))
	if _, _, err := store.GetGenome(context.Background(), "pop", 0); err == nil {
		t.Fatal("expected error before Init")
	}
}

func TestSQLiteStoreGenomeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	want := testGenome(9)
	if err := store.SaveGenome(ctx, "pop-a", want); err != nil {
		t.Fatalf("SaveGenome: %v", err)
	}

	got, ok, err := store.GetGenome(ctx, "pop-a", 9)
	if err != nil {
		t.Fatalf("GetGenome: %v", err)
	}
	if !ok {
		t.Fatal("saved genome not found")
	}
	if got.ID != want.ID || len(got.Connections) != len(want.Connections) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if _, ok, err := store.GetGenome(ctx, "pop-b", 9); err != nil || ok {
		t.Fatalf("genome leaked across population namespaces: ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoreGenomeUpsert(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	genome := testGenome(1)
	if err := store.SaveGenome(ctx, "pop-a", genome); err != nil {
		t.Fatalf("SaveGenome: %v", err)
	}
	genome.Birth = 5
	if err := store.SaveGenome(ctx, "pop-a", genome); err != nil {
		t.Fatalf("SaveGenome overwrite: %v", err)
	}

	got, ok, err := store.GetGenome(ctx, "pop-a", 1)
	if err != nil || !ok {
		t.Fatalf("GetGenome: ok=%v err=%v", ok, err)
	}
	if got.Birth != 5 {
		t.Fatalf("upsert did not replace payload: birth=%d", got.Birth)
	}
}

func TestSQLiteStorePopulationLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	if err := store.SavePopulation(ctx, testPopulation("pop-a", 0, 1)); err != nil {
		t.Fatalf("SavePopulation: %v", err)
	}
	if err := store.SaveGenome(ctx, "pop-a", testGenome(0)); err != nil {
		t.Fatalf("SaveGenome: %v", err)
	}
	if err := store.SavePopulation(ctx, testPopulation("pop-b")); err != nil {
		t.Fatalf("SavePopulation: %v", err)
	}

	ids, err := store.ListPopulations(ctx)
	if err != nil {
		t.Fatalf("ListPopulations: %v", err)
	}
	if len(ids) != 2 || ids[0] != "pop-a" || ids[1] != "pop-b" {
		t.Fatalf("unexpected population ids: %v", ids)
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
}
