package sqlkb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vicky2004-art/plant-identifier/kb"
	"github.com/vicky2004-art/plant-identifier/kb/sqlkb"
	"github.com/vicky2004-art/plant-identifier/kb/sqlkb/sqlite3adapter"
)

func openTestStore(t *testing.T) kb.Store {
	t.Helper()
	adapter, err := sqlite3adapter.New(filepath.Join(t.TempDir(), "kb.db"), 1)
	if err != nil {
		t.Fatalf("creating sqlite3 adapter: %v", err)
	}
	store, err := sqlkb.Open(context.Background(), adapter)
	if err != nil {
		t.Fatalf("opening sql knowledge base: %v", err)
	}
	t.Cleanup(func() { store.Close(context.Background()) })
	return store
}

func TestSQLStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	r, err := store.Get(ctx, "rose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Errorf("expected no record on a fresh database, got %v", r)
	}

	record := &kb.Record{
		Label:       "rose",
		Name:        "Garden Rose (Rosa spp.)",
		Family:      "Rosaceae",
		Group:       "Flowering shrub",
		Image:       "images/rose.jpg",
		Description: "A woody perennial flowering shrub.",
		OtherPlants: []string{"Wild Rose (Rosa canina)", "China Rose (Rosa chinensis)"},
	}
	if err := store.Put(ctx, record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err = store.Get(ctx, "rose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil {
		t.Fatal("expected the stored record, got none")
	}
	if r.Name != record.Name || r.Family != record.Family || r.Group != record.Group {
		t.Errorf("expected %+v, got %+v", record, r)
	}
	if len(r.OtherPlants) != 2 || r.OtherPlants[0] != record.OtherPlants[0] {
		t.Errorf("expected related species %v, got %v", record.OtherPlants, r.OtherPlants)
	}
}

func TestSQLStorePutReplaces(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.Put(ctx, &kb.Record{Label: "rose", Name: "old"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Put(ctx, &kb.Record{Label: "rose", Name: "new"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := store.Get(ctx, "rose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "new" {
		t.Errorf("expected the record to be replaced, got %+v", r)
	}
	labels, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 1 || labels[0] != "rose" {
		t.Errorf("expected a single rose label, got %v", labels)
	}
}
