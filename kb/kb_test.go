package kb

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r, err := s.Get(ctx, "rose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Errorf("expected no record on an empty store, got %v", r)
	}
	err = s.Put(ctx, &Record{Label: "rose", Name: "Garden Rose"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err = s.Get(ctx, "rose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil || r.Name != "Garden Rose" {
		t.Errorf("expected the stored record, got %v", r)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, l := range []string{"rose", "bamboo", "lavender"} {
		if err := s.Put(ctx, &Record{Label: l}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	labels, err := s.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"bamboo", "lavender", "rose"}
	if len(labels) != len(expected) {
		t.Fatalf("expected labels %v, got %v", expected, labels)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("expected label %d to be %s, got %s", i, expected[i], labels[i])
		}
	}
}

func TestDefaultRecords(t *testing.T) {
	ctx := context.Background()
	s := Default()
	for _, label := range []string{"lavender", "rose", "sunflower", "bamboo"} {
		r, err := s.Get(ctx, label)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r == nil {
			t.Fatalf("expected a record for %s, got none", label)
		}
		if r.Name == "" || r.Family == "" || r.Group == "" || r.Description == "" {
			t.Errorf("expected a complete record for %s, got %+v", label, r)
		}
		if len(r.OtherPlants) == 0 {
			t.Errorf("expected related species for %s", label)
		}
	}
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := Default()
	if _, err := s.Get(ctx, "rose"); err == nil {
		t.Error("expected an error on a cancelled context, got none")
	}
	if err := s.Put(ctx, &Record{Label: "x"}); err == nil {
		t.Error("expected an error on a cancelled context, got none")
	}
	if _, err := s.List(ctx); err == nil {
		t.Error("expected an error on a cancelled context, got none")
	}
}
