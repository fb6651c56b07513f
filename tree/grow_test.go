package tree

import (
	"reflect"
	"testing"

	"github.com/vicky2004-art/plant-identifier/corpus"
	"github.com/vicky2004-art/plant-identifier/feature"
)

func TestGrowValidation(t *testing.T) {
	if _, err := Grow(corpus.Default(), 0); err != ErrInvalidDepth {
		t.Errorf("expected ErrInvalidDepth for depth 0, got %v", err)
	}
	if _, err := Grow(corpus.Default(), -3); err != ErrInvalidDepth {
		t.Errorf("expected ErrInvalidDepth for depth -3, got %v", err)
	}
	if _, err := Grow(corpus.New(nil), 4); err != ErrEmptyCorpus {
		t.Errorf("expected ErrEmptyCorpus for an empty corpus, got %v", err)
	}
	if _, err := Grow(nil, 4); err != ErrEmptyCorpus {
		t.Errorf("expected ErrEmptyCorpus for a nil corpus, got %v", err)
	}
}

func TestGrowZeroTrainingError(t *testing.T) {
	c := corpus.Default()
	tr, err := Grow(c, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range c.Samples() {
		label, _, err := tr.Classify(s.Vector())
		if err != nil {
			t.Fatalf("classifying %v: unexpected error: %v", s, err)
		}
		if label != s.Species {
			t.Errorf("classifying %v: expected %s, got %s", s, s.Species, label)
		}
	}
}

func TestGrowDeterminism(t *testing.T) {
	t1, err := Grow(corpus.Default(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t2, err := Grow(corpus.Default(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(t1.Root(), t2.Root()) {
		t.Error("growing the same corpus twice yielded structurally different trees")
	}
	names := feature.Names()
	if t1.Rules(names) != t2.Rules(names) {
		t.Error("growing the same corpus twice yielded different rule renderings")
	}
}

func TestGrowLearnedStructure(t *testing.T) {
	// With the embedded corpus and the fixed tie-break policy (lower
	// feature index, then lower threshold), induction must select
	// height <= 120 at the root and a leaf-width split on each side.
	tr, err := Grow(corpus.Default(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := tr.Root()
	if root.Leaf || root.Feature != feature.HeightCm || root.Threshold != 120 {
		t.Fatalf("expected root split height_cm <= 120, got %+v", root)
	}
	left := root.Left
	if left.Leaf || left.Feature != feature.LeafWidthCm || left.Threshold != 2.3 {
		t.Fatalf("expected left split leaf_width_cm <= 2.3, got %+v", left)
	}
	right := root.Right
	if right.Leaf || right.Feature != feature.LeafWidthCm || right.Threshold != 5.0 {
		t.Fatalf("expected right split leaf_width_cm <= 5.0, got %+v", right)
	}
	leaves := map[string]*Node{
		"lavender":  left.Left,
		"rose":      left.Right,
		"bamboo":    right.Left,
		"sunflower": right.Right,
	}
	for expected, n := range leaves {
		if !n.Leaf || n.Label != expected {
			t.Errorf("expected a %s leaf, got %+v", expected, n)
		}
		if n.Counts[expected] != 4 {
			t.Errorf("expected the %s leaf to hold its 4 training samples, got counts %v", expected, n.Counts)
		}
	}
}

func TestGrowDepthInvariant(t *testing.T) {
	for _, maxDepth := range []int{1, 2, 3, 4} {
		tr, err := Grow(corpus.Default(), maxDepth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d := depthOf(tr.Root()); d > maxDepth {
			t.Errorf("expected no path deeper than %d edges, got %d", maxDepth, d)
		}
	}
}

func depthOf(n *Node) int {
	if n == nil || n.Leaf {
		return 0
	}
	l, r := depthOf(n.Left), depthOf(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func TestGrowMajorityTieBreaksInCorpusOrder(t *testing.T) {
	// At depth 1 both leaves hold two labels with 4 samples each: the
	// label encountered first in corpus order must win.
	tr, err := Grow(corpus.Default(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := tr.Root()
	if root.Leaf {
		t.Fatal("expected a root split at depth 1")
	}
	if !root.Left.Leaf || root.Left.Label != "lavender" {
		t.Errorf("expected the left leaf tie to resolve to lavender, got %+v", root.Left)
	}
	if !root.Right.Leaf || root.Right.Label != "sunflower" {
		t.Errorf("expected the right leaf tie to resolve to sunflower, got %+v", root.Right)
	}
}

func TestGrowStopsWithoutImpurityReduction(t *testing.T) {
	// Two samples with identical features and different labels admit
	// no impurity-reducing split: a single leaf must be emitted with
	// the first corpus label as majority.
	c := corpus.New([]corpus.Sample{
		{HeightCm: 10, LeafWidthCm: 1, Stem: feature.StemThin, Species: "first"},
		{HeightCm: 10, LeafWidthCm: 1, Stem: feature.StemThin, Species: "second"},
	})
	tr, err := Grow(c, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := tr.Root()
	if !root.Leaf {
		t.Fatalf("expected a leaf root, got %+v", root)
	}
	if root.Label != "first" {
		t.Errorf("expected the tie to resolve to the first corpus label, got %s", root.Label)
	}
}

func TestGini(t *testing.T) {
	tests := []struct {
		n        int
		counts   []int
		expected float64
	}{
		{4, []int{4, 0}, 0.0},
		{4, []int{2, 2}, 0.5},
		{16, []int{4, 4, 4, 4}, 0.75},
	}
	for _, test := range tests {
		if g := gini(test.n, test.counts); g != test.expected {
			t.Errorf("gini(%d, %v): expected %v, got %v", test.n, test.counts, test.expected, g)
		}
	}
}
