package corpus

import (
	"strings"
	"testing"

	"github.com/vicky2004-art/plant-identifier/feature"
)

func TestDefaultCorpus(t *testing.T) {
	c := Default()
	if c.Len() != 16 {
		t.Errorf("expected 16 samples, got %d", c.Len())
	}
	expectedLabels := []string{"lavender", "rose", "sunflower", "bamboo"}
	labels := c.Labels()
	if len(labels) != len(expectedLabels) {
		t.Fatalf("expected labels %v, got %v", expectedLabels, labels)
	}
	for i, l := range expectedLabels {
		if labels[i] != l {
			t.Errorf("expected label %d to be %s, got %s", i, l, labels[i])
		}
	}
	perLabel := make(map[string]int)
	for _, s := range c.Samples() {
		perLabel[s.Species]++
	}
	for _, l := range expectedLabels {
		if perLabel[l] != 4 {
			t.Errorf("expected 4 %s samples, got %d", l, perLabel[l])
		}
	}
}

func TestCorpusImmutability(t *testing.T) {
	c := Default()
	samples := c.Samples()
	samples[0].Species = "tampered"
	if c.Samples()[0].Species == "tampered" {
		t.Error("mutating the slice returned by Samples altered the corpus")
	}
	labels := c.Labels()
	labels[0] = "tampered"
	if c.Labels()[0] == "tampered" {
		t.Error("mutating the slice returned by Labels altered the corpus")
	}
}

func TestVectors(t *testing.T) {
	c := New([]Sample{
		{30, 1.0, feature.StemThin, "lavender"},
		{300, 4.0, feature.StemThick, "bamboo"},
		{40, 1.5, feature.StemThin, "lavender"},
	})
	vectors, y := c.Vectors()
	if len(vectors) != 3 || len(y) != 3 {
		t.Fatalf("expected 3 vectors and 3 label ids, got %d and %d", len(vectors), len(y))
	}
	if vectors[1] != (feature.Vector{300, 4.0, 2.0}) {
		t.Errorf("unexpected vector for bamboo sample: %v", vectors[1])
	}
	expectedY := []int{0, 1, 0}
	for i := range expectedY {
		if y[i] != expectedY[i] {
			t.Errorf("expected label id %d for sample %d, got %d", expectedY[i], i, y[i])
		}
	}
}

func TestReadCSV(t *testing.T) {
	csv := `height_cm,leaf_width_cm,stem_quality,species
30,1.0,thin,lavender
80,5.0,medium,rose
`
	c, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", c.Len())
	}
	s := c.Samples()[1]
	if s.Species != "rose" || s.HeightCm != 80 || s.LeafWidthCm != 5.0 || s.Stem != feature.StemMedium {
		t.Errorf("unexpected second sample: %v", s)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"bad header", "height,width,stem,species\n30,1.0,thin,lavender\n"},
		{"unknown stem", "height_cm,leaf_width_cm,stem_quality,species\n30,1.0,woody,lavender\n"},
		{"non-numeric height", "height_cm,leaf_width_cm,stem_quality,species\ntall,1.0,thin,lavender\n"},
		{"missing label", "height_cm,leaf_width_cm,stem_quality,species\n30,1.0,thin,\n"},
	}
	for _, test := range tests {
		if _, err := ReadCSV(strings.NewReader(test.csv)); err == nil {
			t.Errorf("%s: expected an error, got none", test.name)
		}
	}
}

func TestReadYAML(t *testing.T) {
	yml := `species:
  lavender:
    - height_cm: 30
      leaf_width_cm: 1.0
      stem_quality: thin
    - height_cm: 40
      leaf_width_cm: 1.5
      stem_quality: thin
  bamboo:
    - height_cm: 300
      leaf_width_cm: 4.0
      stem_quality: thick
`
	c, err := ReadYAML([]byte(yml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", c.Len())
	}
	labels := c.Labels()
	if len(labels) != 2 || labels[0] != "lavender" || labels[1] != "bamboo" {
		t.Errorf("expected labels in document order [lavender bamboo], got %v", labels)
	}
}

func TestReadYAMLErrors(t *testing.T) {
	if _, err := ReadYAML([]byte("features: {}")); err == nil {
		t.Error("expected an error for a document without species, got none")
	}
	badStem := `species:
  lavender:
    - height_cm: 30
      leaf_width_cm: 1.0
      stem_quality: woody
`
	if _, err := ReadYAML([]byte(badStem)); err == nil {
		t.Error("expected an error for an unknown stem quality, got none")
	}
}
