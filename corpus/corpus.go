/*
Package corpus provides the hand-labeled training data the species
classifier learns from: ordered collections of specimen samples
partitioned by species label, fixed at construction and immutable
thereafter.
*/
package corpus

import (
	"fmt"

	"github.com/vicky2004-art/plant-identifier/feature"
)

/*
Sample is one labeled training specimen: its measurements and the
species it belongs to.
*/
type Sample struct {
	HeightCm    float64
	LeafWidthCm float64
	Stem        feature.StemQuality
	Species     string
}

/*
Vector returns the sample's encoded feature vector.
*/
func (s Sample) Vector() feature.Vector {
	return feature.Vector{s.HeightCm, s.LeafWidthCm, s.Stem.Code()}
}

func (s Sample) String() string {
	return fmt.Sprintf("[%s %.1fcm leaf %.1fcm stem %s]", s.Species, s.HeightCm, s.LeafWidthCm, s.Stem)
}

/*
Corpus is an ordered, immutable sequence of labeled samples. The order
of samples, and therefore the order in which species labels are first
encountered, is part of the corpus identity: the tree inducer relies on
it to break ties deterministically.
*/
type Corpus struct {
	samples []Sample
	labels  []string
}

/*
New takes a slice of samples and returns a Corpus built from a copy of
them. Labels are recorded in order of first appearance.
*/
func New(samples []Sample) *Corpus {
	c := &Corpus{samples: append([]Sample{}, samples...)}
	seen := make(map[string]bool)
	for _, s := range c.samples {
		if !seen[s.Species] {
			seen[s.Species] = true
			c.labels = append(c.labels, s.Species)
		}
	}
	return c
}

/*
Samples returns a copy of the corpus samples in corpus order.
*/
func (c *Corpus) Samples() []Sample {
	return append([]Sample{}, c.samples...)
}

/*
Labels returns the species labels present in the corpus, in order of
first appearance.
*/
func (c *Corpus) Labels() []string {
	return append([]string{}, c.labels...)
}

/*
Len returns the number of samples in the corpus.
*/
func (c *Corpus) Len() int {
	return len(c.samples)
}

/*
Vectors returns the encoded feature vectors of all samples in corpus
order, along with the index of each sample's label within Labels().
*/
func (c *Corpus) Vectors() ([]feature.Vector, []int) {
	labelIDs := make(map[string]int, len(c.labels))
	for i, l := range c.labels {
		labelIDs[l] = i
	}
	vectors := make([]feature.Vector, len(c.samples))
	y := make([]int, len(c.samples))
	for i, s := range c.samples {
		vectors[i] = s.Vector()
		y[i] = labelIDs[s.Species]
	}
	return vectors, y
}

/*
Default returns the embedded training corpus: four hand-authored
samples for each of the four known species, chosen so the species are
cleanly separable.
*/
func Default() *Corpus {
	return New([]Sample{
		// lavender: short aromatic subshrub, thin stem, narrow leaves
		{30, 1.0, feature.StemThin, "lavender"},
		{40, 1.5, feature.StemThin, "lavender"},
		{60, 2.0, feature.StemThin, "lavender"},
		{50, 2.3, feature.StemThin, "lavender"},
		// rose: medium-height shrub, thin to medium stem
		{60, 4.0, feature.StemThin, "rose"},
		{80, 5.0, feature.StemMedium, "rose"},
		{120, 6.0, feature.StemMedium, "rose"},
		{90, 3.5, feature.StemThin, "rose"},
		// sunflower: tall annual, broad leaves
		{180, 10.0, feature.StemMedium, "sunflower"},
		{200, 12.0, feature.StemThick, "sunflower"},
		{220, 8.0, feature.StemMedium, "sunflower"},
		{250, 11.0, feature.StemThick, "sunflower"},
		// bamboo: very tall woody grass, thick culms, narrow leaves
		{220, 3.0, feature.StemThick, "bamboo"},
		{300, 4.0, feature.StemThick, "bamboo"},
		{260, 2.5, feature.StemThick, "bamboo"},
		{350, 5.0, feature.StemThick, "bamboo"},
	})
}
