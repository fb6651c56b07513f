package tree

import (
	"sort"

	"github.com/vicky2004-art/plant-identifier/corpus"
	"github.com/vicky2004-art/plant-identifier/feature"
)

/*
Grow takes a training corpus and a maximum depth and induces a
decision tree from it, or returns ErrEmptyCorpus or ErrInvalidDepth.

Induction is CART-style and fully deterministic given a fixed corpus
ordering: at each node holding samples of more than one label, every
unique value of every feature is evaluated as a "≤ threshold" split,
and the one minimizing the weighted Gini impurity of the resulting
partitions is selected. Ties are broken towards the lower feature
index, then the lower threshold. Recursion stops, emitting a leaf with
the majority label, when the node is at the maximum depth, holds a
single label or admits no split that reduces impurity.
*/
func Grow(c *corpus.Corpus, maxDepth int) (*Tree, error) {
	if maxDepth < 1 {
		return nil, ErrInvalidDepth
	}
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	g := &grower{maxDepth: maxDepth, labels: c.Labels()}
	g.vectors, g.y = c.Vectors()
	inx := make([]int, c.Len())
	for i := range inx {
		inx[i] = i
	}
	root := g.grow(inx, 0)
	return &Tree{root: root, labels: g.labels, maxDepth: maxDepth}, nil
}

type grower struct {
	vectors  []feature.Vector
	y        []int
	labels   []string
	maxDepth int
}

func (g *grower) grow(inx []int, depth int) *Node {
	counts := g.classCounts(inx)
	if depth >= g.maxDepth || singleLabel(counts) {
		return g.leaf(counts)
	}
	f, threshold, ok := g.bestSplit(inx, counts)
	if !ok {
		return g.leaf(counts)
	}
	var left, right []int
	for _, i := range inx {
		if g.vectors[i][f] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return &Node{
		Feature:   f,
		Threshold: threshold,
		Left:      g.grow(left, depth+1),
		Right:     g.grow(right, depth+1),
	}
}

/*
bestSplit returns the (feature, threshold) pair minimizing the
weighted Gini impurity of the two partitions it induces on the samples
at inx, or ok=false if no candidate strictly reduces the node's own
impurity. Features are visited in ascending index order and thresholds
in ascending value order, and only strictly better candidates replace
the current best, which fixes the tie-break policy.
*/
func (g *grower) bestSplit(inx []int, counts []int) (int, float64, bool) {
	best := gini(len(inx), counts)
	var bestFeature int
	var bestThreshold float64
	ok := false
	total := float64(len(inx))
	leftCounts := make([]int, len(g.labels))
	rightCounts := make([]int, len(g.labels))
	for f := 0; f < feature.Count; f++ {
		for _, threshold := range g.candidateThresholds(inx, f) {
			for i := range leftCounts {
				leftCounts[i] = 0
			}
			copy(rightCounts, counts)
			nLeft := 0
			for _, i := range inx {
				if g.vectors[i][f] <= threshold {
					nLeft++
					leftCounts[g.y[i]]++
					rightCounts[g.y[i]]--
				}
			}
			nRight := len(inx) - nLeft
			if nLeft == 0 || nRight == 0 {
				continue
			}
			weighted := float64(nLeft)/total*gini(nLeft, leftCounts) +
				float64(nRight)/total*gini(nRight, rightCounts)
			if weighted < best {
				best = weighted
				bestFeature = f
				bestThreshold = threshold
				ok = true
			}
		}
	}
	return bestFeature, bestThreshold, ok
}

/*
candidateThresholds returns the unique values the samples at inx take
for the given feature, in ascending order.
*/
func (g *grower) candidateThresholds(inx []int, f int) []float64 {
	seen := make(map[float64]bool)
	var values []float64
	for _, i := range inx {
		v := g.vectors[i][f]
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Float64s(values)
	return values
}

func (g *grower) classCounts(inx []int) []int {
	counts := make([]int, len(g.labels))
	for _, i := range inx {
		counts[g.y[i]]++
	}
	return counts
}

/*
leaf emits a leaf node with the majority label of the given class
counts. On a tie the label encountered first in corpus order wins.
*/
func (g *grower) leaf(counts []int) *Node {
	majority := 0
	for l, c := range counts {
		if c > counts[majority] {
			majority = l
		}
	}
	labelCounts := make(map[string]int)
	for l, c := range counts {
		if c > 0 {
			labelCounts[g.labels[l]] = c
		}
	}
	return &Node{Leaf: true, Label: g.labels[majority], Counts: labelCounts}
}

// gini impurity: 1 - sum over labels (count/n)^2
func gini(n int, counts []int) float64 {
	acc := 0.0
	for _, c := range counts {
		if c > 0 {
			p := float64(c) / float64(n)
			acc += p * p
		}
	}
	return 1.0 - acc
}

func singleLabel(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}
