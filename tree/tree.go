/*
Package tree implements the decision tree the species classifier is
built on: deterministic CART induction from a training corpus,
inference with an explainable decision path and a textual export of the
learned rules.
*/
package tree

import (
	"fmt"
	"strings"

	"github.com/vicky2004-art/plant-identifier/feature"
)

/*
TreeError represents an error growing a tree or classifying a vector
with it.
*/
type TreeError string

/*
ErrEmptyCorpus is the error returned by Grow when called with a corpus
holding no samples.
*/
const ErrEmptyCorpus = TreeError("cannot grow a tree from an empty corpus")

/*
ErrInvalidDepth is the error returned by Grow when called with a
maximum depth below 1.
*/
const ErrInvalidDepth = TreeError("maximum tree depth must be at least 1")

/*
ErrMalformedTree is the error returned by Classify when it reaches an
internal node missing a child. It indicates an induction bug: Grow
always produces internal nodes with exactly two children.
*/
const ErrMalformedTree = TreeError("malformed tree: internal node is missing a child")

func (te TreeError) Error() string {
	return string(te)
}

/*
Node is a node of the tree: either an internal node splitting on
"feature ≤ threshold" with exactly two children, or a leaf assigning a
species label.
*/
type Node struct {
	// The index of the feature the node splits on. Vectors whose
	// value for it is less than or equal to Threshold descend left,
	// the rest descend right.
	Feature   int
	Threshold float64
	Left      *Node
	Right     *Node
	// Leaf marks terminal nodes. On a leaf Label holds the majority
	// label of the training samples that reached it and Counts the
	// number of those samples per label.
	Leaf   bool
	Label  string
	Counts map[string]int
}

/*
Tree is an immutable decision tree over specimen feature vectors.
Once grown it exposes no mutation operation, so it is safe to share
across concurrent Classify and WriteRules calls.
*/
type Tree struct {
	root     *Node
	labels   []string
	maxDepth int
}

/*
Labels returns the species labels the tree can predict, in corpus
order.
*/
func (t *Tree) Labels() []string {
	return append([]string{}, t.labels...)
}

/*
Root returns the root node of the tree. The returned structure must be
treated as read-only.
*/
func (t *Tree) Root() *Node {
	return t.root
}

/*
Step records one split decision taken while classifying a vector: the
feature and threshold at an internal node and the direction the vector
descended.
*/
type Step struct {
	Feature   int
	Threshold float64
	Left      bool
}

func (s Step) String() string {
	op := ">"
	if s.Left {
		op = "<="
	}
	return fmt.Sprintf("feature %d %s %g", s.Feature, op, s.Threshold)
}

/*
Path is the ordered sequence of split decisions taken from the root to
the leaf reached for one classified vector. It is produced only for
explanation: inference does not consume it.
*/
type Path []Step

/*
Describe takes the human-readable feature names, in vector order, and
returns a one-line-per-step rendering of the path.
*/
func (p Path) Describe(names []string) string {
	var b strings.Builder
	for i, s := range p {
		name := fmt.Sprintf("feature %d", s.Feature)
		if s.Feature < len(names) {
			name = names[s.Feature]
		}
		op := ">"
		if s.Left {
			op = "<="
		}
		fmt.Fprintf(&b, "%s %s %.2f", name, op, s.Threshold)
		if i != len(p)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

/*
Classify takes a feature vector and routes it from the root of the
tree to a leaf, comparing the vector's value for each internal node's
feature against the node's threshold and descending left on values
less than or equal to it. It returns the reached leaf's label and the
path taken, or ErrMalformedTree if an internal node is missing a
child.
*/
func (t *Tree) Classify(v feature.Vector) (string, Path, error) {
	n := t.root
	var path Path
	for !n.Leaf {
		if n.Left == nil || n.Right == nil {
			return "", nil, ErrMalformedTree
		}
		left := v[n.Feature] <= n.Threshold
		path = append(path, Step{Feature: n.Feature, Threshold: n.Threshold, Left: left})
		if left {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Label, path, nil
}
