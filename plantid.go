/*
Package plantid identifies plant specimens: it classifies a specimen's
measurements into one of a fixed set of species with a decision tree
grown from a hand-labeled corpus, explains the decision and looks the
predicted species up in a pluggable knowledge base.
*/
package plantid

import (
	"context"
	"fmt"

	"github.com/vicky2004-art/plant-identifier/corpus"
	"github.com/vicky2004-art/plant-identifier/feature"
	"github.com/vicky2004-art/plant-identifier/kb"
	"github.com/vicky2004-art/plant-identifier/tree"
)

// DefaultMaxDepth is the maximum tree depth used when none is given.
// It matches the depth the embedded corpus was authored for.
const DefaultMaxDepth = 4

/*
Identifier classifies specimens and annotates the result with the
decision path, the tree's full rule rendering and the knowledge-base
record for the predicted species. The tree is grown once at
construction and never mutated, so a single Identifier is safe for
concurrent use.
*/
type Identifier struct {
	tree  *tree.Tree
	names []string
	store kb.Store
}

/*
Identification is the result of identifying one specimen.
*/
type Identification struct {
	// The predicted species label, a key into the knowledge base.
	Species string
	// The record the knowledge base holds for the species, or nil if
	// it holds none. A nil record is a presentation problem, not an
	// identification failure.
	Record *kb.Record
	// The split decisions that routed the specimen to its leaf.
	Path tree.Path
	// The rendering of the whole tree's decision rules.
	Rules string
}

/*
New takes a training corpus, a maximum tree depth and a knowledge base
store and returns an Identifier with a tree grown from the corpus, or
an error if the tree cannot be grown. There is no degraded mode: a
corpus that does not yield a valid tree yields no Identifier.
*/
func New(c *corpus.Corpus, maxDepth int, store kb.Store) (*Identifier, error) {
	t, err := tree.Grow(c, maxDepth)
	if err != nil {
		return nil, fmt.Errorf("growing species tree: %v", err)
	}
	return &Identifier{tree: t, names: feature.Names(), store: store}, nil
}

/*
Default returns an Identifier over the embedded corpus and knowledge
base with the default maximum depth.
*/
func Default() (*Identifier, error) {
	return New(corpus.Default(), DefaultMaxDepth, kb.Default())
}

/*
Identify takes a specimen's height in cm, leaf width in cm and stem
quality token, encodes them and classifies the resulting vector. It
returns the identification or an error if the measurements cannot be
encoded, the tree is malformed or the knowledge base cannot be
queried.
*/
func (id *Identifier) Identify(ctx context.Context, heightCm, leafWidthCm float64, stemToken string) (*Identification, error) {
	v, err := feature.EncodeTokens(heightCm, leafWidthCm, stemToken)
	if err != nil {
		return nil, err
	}
	species, path, err := id.tree.Classify(v)
	if err != nil {
		return nil, err
	}
	record, err := id.store.Get(ctx, species)
	if err != nil {
		return nil, fmt.Errorf("looking up species %q: %v", species, err)
	}
	return &Identification{
		Species: species,
		Record:  record,
		Path:    path,
		Rules:   id.tree.Rules(id.names),
	}, nil
}

/*
Rules returns the rendering of the identifier's decision rules with
the default feature names.
*/
func (id *Identifier) Rules() string {
	return id.tree.Rules(id.names)
}

/*
Tree returns the identifier's decision tree as a read-only structure.
*/
func (id *Identifier) Tree() *tree.Tree {
	return id.tree
}

/*
Store returns the identifier's knowledge base store.
*/
func (id *Identifier) Store() kb.Store {
	return id.store
}
