package tree

import (
	"fmt"
	"io"
	"strings"
)

/*
WriteRules takes an io.Writer, the human-readable feature names in
vector order, and renders the tree's decision logic onto the writer as
an indentation-nested sequence of threshold rules, one line per branch
condition and per leaf label:

	|--- height_cm <= 150.00
	|   |--- class: rose
	|--- height_cm >  150.00
	|   |--- class: bamboo

The traversal is pre-order (node, left subtree, right subtree), so the
output is purely derived from the tree: two calls on the same tree and
names produce byte-identical text.
*/
func (t *Tree) WriteRules(w io.Writer, names []string) error {
	if max := t.root.maxFeatureIndex(); max >= len(names) {
		return fmt.Errorf("rendering rules: %d feature names cannot cover feature index %d", len(names), max)
	}
	return writeRuleLines(w, t.root, names, 1)
}

/*
Rules returns the WriteRules rendering of the tree as a string.
*/
func (t *Tree) Rules(names []string) string {
	var b strings.Builder
	// strings.Builder writes cannot fail, and names are validated the
	// same way WriteRules validates them
	if err := t.WriteRules(&b, names); err != nil {
		return fmt.Sprintf("ERROR: %s\n", err.Error())
	}
	return b.String()
}

func writeRuleLines(w io.Writer, n *Node, names []string, depth int) error {
	indent := strings.Repeat("|   ", depth-1)
	if n.Leaf {
		_, err := fmt.Fprintf(w, "%s|--- class: %s\n", indent, n.Label)
		return err
	}
	name := names[n.Feature]
	if _, err := fmt.Fprintf(w, "%s|--- %s <= %.2f\n", indent, name, n.Threshold); err != nil {
		return err
	}
	if err := writeRuleLines(w, n.Left, names, depth+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s|--- %s >  %.2f\n", indent, name, n.Threshold); err != nil {
		return err
	}
	return writeRuleLines(w, n.Right, names, depth+1)
}

/*
maxFeatureIndex returns the highest feature index the subtree splits
on, or -1 if it holds no internal node.
*/
func (n *Node) maxFeatureIndex() int {
	max := -1
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil || n.Leaf {
			return
		}
		if n.Feature > max {
			max = n.Feature
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(n)
	return max
}
