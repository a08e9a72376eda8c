// Grounded on original_source/src/model/tree.rs and src/model/voice/tree.rs.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeRef is either a node index (interior) or a pdf/leaf index, resolved
// once at parse time the way jbonsai's TreeIndex::from_str does: a plain
// integer is a node id, anything else is parsed from its trailing run of
// digits and treated as a leaf/pdf id.
type NodeRef struct {
	IsLeaf bool
	Index  int
}

func parseNodeRef(s string) (NodeRef, error) {
	if id, err := strconv.Atoi(s); err == nil {
		return NodeRef{IsLeaf: false, Index: id}, nil
	}

	digits := trailingDigits(s)
	if digits == "" {
		return NodeRef{}, fmt.Errorf("model: no id found in tree index %q", s)
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return NodeRef{}, fmt.Errorf("model: invalid leaf id in %q: %w", s, err)
	}
	return NodeRef{IsLeaf: true, Index: id}, nil
}

func trailingDigits(s string) string {
	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	return s[start:end]
}

// Node is one decision-tree node: a question and the node/leaf to descend
// to for each answer.
type Node struct {
	Index    int
	Question *Question
	Yes, No  NodeRef
}

// parseNode parses "index question yes no" — the ASCII S-expression-like
// four-field record documented in spec.md §6.
func parseNode(line string, questions map[string]*Question) (Node, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Node{}, fmt.Errorf("model: tree node must have 4 fields, got %d in %q", len(fields), line)
	}
	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return Node{}, fmt.Errorf("model: invalid node index in %q: %w", line, err)
	}
	q, ok := questions[fields[1]]
	if !ok {
		return Node{}, fmt.Errorf("model: question %q not found", fields[1])
	}
	yes, err := parseNodeRef(fields[2])
	if err != nil {
		return Node{}, err
	}
	no, err := parseNodeRef(fields[3])
	if err != nil {
		return Node{}, err
	}
	return Node{Index: index, Question: q, Yes: yes, No: no}, nil
}

// Tree is one state's decision tree over a voice's questions.
type Tree struct {
	State int
	Nodes []Node
}

// ParseTree parses a tree's node lines (already split from the containing
// S-expression file) into a Tree for the given state.
func ParseTree(state int, lines []string, questions map[string]*Question) (*Tree, error) {
	nodes := make([]Node, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := parseNode(line, questions)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return &Tree{State: state, Nodes: nodes}, nil
}

// Search walks the tree for label, returning the leaf/pdf index, or false
// if the tree is empty or a node index is out of range.
func (t *Tree) Search(label string) (int, bool) {
	nodeIndex := 0
	for {
		node, ok := t.nodeByIndex(nodeIndex)
		if !ok {
			return 0, false
		}
		ref := node.No
		if node.Question.Test(label) {
			ref = node.Yes
		}
		if ref.IsLeaf {
			return ref.Index, true
		}
		nodeIndex = ref.Index
	}
}

func (t *Tree) nodeByIndex(index int) (Node, bool) {
	for _, n := range t.Nodes {
		if n.Index == index {
			return n, true
		}
	}
	return Node{}, false
}
