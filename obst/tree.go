// SPDX-License-Identifier: MIT

package obst

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/optbst/fraction"
)

// None marks an absent child or an empty tree's root.
const None = -1

// Node is one arena slot of a Tree.
//   - Key is the key stored at this node.
//   - Index is the key's position in the input sequence.
//   - Left/Right are arena indices of the children, or None.
type Node struct {
	Key   fraction.Fraction
	Index int
	Left  int
	Right int
}

// Tree is an arena of nodes. Every node except the root is referenced by
// exactly one parent, so the arena is a tree. Nodes are stored in pre-order.
type Tree struct {
	nodes []Node
	root  int
}

// Order selects a traversal.
type Order int

const (
	// LevelOrder visits nodes breadth-first, left to right within a level.
	LevelOrder Order = iota
	// PreOrder visits a node before its subtrees.
	PreOrder
	// InOrder visits left subtree, node, right subtree (ascending keys).
	InOrder
)

// ErrUnknownOrder is returned by ParseOrder for unrecognized names.
var ErrUnknownOrder = errors.New("obst: unknown traversal order")

// String returns "level", "pre" or "in".
func (o Order) String() string {
	switch o {
	case LevelOrder:
		return "level"
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "level", "pre" and "in" (case-insensitive) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "level", "level-order", "bfs":
		return LevelOrder, nil
	case "pre", "pre-order", "preorder":
		return PreOrder, nil
	case "in", "in-order", "inorder":
		return InOrder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// buildTree materializes the tree chosen by a filled table.
// n = 0 yields an empty tree; n = 1 a single leaf. O(n), sequential.
func buildTree(t *Table, keys []fraction.Fraction) *Tree {
	tree := &Tree{root: None, nodes: make([]Node, 0, t.n)}
	if t.n == 0 {
		return tree
	}
	tree.root = tree.grow(t, keys, 0, t.n-1)

	return tree
}

// grow appends the subtree for [i, j] and returns its arena index.
func (tr *Tree) grow(t *Table, keys []fraction.Fraction, i, j int) int {
	if i > j {
		return None
	}
	r := t.Root(i, j)
	idx := len(tr.nodes)
	tr.nodes = append(tr.nodes, Node{Key: keys[r], Index: r, Left: None, Right: None})

	left := tr.grow(t, keys, i, r-1)
	right := tr.grow(t, keys, r+1, j)
	tr.nodes[idx].Left = left
	tr.nodes[idx].Right = right

	return idx
}

// Len returns the number of nodes.
func (tr *Tree) Len() int { return len(tr.nodes) }

// Root returns the arena index of the root, or None when empty.
func (tr *Tree) Root() int { return tr.root }

// Empty reports whether the tree has no nodes.
func (tr *Tree) Empty() bool { return tr.root == None }

// Node returns the node at arena index idx.
func (tr *Tree) Node(idx int) (Node, bool) {
	if idx < 0 || idx >= len(tr.nodes) {
		return Node{}, false
	}

	return tr.nodes[idx], true
}

// Walk visits every node in the given order with its depth (root = 1).
// A non-nil error from fn stops the walk and is returned as-is.
func (tr *Tree) Walk(order Order, fn func(n Node, depth int) error) error {
	if tr.root == None {
		return nil
	}
	switch order {
	case LevelOrder:
		return tr.walkLevel(fn)
	case PreOrder:
		return tr.walkPre(fn)
	case InOrder:
		return tr.walkIn(fn)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}
}

type visit struct {
	idx, depth int
}

func (tr *Tree) walkLevel(fn func(Node, int) error) error {
	queue := []visit{{tr.root, 1}}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		n := tr.nodes[v.idx]
		if err := fn(n, v.depth); err != nil {
			return err
		}
		if n.Left != None {
			queue = append(queue, visit{n.Left, v.depth + 1})
		}
		if n.Right != None {
			queue = append(queue, visit{n.Right, v.depth + 1})
		}
	}

	return nil
}

func (tr *Tree) walkPre(fn func(Node, int) error) error {
	stack := []visit{{tr.root, 1}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := tr.nodes[v.idx]
		if err := fn(n, v.depth); err != nil {
			return err
		}
		// Right first so left is popped first.
		if n.Right != None {
			stack = append(stack, visit{n.Right, v.depth + 1})
		}
		if n.Left != None {
			stack = append(stack, visit{n.Left, v.depth + 1})
		}
	}

	return nil
}

func (tr *Tree) walkIn(fn func(Node, int) error) error {
	var stack []visit
	cur := visit{tr.root, 1}
	for cur.idx != None || len(stack) > 0 {
		for cur.idx != None {
			stack = append(stack, cur)
			cur = visit{tr.nodes[cur.idx].Left, cur.depth + 1}
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := tr.nodes[v.idx]
		if err := fn(n, v.depth); err != nil {
			return err
		}
		cur = visit{n.Right, v.depth + 1}
	}

	return nil
}

// Keys returns the keys in the given order.
func (tr *Tree) Keys(order Order) []fraction.Fraction {
	out := make([]fraction.Fraction, 0, len(tr.nodes))
	_ = tr.Walk(order, func(n Node, _ int) error {
		out = append(out, n.Key)
		return nil
	})

	return out
}

// PreOrder returns the keys in pre-order.
func (tr *Tree) PreOrder() []fraction.Fraction { return tr.Keys(PreOrder) }

// InOrder returns the keys in ascending (in-order) sequence.
func (tr *Tree) InOrder() []fraction.Fraction { return tr.Keys(InOrder) }

// LevelOrder returns the keys grouped by level, root level first.
// An empty tree yields nil.
func (tr *Tree) LevelOrder() [][]fraction.Fraction {
	var levels [][]fraction.Fraction
	_ = tr.Walk(LevelOrder, func(n Node, depth int) error {
		if depth > len(levels) {
			levels = append(levels, nil)
		}
		levels[depth-1] = append(levels[depth-1], n.Key)
		return nil
	})

	return levels
}

// Height returns the number of levels (0 for an empty tree).
func (tr *Tree) Height() int {
	h := 0
	_ = tr.Walk(PreOrder, func(_ Node, depth int) error {
		if depth > h {
			h = depth
		}
		return nil
	})

	return h
}

// Search descends from the root looking for key. It returns the key's input
// index and its depth (root = 1).
func (tr *Tree) Search(key fraction.Fraction) (index, depth int, ok bool) {
	idx, d := tr.root, 1
	for idx != None {
		n := tr.nodes[idx]
		switch c := key.Cmp(n.Key); {
		case c == 0:
			return n.Index, d, true
		case c < 0:
			idx = n.Left
		default:
			idx = n.Right
		}
		d++
	}

	return None, 0, false
}

// WeightedCost returns Σ weights[node.Index] · depth(node) with root depth 1.
// For a tree built by BuildTree it equals the result's TotalCost.
//
// Errors:
//   - ErrInputLengthMismatch when len(weights) != Len().
//   - fraction.ErrOverflow from the exact arithmetic.
func (tr *Tree) WeightedCost(weights []fraction.Fraction) (fraction.Fraction, error) {
	if len(weights) != len(tr.nodes) {
		return fraction.Fraction{}, fmt.Errorf("%w: %d weights for %d nodes",
			ErrInputLengthMismatch, len(weights), len(tr.nodes))
	}
	total := fraction.Zero
	err := tr.Walk(PreOrder, func(n Node, depth int) error {
		term, err := weights[n.Index].Mul(fraction.FromInt(int64(depth)))
		if err != nil {
			return err
		}
		total, err = total.Add(term)
		return err
	})
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("obst: weighted cost: %w", err)
	}

	return total, nil
}
