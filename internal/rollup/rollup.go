// Package rollup sums account balances up a parent/child hierarchy.
package rollup

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Node is one account in the hierarchy. ParentID "" means no parent.
// A Balance with Valid=false is unknown and gets derived from the children;
// a valid zero is a real, known zero.
type Node struct {
	ID       string
	ParentID string
	Name     string
	Balance  decimal.NullDecimal
}

// Result holds the resolved balance of every node.
type Result struct {
	Root string
	// Parents maps each node to its parent with the root normalized to "".
	Parents  map[string]string
	Balances map[string]decimal.Decimal
}

// Option tweaks aggregation.
type Option func(*options)

type options struct {
	ownActivity bool
}

// WithOwnActivity makes a node with a known balance and children resolve to
// its own balance plus the sum of its children.
func WithOwnActivity() Option {
	return func(o *options) { o.ownActivity = true }
}

// Known is a helper for a known balance.
func Known(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

type frame struct {
	id       string
	expanded bool
}

// Aggregate resolves a balance for every node. Known balances are kept as is;
// unknown ones become the sum of their children's resolved balances, with an
// empty sum being zero. The walk is an iterative post-order from the root.
func Aggregate(nodes []Node, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(nodes) == 0 {
		return Result{}, ErrEmptyInput
	}

	byID := make(map[string]int, len(nodes))
	var dups []string
	for i, n := range nodes {
		if _, seen := byID[n.ID]; seen {
			dups = append(dups, n.ID)
			continue
		}
		byID[n.ID] = i
	}
	if len(dups) > 0 {
		return Result{}, TreeIntegrityError{Kind: DuplicateID, IDs: sorted(dups)}
	}

	var roots []string
	children := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		if _, ok := byID[n.ParentID]; !ok || n.ParentID == "" {
			roots = append(roots, n.ID)
			continue
		}
		children[n.ParentID] = append(children[n.ParentID], n.ID)
	}
	switch {
	case len(roots) == 0:
		return Result{}, TreeIntegrityError{Kind: NoRoot}
	case len(roots) > 1:
		return Result{}, TreeIntegrityError{Kind: MultipleRoots, IDs: sorted(roots)}
	}
	root := roots[0]

	resolved := make(map[string]decimal.Decimal, len(nodes))
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.expanded {
			stack = append(stack, frame{id: f.id, expanded: true})
			kids := children[f.id]
			// Reverse push keeps input order when popping.
			for i := len(kids) - 1; i >= 0; i-- {
				if _, done := resolved[kids[i]]; done {
					continue
				}
				stack = append(stack, frame{id: kids[i]})
			}
			continue
		}

		n := nodes[byID[f.id]]
		if n.Balance.Valid && !o.ownActivity {
			resolved[f.id] = n.Balance.Decimal
			continue
		}
		sum := decimal.Zero
		for _, kid := range children[f.id] {
			sum = sum.Add(resolved[kid])
		}
		if n.Balance.Valid {
			sum = sum.Add(n.Balance.Decimal)
		}
		resolved[f.id] = sum
	}

	if len(resolved) != len(nodes) {
		var missing []string
		for _, n := range nodes {
			if _, ok := resolved[n.ID]; !ok {
				missing = append(missing, n.ID)
			}
		}
		return Result{}, TreeIntegrityError{Kind: Unreachable, IDs: sorted(missing)}
	}

	parents := make(map[string]string, len(nodes))
	for _, n := range nodes {
		parents[n.ID] = n.ParentID
	}
	parents[root] = ""

	return Result{Root: root, Parents: parents, Balances: resolved}, nil
}

func sorted(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return out
}
