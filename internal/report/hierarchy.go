package report

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ledgerdash/ledgerdash/internal/accounts"
	"github.com/ledgerdash/ledgerdash/internal/journal"
	"github.com/ledgerdash/ledgerdash/internal/model"
	"github.com/ledgerdash/ledgerdash/internal/rollup"
)

// HierarchyNode is one account in a rolled-up hierarchy.
type HierarchyNode struct {
	ID       string            `json:"id"`
	Parent   string            `json:"parent"`
	Label    string            `json:"label"`
	FullName string            `json:"full_name"`
	Type     model.AccountType `json:"type"`
	Depth    int               `json:"depth"`
	Value    decimal.Decimal   `json:"value"`
}

// Hierarchy is a rolled-up account tree in depth-first order, children sorted by name.
type Hierarchy struct {
	Type  model.AccountType `json:"type"`
	Root  string            `json:"root"`
	Nodes []HierarchyNode   `json:"nodes"`
}

// Sunburst holds the parallel arrays a Plotly sunburst trace takes.
type Sunburst struct {
	IDs     []string          `json:"ids"`
	Labels  []string          `json:"labels"`
	Parents []string          `json:"parents"`
	Values  []decimal.Decimal `json:"values"`
}

// Sunburst flattens h into trace arrays.
func (h Hierarchy) Sunburst() Sunburst {
	sb := Sunburst{
		IDs:     make([]string, 0, len(h.Nodes)),
		Labels:  make([]string, 0, len(h.Nodes)),
		Parents: make([]string, 0, len(h.Nodes)),
		Values:  make([]decimal.Decimal, 0, len(h.Nodes)),
	}
	for _, n := range h.Nodes {
		sb.IDs = append(sb.IDs, n.ID)
		sb.Labels = append(sb.Labels, n.Label)
		sb.Parents = append(sb.Parents, n.Parent)
		sb.Values = append(sb.Values, n.Value)
	}
	return sb
}

// Rows converts h into balance export rows.
func (h Hierarchy) Rows() []accounts.BalanceRow {
	rows := make([]accounts.BalanceRow, 0, len(h.Nodes))
	for _, n := range h.Nodes {
		rows = append(rows, accounts.BalanceRow{
			Account:  model.Account{GUID: n.ID, Name: n.Label, Type: n.Type},
			FullName: n.FullName,
			Parent:   n.Parent,
			Balance:  n.Value,
		})
	}
	return rows
}

// Hierarchy rolls up the accounts of type t over the postings in w.
//
// The subtree holds every account of type t and all of their descendants
// whatever their type, so BANK accounts under an ASSET parent are included.
// Accounts that cannot be reached from the top, such as a loop of parents,
// fail the rollup with a TreeIntegrityError. When several top-level accounts
// of the type exist they hang off a synthetic node named after the type. An
// account with postings in w has a known balance even if the sum is zero.
func (s *Service) Hierarchy(ctx context.Context, t model.AccountType, w Window) (Hierarchy, error) {
	if !t.Valid() || t == model.AccountTypeRoot {
		return Hierarchy{}, fmt.Errorf("unsupported account type %q", t)
	}
	chart, err := s.chart(ctx)
	if err != nil {
		return Hierarchy{}, err
	}

	members := subtree(chart, t)
	if len(members) == 0 {
		return Hierarchy{Type: t, Nodes: []HierarchyNode{}}, nil
	}

	postings, err := s.src.Postings(ctx, w.filter())
	if err != nil {
		return Hierarchy{}, fmt.Errorf("loading postings: %w", err)
	}
	own := make(map[string]decimal.Decimal)
	for _, p := range postings {
		if _, ok := members[p.AccountGUID]; !ok {
			continue
		}
		own[p.AccountGUID] = own[p.AccountGUID].Add(p.Natural())
	}

	nodes, synthetic := s.nodes(chart, t, members, own)
	res, err := rollup.Aggregate(nodes, rollup.WithOwnActivity())
	if err != nil {
		s.logger.Warn("account hierarchy failed integrity check",
			zap.String("type", string(t)), zap.Error(err))
		return Hierarchy{}, err
	}
	s.logger.Debug("rolled up account hierarchy",
		zap.String("type", string(t)),
		zap.Int("accounts", len(nodes)),
		zap.Int("with_activity", len(own)))

	labels := make(map[string]string, len(nodes))
	for _, n := range nodes {
		labels[n.ID] = n.Name
	}
	return Hierarchy{
		Type:  t,
		Root:  res.Root,
		Nodes: walk(chart, res, labels, synthetic),
	}, nil
}

// subtree returns the guids of every account of type t and all of their
// descendants. Accounts of type t that hang off each other in a loop are
// included so the rollup reports them.
func subtree(chart *accounts.Service, t model.AccountType) map[string]struct{} {
	members := make(map[string]struct{})
	var stack []string
	for _, a := range chart.ByType(t) {
		stack = append(stack, a.GUID)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := members[id]; seen {
			continue
		}
		members[id] = struct{}{}
		stack = append(stack, chart.Children(id)...)
	}
	return members
}

func (s *Service) nodes(chart *accounts.Service, t model.AccountType, members map[string]struct{}, own map[string]decimal.Decimal) ([]rollup.Node, string) {
	var tops []string
	for guid := range members {
		a, _ := chart.Get(guid)
		if _, ok := members[a.ParentGUID]; ok {
			continue
		}
		// Tops whose parent is missing from the book are left alone so the
		// rollup reports them.
		if _, ok := chart.Get(a.ParentGUID); ok {
			tops = append(tops, guid)
		}
	}

	synthetic := ""
	if len(tops) > 1 {
		synthetic = string(t)
	}

	nodes := make([]rollup.Node, 0, len(members)+1)
	if synthetic != "" {
		nodes = append(nodes, rollup.Node{ID: synthetic, Name: strings.ToLower(synthetic)})
	}
	for _, a := range chart.All() {
		if _, ok := members[a.GUID]; !ok {
			continue
		}
		parent := a.ParentGUID
		if _, ok := members[parent]; !ok && synthetic != "" && slices.Contains(tops, a.GUID) {
			parent = synthetic
		}
		n := rollup.Node{ID: a.GUID, ParentID: parent, Name: a.Name}
		if v, ok := own[a.GUID]; ok {
			n.Balance = rollup.Known(v)
		}
		nodes = append(nodes, n)
	}
	return nodes, synthetic
}

// walk lays out the resolved tree depth-first from the root.
func walk(chart *accounts.Service, res rollup.Result, labels map[string]string, synthetic string) []HierarchyNode {
	children := make(map[string][]string, len(res.Parents))
	for id, parent := range res.Parents {
		if id == res.Root {
			continue
		}
		children[parent] = append(children[parent], id)
	}
	for _, ids := range children {
		slices.SortFunc(ids, func(a, b string) int {
			return cmp.Or(cmp.Compare(labels[a], labels[b]), cmp.Compare(a, b))
		})
	}

	type item struct {
		id    string
		depth int
	}
	out := make([]HierarchyNode, 0, len(res.Parents))
	stack := []item{{id: res.Root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := HierarchyNode{
			ID:     it.id,
			Parent: res.Parents[it.id],
			Label:  labels[it.id],
			Depth:  it.depth,
			Value:  res.Balances[it.id],
		}
		if it.id == synthetic {
			n.FullName = labels[it.id]
			n.Type = model.AccountType(synthetic)
		} else if a, ok := chart.Get(it.id); ok {
			n.FullName = chart.FullName(it.id)
			n.Type = a.Type
		}
		out = append(out, n)

		kids := children[it.id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{id: kids[i], depth: it.depth + 1})
		}
	}
	return out
}

// CheckResult collects everything `check` reports.
type CheckResult struct {
	Violations []journal.ValidationError `json:"violations"`
	// Tree is the integrity error of the whole account tree, if any.
	Tree error `json:"-"`
}

// OK reports whether no problems were found.
func (r CheckResult) OK() bool {
	return len(r.Violations) == 0 && r.Tree == nil
}

// Check validates every transaction in the ledger and the structure of the
// whole account tree. Integrity failures are collected rather than returned;
// the error is for failures to read the ledger.
func (s *Service) Check(ctx context.Context) (CheckResult, error) {
	chart, err := s.chart(ctx)
	if err != nil {
		return CheckResult{}, err
	}
	postings, err := s.src.Postings(ctx, Window{}.filter())
	if err != nil {
		return CheckResult{}, fmt.Errorf("loading postings: %w", err)
	}

	res := CheckResult{Violations: journal.ValidateTransactions(postings, chart)}
	nodes := bookNodes(chart)
	if len(nodes) == 0 {
		return res, nil
	}
	if _, err := rollup.Aggregate(nodes); err != nil {
		if !rollup.IsTreeIntegrity(err) {
			return CheckResult{}, err
		}
		s.logger.Warn("account tree failed integrity check", zap.Error(err))
		res.Tree = err
	}
	return res, nil
}

// bookNodes returns every account except the extra ROOT accounts GnuCash
// keeps for scheduled transaction templates and the accounts beneath them.
func bookNodes(chart *accounts.Service) []rollup.Node {
	skip := make(map[string]struct{})
	if root, ok := chart.Root(); ok {
		var stack []string
		for _, r := range chart.ByType(model.AccountTypeRoot) {
			if r.GUID != root.GUID {
				stack = append(stack, r.GUID)
			}
		}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := skip[id]; seen {
				continue
			}
			skip[id] = struct{}{}
			stack = append(stack, chart.Children(id)...)
		}
	}

	var nodes []rollup.Node
	for _, a := range chart.All() {
		if _, ok := skip[a.GUID]; ok {
			continue
		}
		nodes = append(nodes, rollup.Node{ID: a.GUID, ParentID: a.ParentGUID, Name: a.Name})
	}
	return nodes
}

func sortByFullName(views []AccountView) {
	slices.SortFunc(views, func(a, b AccountView) int {
		return cmp.Or(cmp.Compare(a.FullName, b.FullName), cmp.Compare(a.GUID, b.GUID))
	})
}
