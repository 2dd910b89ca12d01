package accounts

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts  []model.Account
	byID      map[string]model.Account
	children  map[string][]string
	fullNames map[string]string
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[string]model.Account, len(accounts))
	children := make(map[string][]string)
	for _, a := range accounts {
		byID[a.GUID] = a
		if a.ParentGUID != "" {
			children[a.ParentGUID] = append(children[a.ParentGUID], a.GUID)
		}
	}
	s := &Service{accounts: accounts, byID: byID, children: children}
	s.fullNames = make(map[string]string, len(accounts))
	for _, a := range accounts {
		s.fullNames[a.GUID] = s.buildFullName(a)
	}
	return s
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by guid.
func (s *Service) Get(guid string) (model.Account, bool) {
	a, ok := s.byID[guid]
	return a, ok
}

// Exists reports whether an account guid exists.
func (s *Service) Exists(guid string) bool {
	_, ok := s.byID[guid]
	return ok
}

// ByType returns all accounts of the given types.
func (s *Service) ByType(types ...model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if slices.Contains(types, a.Type) {
			result = append(result, a)
		}
	}
	return result
}

// Children returns the guids of the direct children of guid.
func (s *Service) Children(guid string) []string {
	return s.children[guid]
}

// Root returns the book's root account. GnuCash keeps a second, childless
// ROOT for scheduled-transaction templates; the one with children wins.
func (s *Service) Root() (model.Account, bool) {
	var found model.Account
	ok := false
	for _, a := range s.accounts {
		if !a.IsRoot() {
			continue
		}
		if !ok || len(s.children[a.GUID]) > len(s.children[found.GUID]) {
			found, ok = a, true
		}
	}
	return found, ok
}

// FullName returns the slash-separated path below the root, e.g.
// "Expenses/Food/Groceries". Root accounts have an empty full name.
func (s *Service) FullName(guid string) string {
	return s.fullNames[guid]
}

// FindByFullName looks an account up by full name (case-insensitive) or guid.
func (s *Service) FindByFullName(name string) (model.Account, bool) {
	if a, ok := s.byID[name]; ok {
		return a, true
	}
	for _, a := range s.accounts {
		if full := s.fullNames[a.GUID]; full != "" && strings.EqualFold(full, name) {
			return a, true
		}
	}
	return model.Account{}, false
}

// Suggest returns up to n full names closest to name by edit distance.
func (s *Service) Suggest(name string, n int) []string {
	type candidate struct {
		name string
		dist int
	}
	needle := strings.ToLower(name)
	var cands []candidate
	for _, a := range s.accounts {
		full := s.fullNames[a.GUID]
		if full == "" {
			continue
		}
		cands = append(cands, candidate{name: full, dist: levenshtein.ComputeDistance(needle, strings.ToLower(full))})
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	out := make([]string, 0, min(n, len(cands)))
	for _, c := range cands[:min(n, len(cands))] {
		out = append(out, c.name)
	}
	return out
}

func (s *Service) buildFullName(a model.Account) string {
	if a.IsRoot() {
		return ""
	}
	parts := []string{a.Name}
	cur := a
	// Bounded by the account count so a parent cycle cannot spin forever.
	for range len(s.accounts) {
		parent, ok := s.byID[cur.ParentGUID]
		if !ok || parent.IsRoot() {
			break
		}
		parts = append(parts, parent.Name)
		cur = parent
	}
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}
