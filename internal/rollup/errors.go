package rollup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when there are no nodes to aggregate.
var ErrEmptyInput = errors.New("rollup: no accounts to aggregate")

// IntegrityKind classifies a broken account tree.
type IntegrityKind int

const (
	// NoRoot means every node points at another node in the set.
	NoRoot IntegrityKind = iota + 1
	// MultipleRoots means more than one node has an unresolvable parent.
	MultipleRoots
	// DuplicateID means two nodes share an identifier.
	DuplicateID
	// Unreachable means some nodes cannot be reached from the root (cycle or broken chain).
	Unreachable
)

func (k IntegrityKind) String() string {
	switch k {
	case NoRoot:
		return "no root"
	case MultipleRoots:
		return "multiple roots"
	case DuplicateID:
		return "duplicate id"
	case Unreachable:
		return "unreachable accounts"
	default:
		return "unknown"
	}
}

// TreeIntegrityError reports an account set that does not form a single tree.
// The aggregation is aborted; no partial balances are returned.
type TreeIntegrityError struct {
	Kind IntegrityKind
	IDs  []string
}

func (e TreeIntegrityError) Error() string {
	if len(e.IDs) == 0 {
		return fmt.Sprintf("tree integrity: %s", e.Kind)
	}
	return fmt.Sprintf("tree integrity: %s [%s]", e.Kind, strings.Join(e.IDs, ", "))
}

// IsTreeIntegrity reports whether err is (or wraps) a TreeIntegrityError.
func IsTreeIntegrity(err error) bool {
	var tie TreeIntegrityError
	return errors.As(err, &tie)
}
