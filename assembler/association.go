package assembler

import (
	"errors"
	"fmt"

	"fetchsql/dialect"
	"fetchsql/joinable"
)

// ErrColumnMismatch indicates owner-side and target-side key column lists of
// unequal or zero length for one association. This is a mapping error, not a
// runtime data error.
var ErrColumnMismatch = errors.New("owner and target key columns must have equal non-zero length")

// Association is one traversal step of the fetch graph: a join from the
// owner side onto a target, with the key columns of both sides, an optional
// extra predicate and the row filters enabled for this fetch.
type Association struct {
	// Target is the joined table.
	Target *joinable.Target
	// Kind is the join kind used for this hop.
	Kind dialect.JoinKind
	// LHSColumns are the owner-side key columns. The alias context may
	// override them with pre-aliased references.
	LHSColumns []string
	// RHSColumns are the target-side key columns, qualified with the
	// resolved target alias at render time.
	RHSColumns []string
	// WithClause is an optional extra boolean predicate merged into the
	// join's ON condition.
	WithClause string
	// EnabledFilters names the row filters active for this association.
	EnabledFilters map[string]bool
	// LinkOf marks this association as the element-table step of a
	// many-to-many pair, pointing back at the collection target it links.
	// Nil for every other association.
	LinkOf *joinable.Target
}

func (a *Association) validate() error {
	if len(a.LHSColumns) == 0 || len(a.LHSColumns) != len(a.RHSColumns) {
		return fmt.Errorf("%w: association to %s", ErrColumnMismatch, a.Target.Table)
	}
	return nil
}

// isManyToManyWith reports whether next is the element-table step of this
// association's many-to-many collection. Pairing is strictly adjacent: the
// composers only ever test an association against its immediate predecessor.
func (a *Association) isManyToManyWith(next *Association) bool {
	return a.Target.IsCollection() && a.Target.ManyToMany && next.LinkOf == a.Target
}
