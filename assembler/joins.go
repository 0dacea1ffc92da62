package assembler

import (
	"fetchsql/dialect"
	"fetchsql/joinable"
)

// JoinFragment is the rendered join sequence for one chain: the text to
// append after the root table in the FROM clause and the text to append to
// the WHERE clause (empty for dialects that keep all conditions in ON).
type JoinFragment struct {
	From  string
	Where string
}

// JoinFragment walks the chain and renders one join per association through
// the dialect's join builder. A hop whose predecessor is a many-to-many
// collection it links gets the combined many-to-many treatment; every other
// hop is a regular join. An empty chain yields an empty fragment.
func (a *Assembler) JoinFragment() (JoinFragment, error) {
	builder := a.dialect.JoinBuilder()
	var previous *Association
	for _, assoc := range a.chain {
		var err error
		if previous != nil && previous.isManyToManyWith(assoc) {
			err = a.addManyToManyJoin(builder, assoc, previous.Target)
		} else {
			err = a.addJoin(builder, assoc)
		}
		if err != nil {
			return JoinFragment{}, err
		}
		previous = assoc
	}
	return JoinFragment{From: builder.FromFragment(), Where: builder.WhereFragment()}, nil
}

func (a *Assembler) addJoin(builder dialect.JoinBuilder, assoc *Association) error {
	assignment, err := a.aliases.assignment(assoc)
	if err != nil {
		return err
	}
	lhs, err := a.aliases.lhsColumns(assoc)
	if err != nil {
		return err
	}
	builder.AddJoin(
		assoc.Target.Table,
		assignment.RHSAlias,
		lhs,
		assoc.RHSColumns,
		assoc.Kind,
		resolveOnCondition(assoc, assignment.RHSAlias),
	)
	builder.AddFragments(
		assoc.Target.FromJoinFragment(assignment.RHSAlias),
		assoc.Target.WhereJoinFragment(assignment.RHSAlias),
	)
	return nil
}

// addManyToManyJoin renders the element-table step of a many-to-many pair:
// one join carrying both the resolved ON condition and the collection's
// element-side filter fragment.
func (a *Assembler) addManyToManyJoin(builder dialect.JoinBuilder, assoc *Association, collection *joinable.Target) error {
	assignment, err := a.aliases.assignment(assoc)
	if err != nil {
		return err
	}
	lhs, err := a.aliases.lhsColumns(assoc)
	if err != nil {
		return err
	}
	on := resolveOnCondition(assoc, assignment.RHSAlias)
	filter := collection.ManyToManyFilterFragment(assignment.RHSAlias, assoc.EnabledFilters)
	var condition string
	switch {
	case filter == "":
		condition = on
	case on == "":
		condition = filter
	default:
		condition = on + " and " + filter
	}
	builder.AddJoin(
		assoc.Target.Table,
		assignment.RHSAlias,
		lhs,
		assoc.RHSColumns,
		assoc.Kind,
		condition,
	)
	builder.AddFragments(
		assoc.Target.FromJoinFragment(assignment.RHSAlias),
		assoc.Target.WhereJoinFragment(assignment.RHSAlias),
	)
	return nil
}

// resolveOnCondition merges the target's enabled filter fragments with the
// association's with-clause. A non-empty base gets the with-clause appended
// as "<base> and ( <with> )"; an empty base is replaced by the with-clause
// outright so no stray "and" is emitted. The key-equality predicate itself
// is rendered by the dialect join builder.
func resolveOnCondition(assoc *Association, rhsAlias string) string {
	base := assoc.Target.FilterFragment(rhsAlias, assoc.EnabledFilters)
	if assoc.WithClause == "" {
		return base
	}
	if base == "" {
		return assoc.WithClause
	}
	return base + " and ( " + assoc.WithClause + " )"
}
