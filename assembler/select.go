package assembler

import (
	"strings"

	"fetchsql/dialect"
	"fetchsql/joinable"
)

// SelectList builds the column list the association chain contributes to the
// flattened row, beyond the root entity's own columns. Each hop renders its
// fragment with one-hop lookahead so a collection can project the identity
// columns of the table joined next. Non-empty fragments are concatenated,
// each with a leading ", "; an empty chain yields the empty string.
func (a *Assembler) SelectList() (string, error) {
	if len(a.chain) == 0 {
		return "", nil
	}
	var buf strings.Builder
	for i, assoc := range a.chain {
		assignment, err := a.aliases.assignment(assoc)
		if err != nil {
			return "", err
		}
		var next *joinable.Target
		var nextAlias string
		if i < len(a.chain)-1 {
			nextAssoc := a.chain[i+1]
			nextAssignment, err := a.aliases.assignment(nextAssoc)
			if err != nil {
				return "", err
			}
			next = nextAssoc.Target
			nextAlias = nextAssignment.RHSAlias
		}
		fragment := assoc.Target.SelectFragment(
			next,
			nextAlias,
			assignment.RHSAlias,
			assignment.EntitySuffix,
			assignment.CollectionSuffix,
			assoc.Kind == dialect.LeftOuterJoin,
		)
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		buf.WriteString(", ")
		buf.WriteString(fragment)
	}
	return buf.String(), nil
}
