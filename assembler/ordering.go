package assembler

import (
	"strings"

	"fetchsql/dialect"
)

// MergeOrderings concatenates two ordering fragments with ", ". The empty
// string is the identity: either operand is returned unchanged when the
// other is empty.
func MergeOrderings(ordering1, ordering2 string) string {
	if ordering1 == "" {
		return ordering2
	}
	if ordering2 == "" {
		return ordering1
	}
	return ordering1 + ", " + ordering2
}

// OrderBy derives the ORDER BY text required for collection fetching and
// merges the caller's base ordering after it, so collection elements stay
// contiguous per owner even when the base ordering would interleave them.
//
// Only left outer joined hops contribute: a collection with a declared
// element ordering, or the element-table step of a many-to-many pair whose
// collection declares a link-table ordering. The join-kind restriction is
// inherited from the original mapping layer and has no recorded rationale,
// but relaxing it changes the generated SQL.
func (a *Assembler) OrderBy(baseOrdering string) (string, error) {
	var buf strings.Builder
	var previous *Association
	for _, assoc := range a.chain {
		assignment, err := a.aliases.assignment(assoc)
		if err != nil {
			return "", err
		}
		if assoc.Kind == dialect.LeftOuterJoin {
			if assoc.Target.IsCollection() {
				if assoc.Target.HasOrdering() {
					buf.WriteString(assoc.Target.OrderingFragment(assignment.RHSAlias))
					buf.WriteString(", ")
				}
			} else if previous != nil && previous.isManyToManyWith(assoc) && previous.Target.HasManyToManyOrdering() {
				buf.WriteString(previous.Target.ManyToManyOrderingFragment(assignment.RHSAlias))
				buf.WriteString(", ")
			}
		}
		previous = assoc
	}
	ordering := strings.TrimSuffix(buf.String(), ", ")
	return MergeOrderings(ordering, baseOrdering), nil
}
