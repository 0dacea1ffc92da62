// Package dialect abstracts the SQL syntax choices that vary between target
// databases: how joins are spelled, where join conditions live, and how
// identifiers are quoted. The fragment composers never emit join keywords
// themselves; they feed a JoinBuilder obtained from the dialect selected at
// assembler construction time, so several dialects can be exercised in one
// process.
package dialect

// JoinKind is the kind of join used for one association.
type JoinKind int

const (
	// InnerJoin restricts the result to rows with a matching target row.
	InnerJoin JoinKind = iota
	// LeftOuterJoin keeps owner rows without a matching target row.
	LeftOuterJoin
)

// String returns the display name for this join kind.
func (k JoinKind) String() string {
	switch k {
	case InnerJoin:
		return "INNER JOIN"
	case LeftOuterJoin:
		return "LEFT OUTER JOIN"
	default:
		return "JOIN"
	}
}

// Dialect selects the textual join syntax and identifier quoting for one
// target database. Implementations must be stateless; a single value is
// shared, read-only, across all composer calls for one query build.
type Dialect interface {
	// Name identifies the dialect (for logging only).
	Name() string
	// JoinBuilder returns a fresh builder for one sequence of joins.
	JoinBuilder() JoinBuilder
	// Quote quotes a single SQL identifier.
	Quote(ident string) string
}

// JoinBuilder accumulates an ordered sequence of join clauses and renders
// them as the dialect-specific FROM and WHERE fragment texts. A builder is
// used for exactly one query build and is not safe for concurrent use.
type JoinBuilder interface {
	// AddJoin appends one join of the given table under the given alias.
	// lhsColumns are fully qualified owner-side references; rhsColumns are
	// bare column names on the joined table. extraCondition is appended to
	// the key-equality predicate and may be empty.
	AddJoin(table, alias string, lhsColumns, rhsColumns []string, kind JoinKind, extraCondition string)
	// AddFragments appends raw from/where text contributed by the joined
	// target itself, already rendered against its alias.
	AddFragments(fromFragment, whereFragment string)
	// FromFragment returns the accumulated text to append after the root
	// table in the FROM clause. It begins with a separator (space or comma)
	// when non-empty.
	FromFragment() string
	// WhereFragment returns the accumulated WHERE text, beginning with
	// " and " when non-empty.
	WhereFragment() string
}
