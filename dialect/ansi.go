package dialect

import (
	"strings"

	"fetchsql/internal/sqlutil"
)

// MySQL renders ANSI join syntax with backtick identifier quoting. It covers
// MySQL and TiDB and is the default dialect.
type MySQL struct{}

// Name implements Dialect.
func (MySQL) Name() string { return "mysql" }

// Quote implements Dialect.
func (MySQL) Quote(ident string) string { return sqlutil.QuoteBacktick(ident) }

// JoinBuilder implements Dialect.
func (MySQL) JoinBuilder() JoinBuilder { return &ansiJoinBuilder{} }

// ansiJoinBuilder renders joins in ANSI syntax: conditions live in the ON
// clause and the WHERE fragment only carries target-intrinsic predicates.
type ansiJoinBuilder struct {
	from  strings.Builder
	where strings.Builder
}

func (b *ansiJoinBuilder) AddJoin(table, alias string, lhsColumns, rhsColumns []string, kind JoinKind, extraCondition string) {
	switch kind {
	case LeftOuterJoin:
		b.from.WriteString(" left outer join ")
	default:
		b.from.WriteString(" inner join ")
	}
	b.from.WriteString(table)
	b.from.WriteString(" ")
	b.from.WriteString(alias)
	b.from.WriteString(" on ")
	for i := range lhsColumns {
		if i > 0 {
			b.from.WriteString(" and ")
		}
		b.from.WriteString(lhsColumns[i])
		b.from.WriteString("=")
		b.from.WriteString(alias)
		b.from.WriteString(".")
		b.from.WriteString(rhsColumns[i])
	}
	if extraCondition != "" {
		b.from.WriteString(" and ")
		b.from.WriteString(extraCondition)
	}
}

func (b *ansiJoinBuilder) AddFragments(fromFragment, whereFragment string) {
	b.from.WriteString(fromFragment)
	b.where.WriteString(whereFragment)
}

func (b *ansiJoinBuilder) FromFragment() string { return b.from.String() }

func (b *ansiJoinBuilder) WhereFragment() string { return b.where.String() }
