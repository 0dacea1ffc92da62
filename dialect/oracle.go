package dialect

import (
	"strings"

	"fetchsql/internal/sqlutil"
)

// Oracle8 renders pre-ANSI theta-style joins: joined tables are listed in the
// FROM clause and the join predicates move to the WHERE clause, with the
// target-side columns of a left outer join decorated with "(+)".
type Oracle8 struct{}

// Name implements Dialect.
func (Oracle8) Name() string { return "oracle8" }

// Quote implements Dialect.
func (Oracle8) Quote(ident string) string { return sqlutil.QuoteDouble(ident) }

// JoinBuilder implements Dialect.
func (Oracle8) JoinBuilder() JoinBuilder { return &thetaJoinBuilder{} }

type thetaJoinBuilder struct {
	from  strings.Builder
	where strings.Builder
}

func (b *thetaJoinBuilder) AddJoin(table, alias string, lhsColumns, rhsColumns []string, kind JoinKind, extraCondition string) {
	b.from.WriteString(", ")
	b.from.WriteString(table)
	b.from.WriteString(" ")
	b.from.WriteString(alias)
	for i := range lhsColumns {
		b.where.WriteString(" and ")
		b.where.WriteString(lhsColumns[i])
		b.where.WriteString("=")
		b.where.WriteString(alias)
		b.where.WriteString(".")
		b.where.WriteString(rhsColumns[i])
		if kind == LeftOuterJoin {
			b.where.WriteString("(+)")
		}
	}
	if extraCondition != "" {
		b.where.WriteString(" and ")
		b.where.WriteString(extraCondition)
	}
}

func (b *thetaJoinBuilder) AddFragments(fromFragment, whereFragment string) {
	b.from.WriteString(fromFragment)
	b.where.WriteString(whereFragment)
}

func (b *thetaJoinBuilder) FromFragment() string { return b.from.String() }

func (b *thetaJoinBuilder) WhereFragment() string { return b.where.String() }
