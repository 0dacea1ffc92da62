package assembler

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Root describes the root entity table of a batched load.
type Root struct {
	// Table is the physical table name, quoted per dialect at render time.
	Table string
	// Alias is the root table's SQL alias.
	Alias string
	// Columns are the root columns to project, qualified with Alias.
	Columns []string
	// KeyColumns are the key columns the batch predicate matches on.
	KeyColumns []string
}

// BuildBatchSelect concatenates the composer outputs into one SELECT that
// loads up to batchSize root rows and their eagerly fetched graph. The
// returned statement carries one positional placeholder per batched key
// value; binding the values is the executing layer's concern.
func (a *Assembler) BuildBatchSelect(root Root, batchSize int, baseOrdering string) (string, error) {
	selectList, err := a.SelectList()
	if err != nil {
		return "", err
	}
	joins, err := a.JoinFragment()
	if err != nil {
		return "", err
	}
	keyPredicate, err := BatchKeyPredicate(root.Alias, root.KeyColumns, batchSize)
	if err != nil {
		return "", err
	}
	ordering, err := a.OrderBy(baseOrdering)
	if err != nil {
		return "", err
	}

	rootColumns := make([]string, len(root.Columns))
	for i, col := range root.Columns {
		rootColumns[i] = root.Alias + "." + col
	}
	builder := sq.Select(rootColumns...).
		From(a.dialect.Quote(root.Table) + " " + root.Alias).
		PlaceholderFormat(sq.Question)
	if selectList != "" {
		// The composers emit rendered column lists, so the fragment goes in
		// raw rather than through squirrel's column handling.
		builder = builder.Column(sq.Expr(strings.TrimPrefix(selectList, ", ")))
	}
	if joins.From != "" {
		builder = builder.JoinClause(strings.TrimSpace(joins.From))
	}
	// The join builder's where fragment starts with " and " when non-empty,
	// so it concatenates directly onto the batch predicate.
	builder = builder.Where(sq.Expr(keyPredicate + joins.Where))
	if ordering != "" {
		builder = builder.OrderBy(ordering)
	}

	sqlText, _, err := builder.ToSql()
	if err != nil {
		return "", err
	}
	if a.log != nil {
		a.log.Debug("assembled eager fetch statement",
			"dialect", a.dialect.Name(),
			"root_table", root.Table,
			"associations", len(a.chain),
			"batch_size", batchSize,
		)
	}
	return sqlText, nil
}
