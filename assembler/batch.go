package assembler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoKeyColumns indicates a batch key predicate requested with no key
// columns.
var ErrNoKeyColumns = errors.New("batch key requires at least one column")

// ErrBadBatchSize indicates a batch size below 1.
var ErrBadBatchSize = errors.New("batch size must be at least 1")

// BatchKeyPredicate builds the WHERE predicate that loads up to batchSize
// rows sharing one key shape in a single round trip.
//
// A single-column key yields "alias.col IN (?, ?, ...)" with exactly
// batchSize placeholders. A composite key yields one grouped equality
// condition per row: unparenthesized for batchSize 1, otherwise the groups
// joined by "or" inside one outer pair of parentheses.
func BatchKeyPredicate(alias string, keyColumns []string, batchSize int) (string, error) {
	if len(keyColumns) == 0 {
		return "", ErrNoKeyColumns
	}
	if batchSize < 1 {
		return "", fmt.Errorf("%w: got %d", ErrBadBatchSize, batchSize)
	}

	if len(keyColumns) == 1 {
		var buf strings.Builder
		buf.WriteString(alias)
		buf.WriteString(".")
		buf.WriteString(keyColumns[0])
		buf.WriteString(" IN (")
		for i := 0; i < batchSize; i++ {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString("?")
		}
		buf.WriteString(")")
		return buf.String(), nil
	}

	group := compositeKeyGroup(alias, keyColumns)
	if batchSize == 1 {
		return group, nil
	}
	var buf strings.Builder
	buf.WriteString("(")
	for i := 0; i < batchSize; i++ {
		if i > 0 {
			buf.WriteString(" or ")
		}
		buf.WriteString("(")
		buf.WriteString(group)
		buf.WriteString(")")
	}
	buf.WriteString(")")
	return buf.String(), nil
}

func compositeKeyGroup(alias string, keyColumns []string) string {
	parts := make([]string, len(keyColumns))
	for i, col := range keyColumns {
		parts[i] = alias + "." + col + " = ?"
	}
	return strings.Join(parts, " and ")
}
