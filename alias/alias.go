// Package alias derives the SQL table aliases and column suffixes used to
// disambiguate columns from different joined tables in one flattened row.
// A Generator is used by the caller to populate the assembler's alias
// context before any composer is invoked.
package alias

import (
	"strconv"
	"strings"

	"github.com/jinzhu/inflection"
)

// maxStem is the longest table-derived stem kept in a generated alias.
const maxStem = 10

// Generator hands out process-unique table aliases and injective column
// suffixes. It is not safe for concurrent use; one generator serves one
// query build.
type Generator struct {
	aliases  int
	suffixes int
}

// NewGenerator returns a fresh generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// TableAlias derives a readable alias from a table name: the singularized,
// sanitized stem followed by an ordinal and a trailing underscore, e.g.
// "order_items" becomes "order_item0_". Ordinals make aliases from one
// generator unique even for identical table names.
func (g *Generator) TableAlias(table string) string {
	stem := sanitize(inflection.Singular(table))
	if len(stem) > maxStem {
		stem = stem[:maxStem]
	}
	a := stem + strconv.Itoa(g.aliases) + "_"
	g.aliases++
	return a
}

// Suffix returns the next column suffix: "0_", "1_", and so on. Suffixes from
// one generator never repeat, which keeps suffix assignment injective per
// alias context.
func (g *Generator) Suffix() string {
	s := strconv.Itoa(g.suffixes) + "_"
	g.suffixes++
	return s
}

// sanitize lowers the name and drops everything that is not a letter, digit
// or underscore, so the alias never needs quoting.
func sanitize(name string) string {
	var buf strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			buf.WriteRune(r)
		}
	}
	if buf.Len() == 0 {
		return "t"
	}
	return buf.String()
}
