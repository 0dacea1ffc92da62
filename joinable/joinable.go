// Package joinable models anything that can appear as the right-hand side of
// a join in an eager-fetch statement: a single entity table, a collection
// table (bag/set/list/map), or a many-to-many link table. A target is a
// tagged variant; the composers dispatch on the Kind and ManyToMany
// discriminants rather than on runtime types.
package joinable

import "strings"

// aliasToken is the placeholder substituted with the resolved table alias in
// filter, ordering and where fragment templates.
const aliasToken = "{alias}"

// Kind discriminates the join target variants.
type Kind int

const (
	// KindEntity is a single entity table.
	KindEntity Kind = iota
	// KindCollection is a collection table. Together with the ManyToMany
	// flag it also covers the link-table case.
	KindCollection
)

// String returns a human-readable representation of the target kind.
func (k Kind) String() string {
	switch k {
	case KindEntity:
		return "Entity"
	case KindCollection:
		return "Collection"
	default:
		return "Unknown"
	}
}

// Filter is one named row-level filter. Fragment is a boolean SQL fragment
// template; occurrences of "{alias}" are replaced with the resolved alias of
// the table the filter applies to.
type Filter struct {
	Name     string
	Fragment string
}

// render substitutes the resolved alias into a fragment template.
func render(template, alias string) string {
	return strings.ReplaceAll(template, aliasToken, alias)
}
