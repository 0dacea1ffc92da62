package joinable

import "strings"

// Target describes one join target. It is immutable for the lifetime of a
// query build; the composers only ever read it.
type Target struct {
	// Table is the physical table name.
	Table string
	// Kind discriminates entity tables from collection tables.
	Kind Kind
	// ManyToMany marks a collection backed by a link table. The element
	// columns then live on the element entity table joined right after the
	// link table.
	ManyToMany bool

	// KeyColumns are the identity columns projected so a flattened row can
	// be demultiplexed into distinct instances downstream. For a collection
	// these are the collection key (owner FK) columns.
	KeyColumns []string
	// IndexColumn is the position or map-key column of list/map collections.
	// Empty for bags, sets and entities.
	IndexColumn string
	// Columns are the remaining projected columns: property columns for an
	// entity, element columns for a collection.
	Columns []string

	// Filters are the named row-level filters that may be enabled per
	// association.
	Filters []Filter
	// ManyToManyFilters apply to the element table side of a many-to-many
	// collection and are merged into the combined join of the pair.
	ManyToManyFilters []Filter

	// Ordering is a static ORDER BY fragment template for collection element
	// ordering, e.g. "{alias}.position asc". Empty when the mapping declares
	// no ordering.
	Ordering string
	// ManyToManyOrdering is an ORDER BY fragment template scoped to the link
	// table of a many-to-many collection.
	ManyToManyOrdering string

	// ExtraFrom and ExtraWhere are from/where fragment templates the target
	// contributes independently of any particular join, such as a
	// discriminator or soft-delete predicate.
	ExtraFrom  string
	ExtraWhere string
}

// IsCollection reports whether the target is a collection table.
func (t *Target) IsCollection() bool { return t.Kind == KindCollection }

// HasOrdering reports whether the mapping declares an element ordering.
func (t *Target) HasOrdering() bool { return t.Ordering != "" }

// HasManyToManyOrdering reports whether the mapping declares a link-table
// scoped ordering.
func (t *Target) HasManyToManyOrdering() bool { return t.ManyToManyOrdering != "" }

// OrderingFragment renders the element ordering against the resolved alias.
func (t *Target) OrderingFragment(alias string) string {
	return render(t.Ordering, alias)
}

// ManyToManyOrderingFragment renders the link-table ordering against the
// resolved alias.
func (t *Target) ManyToManyOrderingFragment(alias string) string {
	return render(t.ManyToManyOrdering, alias)
}

// FilterFragment renders the enabled row filters against the resolved alias,
// joined with " and ". Disabled and unknown filters contribute nothing; no
// enabled filters yields the empty string.
func (t *Target) FilterFragment(alias string, enabled map[string]bool) string {
	return filterFragment(t.Filters, alias, enabled)
}

// ManyToManyFilterFragment renders the enabled element-side filters of a
// many-to-many collection against the resolved alias of its element table.
func (t *Target) ManyToManyFilterFragment(alias string, enabled map[string]bool) string {
	return filterFragment(t.ManyToManyFilters, alias, enabled)
}

func filterFragment(filters []Filter, alias string, enabled map[string]bool) string {
	var buf strings.Builder
	for _, f := range filters {
		if !enabled[f.Name] {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString(" and ")
		}
		buf.WriteString(render(f.Fragment, alias))
	}
	return buf.String()
}

// FromJoinFragment renders the target-intrinsic FROM text appended after the
// target's own join clause.
func (t *Target) FromJoinFragment(alias string) string {
	return render(t.ExtraFrom, alias)
}

// WhereJoinFragment renders the target-intrinsic WHERE text appended after
// the target's own join clause.
func (t *Target) WhereJoinFragment(alias string) string {
	return render(t.ExtraWhere, alias)
}

// SelectFragment builds the column list this target contributes to the
// flattened row. next is the following join target, or nil at the tail of the
// chain; nextAlias is its resolved alias. Entity targets alias their columns
// with entitySuffix, collection targets with collectionSuffix. Collection
// columns are only projected for left outer joined fetches
// (includeCollectionColumns); for a many-to-many collection the element
// columns are projected from the element table joined next.
func (t *Target) SelectFragment(next *Target, nextAlias, alias, entitySuffix, collectionSuffix string, includeCollectionColumns bool) string {
	if t.IsCollection() {
		if !includeCollectionColumns {
			return ""
		}
		var parts []string
		for _, col := range t.KeyColumns {
			parts = append(parts, aliasedColumn(alias, col, collectionSuffix))
		}
		if t.IndexColumn != "" {
			parts = append(parts, aliasedColumn(alias, t.IndexColumn, collectionSuffix))
		}
		elementAlias := alias
		if t.ManyToMany && next != nil && nextAlias != "" {
			elementAlias = nextAlias
		}
		for _, col := range t.Columns {
			parts = append(parts, aliasedColumn(elementAlias, col, collectionSuffix))
		}
		return strings.Join(parts, ", ")
	}

	parts := make([]string, 0, len(t.KeyColumns)+len(t.Columns))
	for _, col := range t.KeyColumns {
		parts = append(parts, aliasedColumn(alias, col, entitySuffix))
	}
	for _, col := range t.Columns {
		parts = append(parts, aliasedColumn(alias, col, entitySuffix))
	}
	return strings.Join(parts, ", ")
}

func aliasedColumn(alias, column, suffix string) string {
	return alias + "." + column + " as " + column + suffix
}
