package joinable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Entity", KindEntity.String())
	assert.Equal(t, "Collection", KindCollection.String())
	assert.Equal(t, "Unknown", Kind(7).String())
}

func TestFilterFragment(t *testing.T) {
	target := &Target{
		Table: "accounts",
		Kind:  KindEntity,
		Filters: []Filter{
			{Name: "tenant", Fragment: "{alias}.tenant_id = 1"},
			{Name: "active", Fragment: "{alias}.active = 1"},
			{Name: "region", Fragment: "{alias}.region = 'eu'"},
		},
	}

	assert.Empty(t, target.FilterFragment("a1_", nil))
	assert.Equal(t, "a1_.active = 1", target.FilterFragment("a1_", map[string]bool{"active": true}))
	assert.Equal(t,
		"a1_.tenant_id = 1 and a1_.region = 'eu'",
		target.FilterFragment("a1_", map[string]bool{"tenant": true, "region": true}),
	)
}

func TestManyToManyFilterFragment(t *testing.T) {
	target := &Target{
		Table:             "group_members",
		Kind:              KindCollection,
		ManyToMany:        true,
		ManyToManyFilters: []Filter{{Name: "visible", Fragment: "{alias}.hidden = 0"}},
	}
	assert.Equal(t, "u2_.hidden = 0", target.ManyToManyFilterFragment("u2_", map[string]bool{"visible": true}))
	assert.Empty(t, target.ManyToManyFilterFragment("u2_", nil))
}

func TestOrderingFragments(t *testing.T) {
	target := &Target{
		Table:              "group_members",
		Kind:               KindCollection,
		ManyToMany:         true,
		Ordering:           "{alias}.joined_at asc",
		ManyToManyOrdering: "{alias}.name asc",
	}
	require.True(t, target.HasOrdering())
	require.True(t, target.HasManyToManyOrdering())
	assert.Equal(t, "m1_.joined_at asc", target.OrderingFragment("m1_"))
	assert.Equal(t, "u2_.name asc", target.ManyToManyOrderingFragment("u2_"))
}

func TestIntrinsicFragments(t *testing.T) {
	target := &Target{
		Table:      "documents",
		Kind:       KindEntity,
		ExtraWhere: " and {alias}.deleted_at is null",
	}
	assert.Equal(t, " and d1_.deleted_at is null", target.WhereJoinFragment("d1_"))
	assert.Empty(t, target.FromJoinFragment("d1_"))
}

func TestSelectFragment_Entity(t *testing.T) {
	target := &Target{
		Table:      "addresses",
		Kind:       KindEntity,
		KeyColumns: []string{"id"},
		Columns:    []string{"street"},
	}
	got := target.SelectFragment(nil, "", "a1_", "1_", "", true)
	assert.Equal(t, "a1_.id as id1_, a1_.street as street1_", got)
}

func TestSelectFragment_CollectionExcludedWithoutLeftOuter(t *testing.T) {
	target := &Target{
		Table:      "order_items",
		Kind:       KindCollection,
		KeyColumns: []string{"order_id"},
		Columns:    []string{"qty"},
	}
	assert.Empty(t, target.SelectFragment(nil, "", "i1_", "", "0_", false))
}

func TestSelectFragment_CollectionWithIndex(t *testing.T) {
	target := &Target{
		Table:       "order_items",
		Kind:        KindCollection,
		KeyColumns:  []string{"order_id"},
		IndexColumn: "position",
		Columns:     []string{"qty"},
	}
	got := target.SelectFragment(nil, "", "i1_", "", "0_", true)
	assert.Equal(t, "i1_.order_id as order_id0_, i1_.position as position0_, i1_.qty as qty0_", got)
}

func TestSelectFragment_ManyToManyProjectsElementTable(t *testing.T) {
	element := &Target{
		Table:      "tags",
		Kind:       KindEntity,
		KeyColumns: []string{"id"},
	}
	link := &Target{
		Table:      "product_tags",
		Kind:       KindCollection,
		ManyToMany: true,
		KeyColumns: []string{"product_id"},
		Columns:    []string{"name"},
	}
	got := link.SelectFragment(element, "t2_", "l1_", "", "0_", true)
	assert.Equal(t, "l1_.product_id as product_id0_, t2_.name as name0_", got)

	// Without a next hop the element columns fall back to the link alias.
	got = link.SelectFragment(nil, "", "l1_", "", "0_", true)
	assert.Equal(t, "l1_.product_id as product_id0_, l1_.name as name0_", got)
}
