package assembler

import (
	"testing"

	"fetchsql/dialect"
)

func TestSelectList_EntityColumns(t *testing.T) {
	chain, ctx := addressChain()
	a := mustAssembler(t, chain, ctx)

	got, err := a.SelectList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ", a1_.id as id1_, a1_.street as street1_, a1_.city as city1_"
	if got != want {
		t.Fatalf("select list mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSelectList_CollectionColumns(t *testing.T) {
	chain, ctx := itemsChain()
	a := mustAssembler(t, chain, ctx)

	got, err := a.SelectList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ", i1_.order_id as order_id0_, i1_.position as position0_, i1_.sku as sku0_, i1_.qty as qty0_"
	if got != want {
		t.Fatalf("select list mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSelectList_InnerJoinedCollectionExcluded(t *testing.T) {
	chain, ctx := itemsChain()
	chain[0].Kind = dialect.InnerJoin
	a := mustAssembler(t, chain, ctx)

	got, err := a.SelectList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty select list for inner joined collection, got %q", got)
	}
}

func TestSelectList_ManyToManyLookahead(t *testing.T) {
	chain, ctx := tagChain()
	a := mustAssembler(t, chain, ctx)

	got, err := a.SelectList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The link collection projects its element columns from the element
	// table joined next, then the element entity projects its own columns
	// under its entity suffix.
	want := ", l1_.product_id as product_id0_, t2_.name as name0_, t2_.id as id1_, t2_.name as name1_"
	if got != want {
		t.Fatalf("select list mismatch:\n got %q\nwant %q", got, want)
	}
}
