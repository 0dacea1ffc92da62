package assembler

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"fetchsql/dialect"
)

func ordersRoot() Root {
	return Root{
		Table:      "orders",
		Alias:      "o0_",
		Columns:    []string{"id", "name"},
		KeyColumns: []string{"id"},
	}
}

func TestBuildBatchSelect_ANSI(t *testing.T) {
	chain, ctx := addressChain()
	a := mustAssembler(t, chain, ctx)

	got, err := a.BuildBatchSelect(ordersRoot(), 2, "o0_.name asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "SELECT o0_.id, o0_.name, a1_.id as id1_, a1_.street as street1_, a1_.city as city1_" +
		" FROM `orders` o0_" +
		" left outer join addresses a1_ on o0_.address_id=a1_.id" +
		" WHERE o0_.id IN (?, ?)" +
		" ORDER BY o0_.name asc"
	if got != want {
		t.Fatalf("statement mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestBuildBatchSelect_Theta(t *testing.T) {
	chain, ctx := addressChain()
	a := mustAssembler(t, chain, ctx, WithDialect(dialect.Oracle8{}))

	got, err := a.BuildBatchSelect(ordersRoot(), 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `SELECT o0_.id, o0_.name, a1_.id as id1_, a1_.street as street1_, a1_.city as city1_` +
		` FROM "orders" o0_ , addresses a1_` +
		` WHERE o0_.id IN (?) and o0_.address_id=a1_.id(+)`
	if got != want {
		t.Fatalf("statement mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestBuildBatchSelect_CollectionOrderingApplied(t *testing.T) {
	chain, ctx := itemsChain()
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := mustAssembler(t, chain, ctx, WithLogger(log))

	got, err := a.BuildBatchSelect(ordersRoot(), 3, "o0_.id asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, " ORDER BY i1_.position asc, o0_.id asc") {
		t.Fatalf("collection ordering must precede base ordering, got %q", got)
	}
	if got := strings.Count(got, "?"); got != 3 {
		t.Fatalf("expected 3 placeholders, got %d", got)
	}
}

func TestBuildBatchSelect_Idempotent(t *testing.T) {
	chain, ctx := tagChain()
	a := mustAssembler(t, chain, ctx)

	first, err := a.BuildBatchSelect(ordersRoot(), 2, "o0_.id asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.BuildBatchSelect(ordersRoot(), 2, "o0_.id asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("statements differ between runs:\n%q\n%q", first, second)
	}
}

// Drives an assembled statement through database/sql to check that the text
// parses as a single query and the placeholder arity matches the batch.
func TestBuildBatchSelect_ExecutesAgainstMock(t *testing.T) {
	chain, ctx := itemsChain()
	a := mustAssembler(t, chain, ctx)

	sqlText, err := a.BuildBatchSelect(ordersRoot(), 2, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "first")
	mock.ExpectQuery(regexp.QuoteMeta(sqlText)).WithArgs(1, 2).WillReturnRows(rows)

	result, err := db.Query(sqlText, 1, 2)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if err := result.Close(); err != nil {
		t.Fatalf("closing rows failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
