// Package assembler builds the SQL fragments needed to eagerly load an
// entity graph in a single statement: join clauses over an ordered
// association chain, batched key lookup predicates, merged ORDER BY clauses
// and per-hop select lists. The composers are pure functions over the chain
// and the alias context supplied at construction time; a constructed
// Assembler holds no mutable state and is safe for concurrent use.
//
// The assembler only produces SQL text. Executing it, caching it and
// managing connections are the calling layer's concern.
package assembler

import (
	"log/slog"

	"fetchsql/dialect"
)

// Assembler composes fragments for one association chain. The chain and the
// alias context are built by the caller before construction and must not be
// mutated afterwards.
type Assembler struct {
	chain   []*Association
	aliases *AliasContext
	dialect dialect.Dialect
	log     *slog.Logger
}

// Option configures an Assembler at construction time.
type Option func(*Assembler)

// WithDialect selects the SQL dialect. The default is dialect.MySQL.
func WithDialect(d dialect.Dialect) Option {
	return func(a *Assembler) { a.dialect = d }
}

// WithLogger attaches a logger; assembled statements are logged at Debug.
func WithLogger(log *slog.Logger) Option {
	return func(a *Assembler) { a.log = log }
}

// New builds an Assembler over the given chain and alias context. Mapping
// inconsistencies in the chain (owner/target key column lists of unequal or
// zero length) are reported here rather than deferred to execution.
func New(chain []*Association, aliases *AliasContext, opts ...Option) (*Assembler, error) {
	if aliases == nil {
		aliases = NewAliasContext()
	}
	a := &Assembler{
		chain:   chain,
		aliases: aliases,
		dialect: dialect.MySQL{},
	}
	for _, opt := range opts {
		opt(a)
	}
	for _, assoc := range chain {
		if err := assoc.validate(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Dialect returns the dialect the assembler renders for.
func (a *Assembler) Dialect() dialect.Dialect { return a.dialect }
