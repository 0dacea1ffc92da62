package assembler

import (
	"errors"
	"fmt"
)

// ErrUnresolvedAlias indicates a chain entry for which the alias context has
// no assignment. The assembler never synthesizes a fallback alias: a wrong
// alias produces semantically invalid SQL that still parses.
var ErrUnresolvedAlias = errors.New("no alias assignment for association")

// ErrDuplicateSuffix indicates two hops sharing a column suffix, which would
// make the flattened result row ambiguous.
var ErrDuplicateSuffix = errors.New("column suffix already assigned")

// Assignment is the alias resolution for one association.
type Assignment struct {
	// RHSAlias is the SQL alias of the joined table.
	RHSAlias string
	// LHSColumns optionally overrides the association's owner-side columns
	// with already-aliased references. Nil keeps the association's own.
	LHSColumns []string
	// EntitySuffix disambiguates entity columns in the flattened row.
	EntitySuffix string
	// CollectionSuffix disambiguates collection columns in the flattened row.
	CollectionSuffix string
}

// AliasContext maps each association of one query build to its alias
// assignment. It is populated by the caller before any composer runs and is
// read-only afterwards; one context is never shared across independent
// builds.
type AliasContext struct {
	byAssociation      map[*Association]Assignment
	entitySuffixes     map[string]bool
	collectionSuffixes map[string]bool
}

// NewAliasContext returns an empty alias context.
func NewAliasContext() *AliasContext {
	return &AliasContext{
		byAssociation:      make(map[*Association]Assignment),
		entitySuffixes:     make(map[string]bool),
		collectionSuffixes: make(map[string]bool),
	}
}

// Assign registers the assignment for one association. Suffix assignment is
// injective per context: reusing a non-empty suffix is an error.
func (c *AliasContext) Assign(a *Association, assignment Assignment) error {
	if assignment.EntitySuffix != "" {
		if c.entitySuffixes[assignment.EntitySuffix] {
			return fmt.Errorf("%w: entity suffix %q", ErrDuplicateSuffix, assignment.EntitySuffix)
		}
		c.entitySuffixes[assignment.EntitySuffix] = true
	}
	if assignment.CollectionSuffix != "" {
		if c.collectionSuffixes[assignment.CollectionSuffix] {
			return fmt.Errorf("%w: collection suffix %q", ErrDuplicateSuffix, assignment.CollectionSuffix)
		}
		c.collectionSuffixes[assignment.CollectionSuffix] = true
	}
	c.byAssociation[a] = assignment
	return nil
}

func (c *AliasContext) assignment(a *Association) (Assignment, error) {
	assignment, ok := c.byAssociation[a]
	if !ok {
		return Assignment{}, fmt.Errorf("%w: association to %s", ErrUnresolvedAlias, a.Target.Table)
	}
	return assignment, nil
}

// lhsColumns resolves the owner-side column references for one association,
// preferring the pre-aliased ones from the assignment.
func (c *AliasContext) lhsColumns(a *Association) ([]string, error) {
	assignment, err := c.assignment(a)
	if err != nil {
		return nil, err
	}
	if assignment.LHSColumns != nil {
		return assignment.LHSColumns, nil
	}
	return a.LHSColumns, nil
}
