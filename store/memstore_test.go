package store

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontx/ontx/onto"
)

func mustAdd(t *testing.T, m *MemStore, statements ...*onto.Statement) {
	t.Helper()
	for _, s := range statements {
		require.NoError(t, m.AddStatement(s))
	}
}

func TestMemStore_AddDedupsStrictEquality(t *testing.T) {
	m := NewMemStore()
	s := onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal"))

	mustAdd(t, m, s, onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal")))
	assert.Equal(t, 1, m.Len())

	// Same structure, different annotations: a distinct statement under the
	// stricter mode.
	mustAdd(t, m, s.WithAnnotations(onto.Annotation{
		Property: onto.AnnotationProperty("ex:comment"),
		Value:    onto.StringLiteral("x"),
	}))
	assert.Equal(t, 2, m.Len())
}

func TestMemStore_RemoveIsIdempotent(t *testing.T) {
	m := NewMemStore()
	s := onto.NewDeclaration(onto.Class("ex:A"))
	mustAdd(t, m, s)

	require.NoError(t, m.RemoveStatement(s))
	assert.Equal(t, 0, m.Len())

	// Removing an absent statement is a no-op, not an error.
	require.NoError(t, m.RemoveStatement(s))
	assert.Equal(t, 0, m.Len())
}

func TestMemStore_StatementsOfFiltersByKindAndAnchor(t *testing.T) {
	m := NewMemStore()
	sub := onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal"))
	decl := onto.NewDeclaration(onto.Class("ex:Dog"))
	other := onto.NewSubClassOf(onto.Class("ex:Cat"), onto.Class("ex:Animal"))
	mustAdd(t, m, sub, decl, other)

	got := slices.Collect(m.StatementsOf(onto.SubClassOf, onto.Class("ex:Dog")))
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(sub, onto.MatchExact))

	// Anchoring is per identifier; both subclass statements anchor at the
	// shared superclass.
	got = slices.Collect(m.StatementsOf(onto.SubClassOf, onto.Class("ex:Animal")))
	assert.Len(t, got, 2)
}

func TestMemStore_SignatureIndividualsInFirstReferenceOrder(t *testing.T) {
	m := NewMemStore()
	mustAdd(t, m,
		onto.NewClassAssertion(onto.Class("ex:C"), onto.Individual("ex:b")),
		onto.NewDeclaration(onto.Individual("ex:a")),
		onto.NewClassAssertion(onto.Class("ex:C"), onto.Individual("ex:b")),
	)

	got := slices.Collect(m.SignatureIndividuals())
	assert.Equal(t, []onto.IRI{"ex:b", "ex:a"}, got)
}

func TestMemStore_SignatureDropsUnreferencedEntities(t *testing.T) {
	m := NewMemStore()
	decl := onto.NewDeclaration(onto.Individual("ex:a"))
	mustAdd(t, m, decl)
	require.NoError(t, m.RemoveStatement(decl))

	assert.Empty(t, slices.Collect(m.SignatureIndividuals()))
}

func TestMemStore_ContainsClass(t *testing.T) {
	m := NewMemStore()
	mustAdd(t, m,
		onto.NewDeclaration(onto.Class("ex:A")),
		onto.NewDeclaration(onto.Individual("ex:B")),
	)

	assert.True(t, m.ContainsClass("ex:A"))
	// An individual with the identifier does not put a class in signature.
	assert.False(t, m.ContainsClass("ex:B"))
	assert.False(t, m.ContainsClass("ex:C"))
}

func TestMemStore_ReferencingStatements(t *testing.T) {
	m := NewMemStore()
	p := onto.DataProperty("ex:hasX")
	decl := onto.NewDeclaration(p)
	domain := onto.NewDataPropertyDomain(p, onto.Class("ex:A"))
	unrelated := onto.NewDeclaration(onto.Class("ex:A"))
	mustAdd(t, m, decl, domain, unrelated)

	got := slices.Collect(m.ReferencingStatements(p, onto.ImportsExcluded))
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(decl, onto.MatchExact))
	assert.True(t, got[1].Equal(domain, onto.MatchExact))
}

func TestMemStore_ReferencingStatementsWalksImports(t *testing.T) {
	imported := NewMemStore()
	p := onto.DataProperty("ex:hasX")
	impDecl := onto.NewDeclaration(p)
	mustAdd(t, imported, impDecl)

	m := NewMemStore()
	local := onto.NewDataPropertyDomain(p, onto.Class("ex:A"))
	mustAdd(t, m, local)
	m.SetImports(imported)

	assert.Len(t, slices.Collect(m.ReferencingStatements(p, onto.ImportsExcluded)), 1)

	got := slices.Collect(m.ReferencingStatements(p, onto.ImportsIncluded))
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(local, onto.MatchExact))
	assert.True(t, got[1].Equal(impDecl, onto.MatchExact))
}

func TestMemStore_ContainsStatementModes(t *testing.T) {
	m := NewMemStore()
	annotated := onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal")).
		WithAnnotations(onto.Annotation{Property: onto.AnnotationProperty("ex:comment"), Value: onto.StringLiteral("x")})
	mustAdd(t, m, annotated)

	plain := onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal"))
	assert.False(t, m.ContainsStatement(plain, onto.ImportsExcluded, onto.MatchExact))
	assert.True(t, m.ContainsStatement(plain, onto.ImportsExcluded, onto.MatchIgnoreAnnotations))

	imported := NewMemStore()
	mustAdd(t, imported, plain)
	m.SetImports(imported)
	assert.True(t, m.ContainsStatement(plain, onto.ImportsIncluded, onto.MatchExact))
}

func TestMemStore_MatchingStatements(t *testing.T) {
	m := NewMemStore()
	plain := onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal"))
	annotated := plain.WithAnnotations(onto.Annotation{Property: onto.AnnotationProperty("ex:comment"), Value: onto.StringLiteral("x")})
	mustAdd(t, m, plain, annotated)

	got := slices.Collect(m.MatchingStatements(plain, onto.ImportsExcluded))
	assert.Len(t, got, 2)
}
