package search

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontx/ontx"
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
	"github.com/ontx/ontx/store"
)

// collect materializes a query result, failing loudly on query errors so
// call sites stay one-liners.
func collect[T any](seq iter.Seq[T], err error) []T {
	if err != nil {
		panic(err)
	}
	return slices.Collect(seq)
}

func newStore(t *testing.T, statements ...*onto.Statement) *store.MemStore {
	t.Helper()
	m := store.NewMemStore()
	for _, s := range statements {
		require.NoError(t, m.AddStatement(s))
	}
	return m
}

func TestSuperAndSubClasses(t *testing.T) {
	dog := onto.Class("ex:Dog")
	animal := onto.Class("ex:Animal")
	puppy := onto.Class("ex:Puppy")
	ont := newStore(t,
		onto.NewSubClassOf(dog, animal),
		onto.NewSubClassOf(puppy, dog),
	)

	assert.Equal(t, []onto.Entity{animal}, collect(SuperClasses(dog, ont)))
	assert.Equal(t, []onto.Entity{puppy}, collect(SubClasses(dog, ont)))
	assert.Empty(t, collect(SuperClasses(animal, ont)))
}

func TestEquivalentClasses_ExcludesSubject(t *testing.T) {
	a, b, c := onto.Class("ex:A"), onto.Class("ex:B"), onto.Class("ex:C")
	ont := newStore(t, onto.NewEquivalentClasses(a, b, c))

	got := collect(EquivalentClasses(a, ont))
	assert.Equal(t, []onto.Entity{b, c}, got)
	assert.NotContains(t, got, a)
}

func TestDisjointClasses_KeepsSubject(t *testing.T) {
	a, b := onto.Class("ex:A"), onto.Class("ex:B")
	ont := newStore(t, onto.NewDisjointClasses(a, b))

	assert.Equal(t, []onto.Entity{a, b}, collect(DisjointClasses(a, ont)))
}

func TestInstancesAndTypes(t *testing.T) {
	dog := onto.Class("ex:Dog")
	rex := onto.Individual("ex:rex")
	ont := newStore(t, onto.NewClassAssertion(dog, rex))

	assert.Equal(t, []onto.Entity{rex}, collect(Instances(dog, ont)))
	assert.Equal(t, []onto.Entity{dog}, collect(Types(rex, ont)))
}

func TestSameIndividuals_ExcludesSubject(t *testing.T) {
	a, b := onto.Individual("ex:a"), onto.Individual("ex:b")
	ont := newStore(t, onto.NewSameIndividual(a, b))

	assert.Equal(t, []onto.Entity{b}, collect(SameIndividuals(a, ont)))
	assert.Equal(t, []onto.Entity{a, b}, collect(DifferentIndividuals(a, newStore(t, onto.NewDifferentIndividuals(a, b)))))
}

func TestSuperProperties_DispatchesOnVariant(t *testing.T) {
	op, opSuper := onto.ObjectProperty("ex:p"), onto.ObjectProperty("ex:q")
	dp, dpSuper := onto.DataProperty("ex:r"), onto.DataProperty("ex:s")
	ap, apSuper := onto.AnnotationProperty("ex:t"), onto.AnnotationProperty("ex:u")
	ont := newStore(t,
		onto.NewSubPropertyOf(op, opSuper),
		onto.NewSubPropertyOf(dp, dpSuper),
		onto.NewSubPropertyOf(ap, apSuper),
	)

	assert.Equal(t, []onto.Entity{opSuper}, collect(SuperProperties(op, ont)))
	assert.Equal(t, []onto.Entity{dpSuper}, collect(SuperProperties(dp, ont)))
	assert.Equal(t, []onto.Entity{apSuper}, collect(SuperProperties(ap, ont)))
	assert.Equal(t, []onto.Entity{op}, collect(SubProperties(opSuper, ont)))
}

func TestEquivalentProperties_AnnotationAlwaysEmpty(t *testing.T) {
	ap := onto.AnnotationProperty("ex:label")
	// Even a container that somehow holds a matching group yields nothing.
	ont := newStore(t, onto.NewEquivalentClasses(onto.Class("ex:A"), onto.Class("ex:B")))

	got, err := EquivalentProperties(ap, ont)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(got))

	got, err = DisjointProperties(ap, ont)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(got))
}

func TestEquivalentProperties_ExcludesSubject(t *testing.T) {
	p, q := onto.DataProperty("ex:p"), onto.DataProperty("ex:q")
	ont := newStore(t, onto.NewEquivalentProperties(p, q))

	assert.Equal(t, []onto.Entity{q}, collect(EquivalentProperties(p, ont)))
}

func TestInverses(t *testing.T) {
	p, q := onto.ObjectProperty("ex:parentOf"), onto.ObjectProperty("ex:childOf")
	ont := newStore(t, onto.NewInverseObjectProperties(p, q))

	assert.Equal(t, []onto.Entity{q}, collect(Inverses(p, ont)))
	assert.Equal(t, []onto.Entity{p}, collect(Inverses(q, ont)))

	// A property inverse to itself yields itself.
	self := onto.ObjectProperty("ex:spouseOf")
	ont2 := newStore(t, onto.NewInverseObjectProperties(self, self))
	assert.Equal(t, []onto.Entity{self}, collect(Inverses(self, ont2)))
}

func TestDomainsAndRanges(t *testing.T) {
	p := onto.ObjectProperty("ex:p")
	dp := onto.DataProperty("ex:d")
	ont := newStore(t,
		onto.NewObjectPropertyDomain(p, onto.Class("ex:A")),
		onto.NewObjectPropertyRange(p, onto.Class("ex:B")),
		onto.NewDataPropertyDomain(dp, onto.Class("ex:C")),
		onto.NewDataPropertyRange(dp, onto.Datatype("xsd:string")),
	)

	assert.Equal(t, []onto.Entity{onto.Class("ex:A")}, collect(Domains(p, ont)))
	assert.Equal(t, []onto.Entity{onto.Class("ex:B")}, collect(Ranges(p, ont)))
	assert.Equal(t, []onto.Entity{onto.Class("ex:C")}, collect(Domains(dp, ont)))
	assert.Equal(t, []onto.Entity{onto.Datatype("xsd:string")}, collect(Ranges(dp, ont)))
}

func TestAnnotationDomainsAndRanges_BareIdentifiers(t *testing.T) {
	ap := onto.AnnotationProperty("ex:label")
	ont := newStore(t,
		onto.NewAnnotationPropertyDomain(ap, "ex:A"),
		onto.NewAnnotationPropertyRange(ap, "xsd:string"),
	)

	assert.Equal(t, []onto.IRI{"ex:A"}, collect(AnnotationDomains(ap, ont)))
	assert.Equal(t, []onto.IRI{"xsd:string"}, collect(AnnotationRanges(ap, ont)))

	// Domains/Ranges reject annotation properties; their statements carry
	// bare identifiers.
	_, err := Domains(ap, ont)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestAnnotations(t *testing.T) {
	label := onto.AnnotationProperty("ex:label")
	comment := onto.AnnotationProperty("ex:comment")
	a := onto.Class("ex:A")
	ont := newStore(t,
		onto.NewAnnotationAssertion("ex:A", label, onto.StringLiteral("Alpha")),
		onto.NewAnnotationAssertion("ex:A", comment, onto.StringLiteral("first")),
		onto.NewAnnotationAssertion("ex:B", label, onto.StringLiteral("Beta")),
	)

	got := collect(Annotations(a, ont))
	assert.Equal(t, []onto.Annotation{
		{Property: label, Value: onto.StringLiteral("Alpha")},
		{Property: comment, Value: onto.StringLiteral("first")},
	}, got)

	byProp := collect(AnnotationsWithProperty(a, label, ont))
	assert.Equal(t, []onto.Annotation{{Property: label, Value: onto.StringLiteral("Alpha")}}, byProp)

	statements := collect(AnnotationStatements(a, ont))
	require.Len(t, statements, 2)
	assert.Equal(t, onto.AnnotationAssertion, statements[0].Kind)
}

func TestMultiContainer_ConcatenatesWithDuplicates(t *testing.T) {
	dog, animal := onto.Class("ex:Dog"), onto.Class("ex:Animal")
	first := newStore(t, onto.NewSubClassOf(dog, animal))
	second := newStore(t, onto.NewSubClassOf(dog, animal))

	got := collect(SuperClasses(dog, first, second))
	// No dedup across containers: the relation holds in both, so the result
	// contains the counterpart twice.
	assert.Equal(t, []onto.Entity{animal, animal}, got)
}

func TestSingleContainerEqualsSingletonList(t *testing.T) {
	dog, animal := onto.Class("ex:Dog"), onto.Class("ex:Animal")
	ont := newStore(t, onto.NewSubClassOf(dog, animal))

	single := collect(SuperClasses(dog, ont))
	list := collect(SuperClasses(dog, []ontx.Container{ont}...))
	assert.Equal(t, single, list)
}

func TestQueries_RestartablePerCall(t *testing.T) {
	dog, animal := onto.Class("ex:Dog"), onto.Class("ex:Animal")
	ont := newStore(t, onto.NewSubClassOf(dog, animal))

	seq, err := SuperClasses(dog, ont)
	require.NoError(t, err)
	assert.Equal(t, []onto.Entity{animal}, slices.Collect(seq))
	assert.Equal(t, []onto.Entity{animal}, slices.Collect(seq))
}

func TestQueries_FailFastOnMissingArguments(t *testing.T) {
	ont := newStore(t)

	_, err := SuperClasses(onto.Entity{}, ont)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = SuperClasses(onto.Class("ex:A"))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = SuperClasses(onto.Class("ex:A"), nil)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	// Wrong variant for the relation.
	_, err = SuperClasses(onto.Individual("ex:A"), ont)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestReferencingStatements_AcrossContainers(t *testing.T) {
	p := onto.DataProperty("ex:hasX")
	first := newStore(t, onto.NewDeclaration(p))
	second := newStore(t, onto.NewDataPropertyDomain(p, onto.Class("ex:A")))

	got := collect(ReferencingStatements(p, onto.ImportsExcluded, first, second))
	require.Len(t, got, 2)
	assert.Equal(t, onto.Declaration, got[0].Kind)
	assert.Equal(t, onto.DataPropertyDomain, got[1].Kind)
}

func TestContainsStatement_FourModeBehaviors(t *testing.T) {
	plain := onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal"))
	annotated := plain.WithAnnotations(onto.Annotation{
		Property: onto.AnnotationProperty("ex:comment"),
		Value:    onto.StringLiteral("x"),
	})
	imported := newStore(t, annotated)
	ont := newStore(t)
	ont.SetImports(imported)

	// The two flags combine independently.
	cases := []struct {
		imports onto.ImportsMode
		mode    onto.MatchMode
		want    bool
	}{
		{onto.ImportsExcluded, onto.MatchExact, false},
		{onto.ImportsExcluded, onto.MatchIgnoreAnnotations, false},
		{onto.ImportsIncluded, onto.MatchExact, false},
		{onto.ImportsIncluded, onto.MatchIgnoreAnnotations, true},
	}
	for _, tc := range cases {
		got, err := ContainsStatement(plain, tc.imports, tc.mode, ont)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "imports=%v mode=%v", tc.imports, tc.mode)
	}

	got, err := ContainsStatement(annotated, onto.ImportsIncluded, onto.MatchExact, ont)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestStatementsIgnoreAnnotations(t *testing.T) {
	plain := onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal"))
	annotated := plain.WithAnnotations(onto.Annotation{
		Property: onto.AnnotationProperty("ex:comment"),
		Value:    onto.StringLiteral("x"),
	})
	ont := newStore(t, plain, annotated)

	got := collect(StatementsIgnoreAnnotations(plain, onto.ImportsExcluded, ont))
	assert.Len(t, got, 2)
}
