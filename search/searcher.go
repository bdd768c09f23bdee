package search

import (
	"iter"

	"github.com/ontx/ontx"
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
)

// SuperClasses returns the classes asserted to subsume c.
func SuperClasses(c onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(c, onto.KindClass); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(c, filter[onto.Entity]{onto.SubClassOf, superOf}, onts), nil
}

// SubClasses returns the classes asserted to be subsumed by c.
func SubClasses(c onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(c, onto.KindClass); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(c, filter[onto.Entity]{onto.SubClassOf, subOf}, onts), nil
}

// EquivalentClasses returns the classes asserted equivalent to c. The
// result never contains c itself.
func EquivalentClasses(c onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(c, onto.KindClass); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(c, filter[onto.Entity]{onto.EquivalentClasses, groupOthers}, onts), nil
}

// DisjointClasses returns the members of every disjointness group c belongs
// to, c included.
func DisjointClasses(c onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(c, onto.KindClass); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(c, filter[onto.Entity]{onto.DisjointClasses, groupAll}, onts), nil
}

// Instances returns the individuals asserted to be instances of c.
func Instances(c onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(c, onto.KindClass); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(c, filter[onto.Entity]{onto.ClassAssertion, instanceOf}, onts), nil
}

// Types returns the classes the individual i is asserted to instantiate.
func Types(i onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(i, onto.KindIndividual); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(i, filter[onto.Entity]{onto.ClassAssertion, typeOf}, onts), nil
}

// SameIndividuals returns the individuals asserted to be the same as i,
// excluding i itself.
func SameIndividuals(i onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(i, onto.KindIndividual); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(i, filter[onto.Entity]{onto.SameIndividual, groupOthers}, onts), nil
}

// DifferentIndividuals returns the members of every distinctness group i
// belongs to, i included.
func DifferentIndividuals(i onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(i, onto.KindIndividual); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(i, filter[onto.Entity]{onto.DifferentIndividuals, groupAll}, onts), nil
}

// SuperProperties returns the properties asserted to subsume p. The
// statement kind is resolved from p's variant.
func SuperProperties(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(p, onto.KindObjectProperty, onto.KindDataProperty, onto.KindAnnotationProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(p, filter[onto.Entity]{subPropertyKinds[p.Kind], superOf}, onts), nil
}

// SubProperties returns the properties asserted to be subsumed by p.
func SubProperties(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(p, onto.KindObjectProperty, onto.KindDataProperty, onto.KindAnnotationProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(p, filter[onto.Entity]{subPropertyKinds[p.Kind], subOf}, onts), nil
}

// EquivalentProperties returns the properties asserted equivalent to p,
// excluding p itself. Annotation properties cannot be asserted equivalent;
// for them the result is always empty, never an error.
func EquivalentProperties(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(p, onto.KindObjectProperty, onto.KindDataProperty, onto.KindAnnotationProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	if p.Kind == onto.KindAnnotationProperty {
		return emptySeq[onto.Entity](), nil
	}
	return query(p, filter[onto.Entity]{equivalentPropertyKinds[p.Kind], groupOthers}, onts), nil
}

// DisjointProperties returns the members of every disjointness group p
// belongs to, p included. Annotation properties cannot be asserted
// disjoint; for them the result is always empty, never an error.
func DisjointProperties(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(p, onto.KindObjectProperty, onto.KindDataProperty, onto.KindAnnotationProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	if p.Kind == onto.KindAnnotationProperty {
		return emptySeq[onto.Entity](), nil
	}
	return query(p, filter[onto.Entity]{disjointPropertyKinds[p.Kind], groupAll}, onts), nil
}

// Inverses returns the object properties asserted inverse to p.
func Inverses(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(p, onto.KindObjectProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(p, filter[onto.Entity]{onto.InverseObjectProperties, inverseOf}, onts), nil
}

// Domains returns the asserted domains of an object or data property. For
// annotation properties use AnnotationDomains; their domain statements
// carry bare identifiers, not expressions.
func Domains(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(p, onto.KindObjectProperty, onto.KindDataProperty); err != nil {
		return nil, errors.WithHint(err, "annotation property domains are bare identifiers; use AnnotationDomains")
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(p, filter[onto.Entity]{domainKinds[p.Kind], domainRangeOf}, onts), nil
}

// Ranges returns the asserted ranges of an object or data property. For
// annotation properties use AnnotationRanges.
func Ranges(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(p, onto.KindObjectProperty, onto.KindDataProperty); err != nil {
		return nil, errors.WithHint(err, "annotation property ranges are bare identifiers; use AnnotationRanges")
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(p, filter[onto.Entity]{rangeKinds[p.Kind], domainRangeOf}, onts), nil
}

// AnnotationDomains returns the bare identifiers asserted as domains of an
// annotation property.
func AnnotationDomains(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.IRI], error) {
	if err := checkVariant(p, onto.KindAnnotationProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(p, filter[onto.IRI]{onto.AnnotationPropertyDomain, bareIdentifierOf}, onts), nil
}

// AnnotationRanges returns the bare identifiers asserted as ranges of an
// annotation property.
func AnnotationRanges(p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.IRI], error) {
	if err := checkVariant(p, onto.KindAnnotationProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(p, filter[onto.IRI]{onto.AnnotationPropertyRange, bareIdentifierOf}, onts), nil
}

// Annotations returns the annotations asserted on e's identifier.
func Annotations(e onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Annotation], error) {
	if err := checkEntity(e); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(e, filter[onto.Annotation]{onto.AnnotationAssertion, annotationOf}, onts), nil
}

// AnnotationsWithProperty returns the annotations asserted on e's
// identifier through the given annotation property.
func AnnotationsWithProperty(e, p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Annotation], error) {
	if err := checkEntity(e); err != nil {
		return nil, err
	}
	if err := checkVariant(p, onto.KindAnnotationProperty); err != nil {
		return nil, err
	}
	all, err := Annotations(e, onts...)
	if err != nil {
		return nil, err
	}
	return func(yield func(onto.Annotation) bool) {
		for a := range all {
			if a.Property == p {
				if !yield(a) {
					return
				}
			}
		}
	}, nil
}

// AnnotationStatements returns the raw annotation assertion statements
// whose subject is e's identifier.
func AnnotationStatements(e onto.Entity, onts ...ontx.Container) (iter.Seq[*onto.Statement], error) {
	if err := checkEntity(e); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(e, filter[*onto.Statement]{onto.AnnotationAssertion, annotationStatementOf}, onts), nil
}

// ReferencingStatements returns every statement whose signature contains e,
// per container, in container order.
func ReferencingStatements(e onto.Entity, imports onto.ImportsMode, onts ...ontx.Container) (iter.Seq[*onto.Statement], error) {
	if err := checkEntity(e); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return func(yield func(*onto.Statement) bool) {
		for _, ont := range onts {
			for s := range ont.ReferencingStatements(e, imports) {
				if !yield(s) {
					return
				}
			}
		}
	}, nil
}

// ContainsStatement reports whether any container holds a statement
// structurally equal to s. The imports and match-mode flags combine
// independently, giving four distinct behaviors.
func ContainsStatement(s *onto.Statement, imports onto.ImportsMode, mode onto.MatchMode, onts ...ontx.Container) (bool, error) {
	if err := checkStatement(s); err != nil {
		return false, err
	}
	if err := checkContainers(onts); err != nil {
		return false, err
	}
	for _, ont := range onts {
		if ont.ContainsStatement(s, imports, mode) {
			return true, nil
		}
	}
	return false, nil
}

// StatementsIgnoreAnnotations returns every stored statement structurally
// equal to s when attached annotations are ignored.
func StatementsIgnoreAnnotations(s *onto.Statement, imports onto.ImportsMode, onts ...ontx.Container) (iter.Seq[*onto.Statement], error) {
	if err := checkStatement(s); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return func(yield func(*onto.Statement) bool) {
		for _, ont := range onts {
			for m := range ont.MatchingStatements(s, imports) {
				if !yield(m) {
					return
				}
			}
		}
	}, nil
}
