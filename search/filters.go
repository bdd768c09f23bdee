// Package search is the query facade over statement containers. Every
// accessor takes one or more containers; multi-container results are the
// order-preserving concatenation of the per-container results, with no
// dedup and no merge semantics. Sequences are lazy and restartable;
// argument validation happens eagerly, before any sequence is produced.
package search

import (
	"iter"

	"github.com/ontx/ontx"
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
)

// filter pairs a statement kind with an operand extractor: given a
// statement of that kind, extract decides whether the statement matches the
// anchor entity and returns the counterpart operands.
type filter[T any] struct {
	kind    onto.Kind
	extract func(s *onto.Statement, anchor onto.Entity) []T
}

// query fetches the pre-indexed statement sequence for the filter's kind in
// each container, in order, and maps each statement to its operands.
func query[T any](e onto.Entity, f filter[T], onts []ontx.Container) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ont := range onts {
			for s := range ont.StatementsOf(f.kind, e) {
				for _, v := range f.extract(s, e) {
					if !yield(v) {
						return
					}
				}
			}
		}
	}
}

// exists reports whether any container holds a statement of the given kind
// matched by the filter at the anchor. The multi-container form is an
// existential OR, never a universal AND.
func exists[T any](e onto.Entity, f filter[T], onts []ontx.Container) bool {
	for _, ont := range onts {
		for s := range ont.StatementsOf(f.kind, e) {
			if len(f.extract(s, e)) > 0 {
				return true
			}
		}
	}
	return false
}

func emptySeq[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Extractors. Anchor comparisons are full tagged-entity comparisons, so a
// class and an individual sharing an identifier never satisfy each other's
// filters.

func superOf(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	if s.Subject == anchor {
		return []onto.Entity{s.Object}
	}
	return nil
}

func subOf(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	if s.Object == anchor {
		return []onto.Entity{s.Subject}
	}
	return nil
}

// groupOthers returns the group members with every occurrence of the anchor
// removed. Equivalence groups are stored symmetrically and include the
// query subject, which must not appear in results.
func groupOthers(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	found := false
	for _, m := range s.Members {
		if m == anchor {
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	others := make([]onto.Entity, 0, len(s.Members)-1)
	for _, m := range s.Members {
		if m != anchor {
			others = append(others, m)
		}
	}
	return others
}

// groupAll returns every member of a group the anchor belongs to, anchor
// included. Disjointness and different-individuals groups keep the subject
// in their results.
func groupAll(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	for _, m := range s.Members {
		if m == anchor {
			return s.Members
		}
	}
	return nil
}

func instanceOf(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	if s.Object == anchor {
		return []onto.Entity{s.Subject}
	}
	return nil
}

func typeOf(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	if s.Subject == anchor {
		return []onto.Entity{s.Object}
	}
	return nil
}

func domainRangeOf(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	if s.Property == anchor {
		return []onto.Entity{s.Object}
	}
	return nil
}

// bareIdentifierOf extracts the bare identifier operand of
// annotation-property domain and range statements.
func bareIdentifierOf(s *onto.Statement, anchor onto.Entity) []onto.IRI {
	if s.Property == anchor {
		return []onto.IRI{s.About}
	}
	return nil
}

// inverseOf returns the partner of the anchor in an inverse-properties
// statement. A property declared inverse to itself yields itself.
func inverseOf(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	if len(s.Members) != 2 {
		return nil
	}
	if s.Members[0] == anchor {
		return []onto.Entity{s.Members[1]}
	}
	if s.Members[1] == anchor {
		return []onto.Entity{s.Members[0]}
	}
	return nil
}

func characteristicOf(s *onto.Statement, anchor onto.Entity) []struct{} {
	if s.Property == anchor {
		return []struct{}{{}}
	}
	return nil
}

// annotationOf matches annotation assertions whose subject identifier
// equals the anchor's identifier, regardless of the anchor's variant.
func annotationOf(s *onto.Statement, anchor onto.Entity) []onto.Annotation {
	if s.About == anchor.IRI {
		return []onto.Annotation{{Property: s.Property, Value: s.Value}}
	}
	return nil
}

func annotationStatementOf(s *onto.Statement, anchor onto.Entity) []*onto.Statement {
	if s.About == anchor.IRI {
		return []*onto.Statement{s}
	}
	return nil
}

// Dispatch tables keyed by entity variant. Relation queries resolve their
// statement kind here instead of relying on overload resolution.

var subPropertyKinds = map[onto.EntityKind]onto.Kind{
	onto.KindObjectProperty:     onto.SubObjectPropertyOf,
	onto.KindDataProperty:       onto.SubDataPropertyOf,
	onto.KindAnnotationProperty: onto.SubAnnotationPropertyOf,
}

var equivalentPropertyKinds = map[onto.EntityKind]onto.Kind{
	onto.KindObjectProperty: onto.EquivalentObjectProperties,
	onto.KindDataProperty:   onto.EquivalentDataProperties,
}

var disjointPropertyKinds = map[onto.EntityKind]onto.Kind{
	onto.KindObjectProperty: onto.DisjointObjectProperties,
	onto.KindDataProperty:   onto.DisjointDataProperties,
}

var domainKinds = map[onto.EntityKind]onto.Kind{
	onto.KindObjectProperty: onto.ObjectPropertyDomain,
	onto.KindDataProperty:   onto.DataPropertyDomain,
}

var rangeKinds = map[onto.EntityKind]onto.Kind{
	onto.KindObjectProperty: onto.ObjectPropertyRange,
	onto.KindDataProperty:   onto.DataPropertyRange,
}

// Argument validation. Missing arguments fail fast; they are never treated
// as empty input.

func checkEntity(e onto.Entity) error {
	if e.IsZero() {
		return errors.Wrap(errors.ErrInvalidArgument, "entity must not be zero")
	}
	return nil
}

func checkVariant(e onto.Entity, kinds ...onto.EntityKind) error {
	if err := checkEntity(e); err != nil {
		return err
	}
	for _, k := range kinds {
		if e.Kind == k {
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInvalidArgument, "unsupported entity variant %s", e.Kind)
}

func checkContainers(onts []ontx.Container) error {
	if len(onts) == 0 {
		return errors.Wrap(errors.ErrInvalidArgument, "at least one container is required")
	}
	for i, ont := range onts {
		if ont == nil {
			return errors.Wrapf(errors.ErrInvalidArgument, "container %d is nil", i)
		}
	}
	return nil
}

func checkStatement(s *onto.Statement) error {
	if s == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "statement must not be nil")
	}
	return nil
}
