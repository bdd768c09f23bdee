package search

import (
	"iter"

	"github.com/ontx/ontx"
	"github.com/ontx/ontx/onto"
)

func literalValueOf(p onto.Entity) func(s *onto.Statement, anchor onto.Entity) []onto.Literal {
	return func(s *onto.Statement, anchor onto.Entity) []onto.Literal {
		if s.Subject == anchor && s.Property == p {
			return []onto.Literal{s.Value}
		}
		return nil
	}
}

func objectValueOf(p onto.Entity) func(s *onto.Statement, anchor onto.Entity) []onto.Entity {
	return func(s *onto.Statement, anchor onto.Entity) []onto.Entity {
		if s.Subject == anchor && s.Property == p {
			return []onto.Entity{s.Object}
		}
		return nil
	}
}

func dataValues(i, p onto.Entity, kind onto.Kind, onts []ontx.Container) (iter.Seq[onto.Literal], error) {
	if err := checkVariant(i, onto.KindIndividual); err != nil {
		return nil, err
	}
	if err := checkVariant(p, onto.KindDataProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(i, filter[onto.Literal]{kind, literalValueOf(p)}, onts), nil
}

func objectValues(i, p onto.Entity, kind onto.Kind, onts []ontx.Container) (iter.Seq[onto.Entity], error) {
	if err := checkVariant(i, onto.KindIndividual); err != nil {
		return nil, err
	}
	if err := checkVariant(p, onto.KindObjectProperty); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	return query(i, filter[onto.Entity]{kind, objectValueOf(p)}, onts), nil
}

// DataPropertyValues returns the literals asserted for (i, p).
func DataPropertyValues(i, p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Literal], error) {
	return dataValues(i, p, onto.DataPropertyAssertion, onts)
}

// NegativeDataPropertyValues returns the literals negatively asserted for
// (i, p).
func NegativeDataPropertyValues(i, p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Literal], error) {
	return dataValues(i, p, onto.NegativeDataPropertyAssertion, onts)
}

// ObjectPropertyValues returns the individuals asserted as values of (i, p).
func ObjectPropertyValues(i, p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	return objectValues(i, p, onto.ObjectPropertyAssertion, onts)
}

// NegativeObjectPropertyValues returns the individuals negatively asserted
// as values of (i, p).
func NegativeObjectPropertyValues(i, p onto.Entity, onts ...ontx.Container) (iter.Seq[onto.Entity], error) {
	return objectValues(i, p, onto.NegativeObjectPropertyAssertion, onts)
}

// The has-any and has-value checks below are derived from the value
// sequences, never re-implemented against the containers.

func anyOf[T any](seq iter.Seq[T], err error) (bool, error) {
	if err != nil {
		return false, err
	}
	for range seq {
		return true, nil
	}
	return false, nil
}

func containsValue[T comparable](seq iter.Seq[T], err error, want T) (bool, error) {
	if err != nil {
		return false, err
	}
	for v := range seq {
		if v == want {
			return true, nil
		}
	}
	return false, nil
}

// HasDataPropertyValues reports whether (i, p) has at least one asserted
// value.
func HasDataPropertyValues(i, p onto.Entity, onts ...ontx.Container) (bool, error) {
	seq, err := DataPropertyValues(i, p, onts...)
	return anyOf(seq, err)
}

// HasObjectPropertyValues reports whether (i, p) has at least one asserted
// value.
func HasObjectPropertyValues(i, p onto.Entity, onts ...ontx.Container) (bool, error) {
	seq, err := ObjectPropertyValues(i, p, onts...)
	return anyOf(seq, err)
}

// HasNegativeDataPropertyValues reports whether (i, p) has at least one
// negatively asserted value.
func HasNegativeDataPropertyValues(i, p onto.Entity, onts ...ontx.Container) (bool, error) {
	seq, err := NegativeDataPropertyValues(i, p, onts...)
	return anyOf(seq, err)
}

// HasNegativeObjectPropertyValues reports whether (i, p) has at least one
// negatively asserted value.
func HasNegativeObjectPropertyValues(i, p onto.Entity, onts ...ontx.Container) (bool, error) {
	seq, err := NegativeObjectPropertyValues(i, p, onts...)
	return anyOf(seq, err)
}

// HasDataPropertyValue reports whether the literal v is asserted for (i, p).
func HasDataPropertyValue(i, p onto.Entity, v onto.Literal, onts ...ontx.Container) (bool, error) {
	seq, err := DataPropertyValues(i, p, onts...)
	return containsValue(seq, err, v)
}

// HasObjectPropertyValue reports whether the individual v is asserted as a
// value of (i, p).
func HasObjectPropertyValue(i, p, v onto.Entity, onts ...ontx.Container) (bool, error) {
	seq, err := ObjectPropertyValues(i, p, onts...)
	return containsValue(seq, err, v)
}

// HasNegativeDataPropertyValue reports whether the literal v is negatively
// asserted for (i, p).
func HasNegativeDataPropertyValue(i, p onto.Entity, v onto.Literal, onts ...ontx.Container) (bool, error) {
	seq, err := NegativeDataPropertyValues(i, p, onts...)
	return containsValue(seq, err, v)
}

// HasNegativeObjectPropertyValue reports whether the individual v is
// negatively asserted as a value of (i, p).
func HasNegativeObjectPropertyValue(i, p, v onto.Entity, onts ...ontx.Container) (bool, error) {
	seq, err := NegativeObjectPropertyValues(i, p, onts...)
	return containsValue(seq, err, v)
}

// Bulk accessors group every assertion anchored at the individual by its
// property. Insertion order is container order then statement order; two
// identical assertions in one container yield two entries.

func groupLiterals(i onto.Entity, kind onto.Kind, onts []ontx.Container) (*Multimap[onto.Entity, onto.Literal], error) {
	if err := checkVariant(i, onto.KindIndividual); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	m := NewMultimap[onto.Entity, onto.Literal]()
	for _, ont := range onts {
		for s := range ont.StatementsOf(kind, i) {
			if s.Subject == i {
				m.Put(s.Property, s.Value)
			}
		}
	}
	return m, nil
}

func groupObjects(i onto.Entity, kind onto.Kind, onts []ontx.Container) (*Multimap[onto.Entity, onto.Entity], error) {
	if err := checkVariant(i, onto.KindIndividual); err != nil {
		return nil, err
	}
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	m := NewMultimap[onto.Entity, onto.Entity]()
	for _, ont := range onts {
		for s := range ont.StatementsOf(kind, i) {
			if s.Subject == i {
				m.Put(s.Property, s.Object)
			}
		}
	}
	return m, nil
}

// DataPropertyValuesByProperty groups every data property assertion on i by
// property.
func DataPropertyValuesByProperty(i onto.Entity, onts ...ontx.Container) (*Multimap[onto.Entity, onto.Literal], error) {
	return groupLiterals(i, onto.DataPropertyAssertion, onts)
}

// NegativeDataPropertyValuesByProperty groups every negative data property
// assertion on i by property.
func NegativeDataPropertyValuesByProperty(i onto.Entity, onts ...ontx.Container) (*Multimap[onto.Entity, onto.Literal], error) {
	return groupLiterals(i, onto.NegativeDataPropertyAssertion, onts)
}

// ObjectPropertyValuesByProperty groups every object property assertion on
// i by property.
func ObjectPropertyValuesByProperty(i onto.Entity, onts ...ontx.Container) (*Multimap[onto.Entity, onto.Entity], error) {
	return groupObjects(i, onto.ObjectPropertyAssertion, onts)
}

// NegativeObjectPropertyValuesByProperty groups every negative object
// property assertion on i by property.
func NegativeObjectPropertyValuesByProperty(i onto.Entity, onts ...ontx.Container) (*Multimap[onto.Entity, onto.Entity], error) {
	return groupObjects(i, onto.NegativeObjectPropertyAssertion, onts)
}
