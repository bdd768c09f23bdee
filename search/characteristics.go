package search

import (
	"github.com/ontx/ontx"
	"github.com/ontx/ontx/onto"
)

// Characteristic predicates are existence checks: true iff at least one
// matching statement anchored at the property exists in any of the given
// containers. Zero qualifying statements is false, never an error.

func objectCharacteristic(p onto.Entity, kind onto.Kind, onts []ontx.Container) (bool, error) {
	if err := checkVariant(p, onto.KindObjectProperty); err != nil {
		return false, err
	}
	if err := checkContainers(onts); err != nil {
		return false, err
	}
	return exists(p, filter[struct{}]{kind, characteristicOf}, onts), nil
}

// IsTransitive reports whether p is asserted transitive.
func IsTransitive(p onto.Entity, onts ...ontx.Container) (bool, error) {
	return objectCharacteristic(p, onto.TransitiveObjectProperty, onts)
}

// IsSymmetric reports whether p is asserted symmetric.
func IsSymmetric(p onto.Entity, onts ...ontx.Container) (bool, error) {
	return objectCharacteristic(p, onto.SymmetricObjectProperty, onts)
}

// IsAsymmetric reports whether p is asserted asymmetric.
func IsAsymmetric(p onto.Entity, onts ...ontx.Container) (bool, error) {
	return objectCharacteristic(p, onto.AsymmetricObjectProperty, onts)
}

// IsReflexive reports whether p is asserted reflexive.
func IsReflexive(p onto.Entity, onts ...ontx.Container) (bool, error) {
	return objectCharacteristic(p, onto.ReflexiveObjectProperty, onts)
}

// IsIrreflexive reports whether p is asserted irreflexive.
func IsIrreflexive(p onto.Entity, onts ...ontx.Container) (bool, error) {
	return objectCharacteristic(p, onto.IrreflexiveObjectProperty, onts)
}

// IsInverseFunctional reports whether p is asserted inverse-functional.
func IsInverseFunctional(p onto.Entity, onts ...ontx.Container) (bool, error) {
	return objectCharacteristic(p, onto.InverseFunctionalObjectProperty, onts)
}

// IsFunctional reports whether p is asserted functional. The statement kind
// follows p's variant: object or data property.
func IsFunctional(p onto.Entity, onts ...ontx.Container) (bool, error) {
	if err := checkVariant(p, onto.KindObjectProperty, onto.KindDataProperty); err != nil {
		return false, err
	}
	if err := checkContainers(onts); err != nil {
		return false, err
	}
	kind := onto.FunctionalObjectProperty
	if p.Kind == onto.KindDataProperty {
		kind = onto.FunctionalDataProperty
	}
	return exists(p, filter[struct{}]{kind, characteristicOf}, onts), nil
}

// IsDefined reports whether the class c participates in any equivalence
// group, i.e. has a definition.
func IsDefined(c onto.Entity, onts ...ontx.Container) (bool, error) {
	if err := checkVariant(c, onto.KindClass); err != nil {
		return false, err
	}
	if err := checkContainers(onts); err != nil {
		return false, err
	}
	return exists(c, filter[onto.Entity]{onto.EquivalentClasses, groupAll}, onts), nil
}
