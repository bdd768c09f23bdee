// Package punning detects individuals that pun a class identifier and
// plans the change script that rewrites their data property assertions into
// annotations.
package punning

import (
	"github.com/ontx/ontx"
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
)

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

// PunnedIndividuals returns the individuals whose identifier collides with
// a class declared in any of the given containers. The union of individual
// identifiers is walked in container order, first occurrence wins.
func PunnedIndividuals(onts ...ontx.Container) ([]onto.Entity, error) {
	if err := checkContainers(onts); err != nil {
		return nil, err
	}
	seen := make(map[onto.IRI]bool)
	var punned []onto.Entity
	for _, ont := range onts {
		for iri := range ont.SignatureIndividuals() {
			if seen[iri] {
				continue
			}
			seen[iri] = true
			for _, other := range onts {
				if other.ContainsClass(iri) {
					punned = append(punned, onto.Individual(iri))
					break
				}
			}
		}
	}
	return punned, nil
}
