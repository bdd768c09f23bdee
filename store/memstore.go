// Package store ships the reference statement-store collaborators: an
// in-memory container, a SQLite-backed container, the statement factory and
// a JSON snapshot codec. Both containers satisfy ontx.MutableContainer.
package store

import (
	"iter"
	"slices"

	"github.com/ontx/ontx"
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
)

// MemStore is an in-memory statement container. Statements are kept in
// insertion order and indexed per kind and per anchor identifier so the
// query layer gets pre-filtered sequences. A MemStore never holds two
// statements that are structurally equal with annotations considered.
//
// MemStore is not safe for concurrent use. Mutating it while one of its
// lazy sequences is being consumed is undefined; consume or materialize
// first.
type MemStore struct {
	statements []*onto.Statement
	byKey      map[string]*onto.Statement
	byLooseKey map[string][]*onto.Statement
	byAnchor   map[onto.Kind]map[onto.IRI][]*onto.Statement
	sigCount   map[onto.Entity]int
	sigOrder   []onto.Entity
	imports    []ontx.Container
}

// NewMemStore returns an empty container.
func NewMemStore() *MemStore {
	return &MemStore{
		byKey:      make(map[string]*onto.Statement),
		byLooseKey: make(map[string][]*onto.Statement),
		byAnchor:   make(map[onto.Kind]map[onto.IRI][]*onto.Statement),
		sigCount:   make(map[onto.Entity]int),
	}
}

// SetImports sets the container's imports closure. The caller supplies the
// full traversal set; the store does not walk it transitively.
func (m *MemStore) SetImports(imports ...ontx.Container) {
	m.imports = imports
}

// anchorIRIs returns the identifiers a statement is indexed under: every
// signature entity plus the bare About identifier.
func anchorIRIs(s *onto.Statement) []onto.IRI {
	var iris []onto.IRI
	seen := make(map[onto.IRI]bool)
	add := func(iri onto.IRI) {
		if !iri.IsEmpty() && !seen[iri] {
			seen[iri] = true
			iris = append(iris, iri)
		}
	}
	for _, e := range s.Signature() {
		add(e.IRI)
	}
	add(s.About)
	return iris
}

// AddStatement inserts s. Adding a statement structurally equal to one
// already present (annotations considered) is a no-op.
func (m *MemStore) AddStatement(s *onto.Statement) error {
	if s == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "statement must not be nil")
	}
	key := s.Key(onto.MatchExact)
	if _, ok := m.byKey[key]; ok {
		return nil
	}
	m.statements = append(m.statements, s)
	m.byKey[key] = s
	loose := s.Key(onto.MatchIgnoreAnnotations)
	m.byLooseKey[loose] = append(m.byLooseKey[loose], s)
	for _, iri := range anchorIRIs(s) {
		perKind, ok := m.byAnchor[s.Kind]
		if !ok {
			perKind = make(map[onto.IRI][]*onto.Statement)
			m.byAnchor[s.Kind] = perKind
		}
		perKind[iri] = append(perKind[iri], s)
	}
	for _, e := range s.Signature() {
		if m.sigCount[e] == 0 {
			m.sigOrder = append(m.sigOrder, e)
		}
		m.sigCount[e]++
	}
	return nil
}

// RemoveStatement deletes the statement structurally equal to s with
// annotations considered. Removing an absent statement is a no-op; planned
// removals may overlap and the script must still apply cleanly.
func (m *MemStore) RemoveStatement(s *onto.Statement) error {
	if s == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "statement must not be nil")
	}
	key := s.Key(onto.MatchExact)
	stored, ok := m.byKey[key]
	if !ok {
		return nil
	}
	delete(m.byKey, key)
	m.statements = slices.DeleteFunc(m.statements, func(c *onto.Statement) bool { return c == stored })
	loose := stored.Key(onto.MatchIgnoreAnnotations)
	m.byLooseKey[loose] = slices.DeleteFunc(m.byLooseKey[loose], func(c *onto.Statement) bool { return c == stored })
	if len(m.byLooseKey[loose]) == 0 {
		delete(m.byLooseKey, loose)
	}
	for _, iri := range anchorIRIs(stored) {
		perKind := m.byAnchor[stored.Kind]
		perKind[iri] = slices.DeleteFunc(perKind[iri], func(c *onto.Statement) bool { return c == stored })
		if len(perKind[iri]) == 0 {
			delete(perKind, iri)
		}
	}
	for _, e := range stored.Signature() {
		m.sigCount[e]--
		if m.sigCount[e] == 0 {
			delete(m.sigCount, e)
			m.sigOrder = slices.DeleteFunc(m.sigOrder, func(c onto.Entity) bool { return c == e })
		}
	}
	return nil
}

// Len returns the number of stored statements.
func (m *MemStore) Len() int { return len(m.statements) }

// AllStatements returns every stored statement in insertion order.
func (m *MemStore) AllStatements() iter.Seq[*onto.Statement] {
	return func(yield func(*onto.Statement) bool) {
		for _, s := range m.statements {
			if !yield(s) {
				return
			}
		}
	}
}

// StatementsOf returns the statements of the given kind indexed under the
// anchor's identifier.
func (m *MemStore) StatementsOf(kind onto.Kind, anchor onto.Entity) iter.Seq[*onto.Statement] {
	return func(yield func(*onto.Statement) bool) {
		perKind, ok := m.byAnchor[kind]
		if !ok {
			return
		}
		for _, s := range perKind[anchor.IRI] {
			if !yield(s) {
				return
			}
		}
	}
}

// SignatureIndividuals returns the identifiers of referenced individuals in
// first-reference order.
func (m *MemStore) SignatureIndividuals() iter.Seq[onto.IRI] {
	return func(yield func(onto.IRI) bool) {
		for _, e := range m.sigOrder {
			if e.Kind == onto.KindIndividual {
				if !yield(e.IRI) {
					return
				}
			}
		}
	}
}

// ContainsClass reports whether the signature contains a class with the
// given identifier.
func (m *MemStore) ContainsClass(iri onto.IRI) bool {
	return m.sigCount[onto.Class(iri)] > 0
}

// ReferencingStatements returns every statement whose signature contains e,
// walking the imports closure when requested.
func (m *MemStore) ReferencingStatements(e onto.Entity, imports onto.ImportsMode) iter.Seq[*onto.Statement] {
	return func(yield func(*onto.Statement) bool) {
		for _, s := range m.statements {
			if slices.Contains(s.Signature(), e) {
				if !yield(s) {
					return
				}
			}
		}
		if imports != onto.ImportsIncluded {
			return
		}
		for _, imp := range m.imports {
			for s := range imp.ReferencingStatements(e, onto.ImportsExcluded) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// ContainsStatement reports whether a structurally equal statement is
// present under the given modes.
func (m *MemStore) ContainsStatement(s *onto.Statement, imports onto.ImportsMode, mode onto.MatchMode) bool {
	if mode == onto.MatchExact {
		if _, ok := m.byKey[s.Key(onto.MatchExact)]; ok {
			return true
		}
	} else if len(m.byLooseKey[s.Key(onto.MatchIgnoreAnnotations)]) > 0 {
		return true
	}
	if imports != onto.ImportsIncluded {
		return false
	}
	for _, imp := range m.imports {
		if imp.ContainsStatement(s, onto.ImportsExcluded, mode) {
			return true
		}
	}
	return false
}

// MatchingStatements returns the stored statements structurally equal to s
// ignoring annotations.
func (m *MemStore) MatchingStatements(s *onto.Statement, imports onto.ImportsMode) iter.Seq[*onto.Statement] {
	return func(yield func(*onto.Statement) bool) {
		for _, c := range m.byLooseKey[s.Key(onto.MatchIgnoreAnnotations)] {
			if !yield(c) {
				return
			}
		}
		if imports != onto.ImportsIncluded {
			return
		}
		for _, imp := range m.imports {
			for c := range imp.MatchingStatements(s, onto.ImportsExcluded) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
