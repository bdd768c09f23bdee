package ontx

import (
	"iter"

	"github.com/ontx/ontx/onto"
)

// Container is the read contract a statement store exposes to the query
// layer. Implementations own storage and indexing; the query layer only
// consumes the sequences returned here. Sequences are lazy and restartable;
// mutating a container while one of its sequences is being consumed is
// undefined.
type Container interface {
	// StatementsOf returns the statements of the given kind whose signature
	// contains anchor. The sequence may be broader than one anchor position;
	// the query layer's filters narrow it.
	StatementsOf(kind onto.Kind, anchor onto.Entity) iter.Seq[*onto.Statement]

	// SignatureIndividuals returns the identifiers of every individual
	// referenced by the container's statements.
	SignatureIndividuals() iter.Seq[onto.IRI]

	// ContainsClass reports whether the container's signature declares or
	// references a class with the given identifier.
	ContainsClass(iri onto.IRI) bool

	// ReferencingStatements returns every statement whose signature contains
	// e, optionally walking the container's imports closure.
	ReferencingStatements(e onto.Entity, imports onto.ImportsMode) iter.Seq[*onto.Statement]

	// ContainsStatement reports whether a structurally equal statement is
	// present, under the given imports and match modes.
	ContainsStatement(s *onto.Statement, imports onto.ImportsMode, mode onto.MatchMode) bool

	// MatchingStatements returns the statements structurally equal to s
	// ignoring annotations, under the given imports mode.
	MatchingStatements(s *onto.Statement, imports onto.ImportsMode) iter.Seq[*onto.Statement]
}

// MutableContainer extends Container with the mutation surface change
// scripts are applied against. RemoveStatement of an absent statement is a
// no-op, not an error; planned removals may race caller-side edits and the
// script must still apply cleanly.
type MutableContainer interface {
	Container

	AddStatement(s *onto.Statement) error
	RemoveStatement(s *onto.Statement) error
}

// StatementFactory builds the statements a change planner emits. Provided
// by the statement-store collaborator so stores can intern or decorate
// statements as they see fit.
type StatementFactory interface {
	// AnnotationAssertion builds an annotation assertion on the subject
	// identifier.
	AnnotationAssertion(subject onto.IRI, property onto.IRI, value onto.Literal) *onto.Statement

	// Annotation builds a bare annotation value.
	Annotation(property onto.IRI, value onto.Literal) onto.Annotation
}
