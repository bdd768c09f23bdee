package store

import (
	"github.com/ontx/ontx/onto"
)

// Factory is the reference ontx.StatementFactory. It builds plain model
// statements with no interning.
type Factory struct{}

// AnnotationAssertion builds an annotation assertion on the subject
// identifier, treating the property identifier as an annotation property.
func (Factory) AnnotationAssertion(subject, property onto.IRI, value onto.Literal) *onto.Statement {
	return onto.NewAnnotationAssertion(subject, onto.AnnotationProperty(property), value)
}

// Annotation builds a bare annotation value.
func (Factory) Annotation(property onto.IRI, value onto.Literal) onto.Annotation {
	return onto.Annotation{Property: onto.AnnotationProperty(property), Value: value}
}
