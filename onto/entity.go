package onto

// IRI identifies an entity. IRIs are opaque strings; the model never parses
// or normalizes them.
type IRI string

func (i IRI) String() string { return string(i) }

// IsEmpty reports whether the IRI is the zero value.
func (i IRI) IsEmpty() bool { return i == "" }

// EntityKind tags the variant of an Entity.
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindClass
	KindObjectProperty
	KindDataProperty
	KindAnnotationProperty
	KindIndividual
	KindDatatype
)

var entityKindNames = map[EntityKind]string{
	KindUnknown:            "unknown",
	KindClass:              "class",
	KindObjectProperty:     "object_property",
	KindDataProperty:       "data_property",
	KindAnnotationProperty: "annotation_property",
	KindIndividual:         "individual",
	KindDatatype:           "datatype",
}

func (k EntityKind) String() string {
	if name, ok := entityKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Entity is a tagged, comparable reference to a named ontology entity.
// Object and data properties may additionally be inverse-of expressions;
// such composite properties carry the wrapped property's IRI with the
// Inverse flag set and are treated as opaque comparable values.
type Entity struct {
	Kind    EntityKind `json:"kind"`
	IRI     IRI        `json:"iri"`
	Inverse bool       `json:"inverse,omitempty"`
}

// Class returns a class entity.
func Class(iri IRI) Entity { return Entity{Kind: KindClass, IRI: iri} }

// ObjectProperty returns a named object property entity.
func ObjectProperty(iri IRI) Entity { return Entity{Kind: KindObjectProperty, IRI: iri} }

// ObjectInverseOf returns the inverse-of expression wrapping a named object
// property.
func ObjectInverseOf(iri IRI) Entity {
	return Entity{Kind: KindObjectProperty, IRI: iri, Inverse: true}
}

// DataProperty returns a named data property entity.
func DataProperty(iri IRI) Entity { return Entity{Kind: KindDataProperty, IRI: iri} }

// AnnotationProperty returns an annotation property entity.
func AnnotationProperty(iri IRI) Entity { return Entity{Kind: KindAnnotationProperty, IRI: iri} }

// Individual returns a named individual entity.
func Individual(iri IRI) Entity { return Entity{Kind: KindIndividual, IRI: iri} }

// Datatype returns a datatype entity.
func Datatype(iri IRI) Entity { return Entity{Kind: KindDatatype, IRI: iri} }

// IsZero reports whether the entity is the zero value.
func (e Entity) IsZero() bool { return e.Kind == KindUnknown && e.IRI.IsEmpty() }

// IsAnonymous reports whether the entity is a composite property expression
// rather than a named entity.
func (e Entity) IsAnonymous() bool { return e.Inverse }

func (e Entity) String() string {
	if e.Inverse {
		return "InverseOf(" + string(e.IRI) + ")"
	}
	return string(e.IRI)
}

// Literal is a typed data value. Datatype and Lang are optional.
type Literal struct {
	Value    string `json:"value"`
	Datatype IRI    `json:"datatype,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

// StringLiteral returns a plain literal with no datatype or language tag.
func StringLiteral(v string) Literal { return Literal{Value: v} }

func (l Literal) String() string { return l.Value }

// Annotation pairs an annotation property with a literal value. Annotations
// appear attached to statements and as the payload of annotation assertions.
type Annotation struct {
	Property Entity  `json:"property"`
	Value    Literal `json:"value"`
}
