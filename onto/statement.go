package onto

import (
	"sort"
	"strings"
)

// Kind tags a statement. The set is closed; containers index statements by
// kind and the query layer dispatches on it.
type Kind int

const (
	KindInvalid Kind = iota
	Declaration
	SubClassOf
	EquivalentClasses
	DisjointClasses
	SubObjectPropertyOf
	SubDataPropertyOf
	SubAnnotationPropertyOf
	EquivalentObjectProperties
	EquivalentDataProperties
	DisjointObjectProperties
	DisjointDataProperties
	InverseObjectProperties
	TransitiveObjectProperty
	SymmetricObjectProperty
	AsymmetricObjectProperty
	ReflexiveObjectProperty
	IrreflexiveObjectProperty
	FunctionalObjectProperty
	InverseFunctionalObjectProperty
	FunctionalDataProperty
	ObjectPropertyDomain
	ObjectPropertyRange
	DataPropertyDomain
	DataPropertyRange
	AnnotationPropertyDomain
	AnnotationPropertyRange
	ClassAssertion
	ObjectPropertyAssertion
	NegativeObjectPropertyAssertion
	DataPropertyAssertion
	NegativeDataPropertyAssertion
	AnnotationAssertion
	SameIndividual
	DifferentIndividuals
)

var kindNames = map[Kind]string{
	Declaration:                     "Declaration",
	SubClassOf:                      "SubClassOf",
	EquivalentClasses:               "EquivalentClasses",
	DisjointClasses:                 "DisjointClasses",
	SubObjectPropertyOf:             "SubObjectPropertyOf",
	SubDataPropertyOf:               "SubDataPropertyOf",
	SubAnnotationPropertyOf:         "SubAnnotationPropertyOf",
	EquivalentObjectProperties:      "EquivalentObjectProperties",
	EquivalentDataProperties:        "EquivalentDataProperties",
	DisjointObjectProperties:        "DisjointObjectProperties",
	DisjointDataProperties:          "DisjointDataProperties",
	InverseObjectProperties:         "InverseObjectProperties",
	TransitiveObjectProperty:        "TransitiveObjectProperty",
	SymmetricObjectProperty:         "SymmetricObjectProperty",
	AsymmetricObjectProperty:        "AsymmetricObjectProperty",
	ReflexiveObjectProperty:         "ReflexiveObjectProperty",
	IrreflexiveObjectProperty:       "IrreflexiveObjectProperty",
	FunctionalObjectProperty:        "FunctionalObjectProperty",
	InverseFunctionalObjectProperty: "InverseFunctionalObjectProperty",
	FunctionalDataProperty:          "FunctionalDataProperty",
	ObjectPropertyDomain:            "ObjectPropertyDomain",
	ObjectPropertyRange:             "ObjectPropertyRange",
	DataPropertyDomain:              "DataPropertyDomain",
	DataPropertyRange:               "DataPropertyRange",
	AnnotationPropertyDomain:        "AnnotationPropertyDomain",
	AnnotationPropertyRange:         "AnnotationPropertyRange",
	ClassAssertion:                  "ClassAssertion",
	ObjectPropertyAssertion:         "ObjectPropertyAssertion",
	NegativeObjectPropertyAssertion: "NegativeObjectPropertyAssertion",
	DataPropertyAssertion:           "DataPropertyAssertion",
	NegativeDataPropertyAssertion:   "NegativeDataPropertyAssertion",
	AnnotationAssertion:             "AnnotationAssertion",
	SameIndividual:                  "SameIndividual",
	DifferentIndividuals:            "DifferentIndividuals",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// KindByName resolves a kind from its canonical name. Returns KindInvalid
// for unknown names.
func KindByName(name string) Kind { return kindsByName[name] }

// MatchMode selects how statement equality treats attached annotations.
type MatchMode int

const (
	// MatchExact compares structure and attached annotations.
	MatchExact MatchMode = iota
	// MatchIgnoreAnnotations compares structure only.
	MatchIgnoreAnnotations
)

// ImportsMode selects whether a container-level lookup also walks the
// container's imports closure.
type ImportsMode int

const (
	ImportsExcluded ImportsMode = iota
	ImportsIncluded
)

// Statement is one immutable logical assertion. Which operand fields are
// populated depends on Kind:
//
//	Subject   declaration entity, sub-class/sub-property, assertion subject
//	Object    super-class/super-property, domain/range value, assertion object
//	Property  assertion / characteristic / domain / range property
//	Members   n-ary groups (equivalence, disjointness, same/different, inverses)
//	Value     literal of data and annotation assertions
//	About     bare identifier subject of annotation assertions and
//	          annotation-property domains/ranges
//
// Statements must not be mutated after construction; containers and query
// results share them freely.
type Statement struct {
	Kind        Kind         `json:"kind"`
	Subject     Entity       `json:"subject,omitzero"`
	Object      Entity       `json:"object,omitzero"`
	Property    Entity       `json:"property,omitzero"`
	Members     []Entity     `json:"members,omitempty"`
	Value       Literal      `json:"value,omitzero"`
	About       IRI          `json:"about,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// WithAnnotations returns a copy of s carrying the given annotation set.
func (s *Statement) WithAnnotations(anns ...Annotation) *Statement {
	c := *s
	c.Members = append([]Entity(nil), s.Members...)
	c.Annotations = append([]Annotation(nil), anns...)
	return &c
}

// WithoutAnnotations returns s stripped of attached annotations.
func (s *Statement) WithoutAnnotations() *Statement {
	if len(s.Annotations) == 0 {
		return s
	}
	c := *s
	c.Annotations = nil
	return &c
}

// Signature returns the named entities the statement refers to, with
// composite property expressions reduced to their named property. The bare
// About identifier and annotation internals are not part of the signature.
func (s *Statement) Signature() []Entity {
	var sig []Entity
	add := func(e Entity) {
		if e.IsZero() {
			return
		}
		e.Inverse = false
		sig = append(sig, e)
	}
	add(s.Subject)
	add(s.Object)
	add(s.Property)
	for _, m := range s.Members {
		add(m)
	}
	return sig
}

func entityKey(e Entity) string {
	k := e.Kind.String() + ":" + string(e.IRI)
	if e.Inverse {
		k = "inv(" + k + ")"
	}
	return k
}

func literalKey(l Literal) string {
	return l.Value + "^^" + string(l.Datatype) + "@" + l.Lang
}

// Key returns a canonical representation used for structural equality and
// container-level dedup. Member order is not significant; annotation order
// is.
func (s *Statement) Key(mode MatchMode) string {
	var b strings.Builder
	b.WriteString(s.Kind.String())
	b.WriteByte('|')
	b.WriteString(entityKey(s.Subject))
	b.WriteByte('|')
	b.WriteString(entityKey(s.Object))
	b.WriteByte('|')
	b.WriteString(entityKey(s.Property))
	b.WriteByte('|')
	if len(s.Members) > 0 {
		keys := make([]string, len(s.Members))
		for i, m := range s.Members {
			keys[i] = entityKey(m)
		}
		sort.Strings(keys)
		b.WriteString(strings.Join(keys, ","))
	}
	b.WriteByte('|')
	b.WriteString(literalKey(s.Value))
	b.WriteByte('|')
	b.WriteString(string(s.About))
	if mode == MatchExact {
		for _, a := range s.Annotations {
			b.WriteByte('|')
			b.WriteString(entityKey(a.Property))
			b.WriteByte('=')
			b.WriteString(literalKey(a.Value))
		}
	}
	return b.String()
}

// String renders the statement in a compact functional form.
func (s *Statement) String() string {
	var args []string
	if !s.Property.IsZero() {
		args = append(args, s.Property.String())
	}
	if !s.About.IsEmpty() {
		args = append(args, string(s.About))
	}
	if !s.Subject.IsZero() {
		args = append(args, s.Subject.String())
	}
	if !s.Object.IsZero() {
		args = append(args, s.Object.String())
	}
	for _, m := range s.Members {
		args = append(args, m.String())
	}
	if s.Value != (Literal{}) {
		args = append(args, "\""+s.Value.Value+"\"")
	}
	return s.Kind.String() + "(" + strings.Join(args, " ") + ")"
}

// Equal reports structural equality under the given mode.
func (s *Statement) Equal(o *Statement, mode MatchMode) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Key(mode) == o.Key(mode)
}

// Constructors. Each returns a fresh immutable statement.

// NewDeclaration declares an entity.
func NewDeclaration(e Entity) *Statement {
	return &Statement{Kind: Declaration, Subject: e}
}

// NewSubClassOf asserts sub ⊑ super.
func NewSubClassOf(sub, super Entity) *Statement {
	return &Statement{Kind: SubClassOf, Subject: sub, Object: super}
}

// NewEquivalentClasses groups mutually equivalent classes. The group is
// stored symmetrically: every member anchors the statement.
func NewEquivalentClasses(members ...Entity) *Statement {
	return &Statement{Kind: EquivalentClasses, Members: members}
}

// NewDisjointClasses groups pairwise disjoint classes.
func NewDisjointClasses(members ...Entity) *Statement {
	return &Statement{Kind: DisjointClasses, Members: members}
}

// NewSubPropertyOf asserts sub ⊑ super for object, data or annotation
// properties; the kind follows the sub property's variant.
func NewSubPropertyOf(sub, super Entity) *Statement {
	kind := SubObjectPropertyOf
	switch sub.Kind {
	case KindDataProperty:
		kind = SubDataPropertyOf
	case KindAnnotationProperty:
		kind = SubAnnotationPropertyOf
	}
	return &Statement{Kind: kind, Subject: sub, Object: super}
}

// NewEquivalentProperties groups equivalent object or data properties; the
// kind follows the first member's variant.
func NewEquivalentProperties(members ...Entity) *Statement {
	kind := EquivalentObjectProperties
	if len(members) > 0 && members[0].Kind == KindDataProperty {
		kind = EquivalentDataProperties
	}
	return &Statement{Kind: kind, Members: members}
}

// NewDisjointProperties groups disjoint object or data properties; the kind
// follows the first member's variant.
func NewDisjointProperties(members ...Entity) *Statement {
	kind := DisjointObjectProperties
	if len(members) > 0 && members[0].Kind == KindDataProperty {
		kind = DisjointDataProperties
	}
	return &Statement{Kind: kind, Members: members}
}

// NewInverseObjectProperties asserts that two object properties are inverses.
func NewInverseObjectProperties(first, second Entity) *Statement {
	return &Statement{Kind: InverseObjectProperties, Members: []Entity{first, second}}
}

// NewCharacteristic asserts a property characteristic such as
// TransitiveObjectProperty or FunctionalDataProperty.
func NewCharacteristic(kind Kind, p Entity) *Statement {
	return &Statement{Kind: kind, Property: p}
}

// NewObjectPropertyDomain asserts the domain class of an object property.
func NewObjectPropertyDomain(p, domain Entity) *Statement {
	return &Statement{Kind: ObjectPropertyDomain, Property: p, Object: domain}
}

// NewObjectPropertyRange asserts the range class of an object property.
func NewObjectPropertyRange(p, rng Entity) *Statement {
	return &Statement{Kind: ObjectPropertyRange, Property: p, Object: rng}
}

// NewDataPropertyDomain asserts the domain class of a data property.
func NewDataPropertyDomain(p, domain Entity) *Statement {
	return &Statement{Kind: DataPropertyDomain, Property: p, Object: domain}
}

// NewDataPropertyRange asserts the range datatype of a data property.
func NewDataPropertyRange(p, rng Entity) *Statement {
	return &Statement{Kind: DataPropertyRange, Property: p, Object: rng}
}

// NewAnnotationPropertyDomain asserts the domain of an annotation property.
// Annotation-property domains carry bare identifiers, not expressions.
func NewAnnotationPropertyDomain(p Entity, domain IRI) *Statement {
	return &Statement{Kind: AnnotationPropertyDomain, Property: p, About: domain}
}

// NewAnnotationPropertyRange asserts the range of an annotation property.
func NewAnnotationPropertyRange(p Entity, rng IRI) *Statement {
	return &Statement{Kind: AnnotationPropertyRange, Property: p, About: rng}
}

// NewClassAssertion asserts that an individual is an instance of a class.
func NewClassAssertion(class, individual Entity) *Statement {
	return &Statement{Kind: ClassAssertion, Subject: individual, Object: class}
}

// NewObjectPropertyAssertion relates two individuals through an object
// property.
func NewObjectPropertyAssertion(p, subject, object Entity) *Statement {
	return &Statement{Kind: ObjectPropertyAssertion, Property: p, Subject: subject, Object: object}
}

// NewNegativeObjectPropertyAssertion denies an object property relation.
func NewNegativeObjectPropertyAssertion(p, subject, object Entity) *Statement {
	return &Statement{Kind: NegativeObjectPropertyAssertion, Property: p, Subject: subject, Object: object}
}

// NewDataPropertyAssertion asserts a literal value for an individual's data
// property.
func NewDataPropertyAssertion(p, subject Entity, value Literal) *Statement {
	return &Statement{Kind: DataPropertyAssertion, Property: p, Subject: subject, Value: value}
}

// NewNegativeDataPropertyAssertion denies a literal value for an
// individual's data property.
func NewNegativeDataPropertyAssertion(p, subject Entity, value Literal) *Statement {
	return &Statement{Kind: NegativeDataPropertyAssertion, Property: p, Subject: subject, Value: value}
}

// NewAnnotationAssertion annotates the identifier subject with a property
// and value.
func NewAnnotationAssertion(subject IRI, p Entity, value Literal) *Statement {
	return &Statement{Kind: AnnotationAssertion, About: subject, Property: p, Value: value}
}

// NewSameIndividual groups individuals asserted to denote one thing.
func NewSameIndividual(members ...Entity) *Statement {
	return &Statement{Kind: SameIndividual, Members: members}
}

// NewDifferentIndividuals groups pairwise distinct individuals.
func NewDifferentIndividuals(members ...Entity) *Statement {
	return &Statement{Kind: DifferentIndividuals, Members: members}
}
