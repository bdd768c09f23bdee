// Package ontx (Ontology Type System) is a query facade over containers of
// typed logical statements, plus a change planner that rewrites identifier
// punning into annotations.
//
// # Overview
//
// ONTX models a corpus of statements (axioms) about named entities: classes,
// object/data/annotation properties and individuals. Statements live in
// containers; the query layer never looks inside a container's storage, it
// only consumes the per-kind, per-anchor-entity sequences the Container
// contract exposes.
//
// # Core Concepts
//
// Statements (onto.Statement) are immutable, kind-tagged assertions:
//   - Declarations and class/property hierarchy statements
//   - Equivalence and disjointness groups, stored symmetrically
//   - Property characteristics (transitive, functional, ...)
//   - Domains and ranges
//   - Class, property and annotation assertions about individuals
//
// # Query System (search)
//
//   - Per-relation accessors for every entity variant, single- or
//     multi-container, returned as lazy sequences
//   - Multi-container results are order-preserving concatenations with no
//     dedup and no merge semantics
//   - Boolean characteristic checks and containment checks (imports closure
//     and annotation sensitivity combine independently)
//   - Bulk property-value grouping into ordered, duplicate-preserving
//     multimaps
//
// # Punning Repair (punning)
//
// An individual punned by a class with the same identifier can simulate
// class annotations through data property assertions. The planner converts
// those assertions into annotation assertions and erases the individual
// facet, emitting one ordered, snapshot-consistent change script. Applying
// the script is the caller's responsibility; see Apply for the reference
// executor.
//
// # Usage Example
//
//	import (
//	    "github.com/ontx/ontx"
//	    "github.com/ontx/ontx/onto"
//	    "github.com/ontx/ontx/punning"
//	    "github.com/ontx/ontx/search"
//	    "github.com/ontx/ontx/store"
//	)
//
//	ont := store.NewMemStore()
//	_ = ont.AddStatement(onto.NewSubClassOf(onto.Class("ex:Dog"), onto.Class("ex:Animal")))
//
//	supers, _ := search.SuperClasses(onto.Class("ex:Dog"), ont)
//	for super := range supers {
//	    fmt.Println(super)
//	}
//
//	planner, _ := punning.NewPlanner(store.Factory{}, []ontx.Container{ont})
//	_ = ontx.Apply(planner.Changes())
//
// # Extensibility
//
// The statement store is pluggable: anything implementing Container can be
// queried, anything implementing MutableContainer can receive change
// scripts. The store package ships an in-memory and a SQLite-backed
// implementation.
package ontx
