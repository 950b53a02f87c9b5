// Package schemock provides schema resolution tools for generating example
// data from OpenAPI Specification (OAS) documents.
//
// schemock takes OpenAPI 3.x schema fragments that may contain $ref
// references, allOf/anyOf/oneOf compositions, and format hints, and produces
// fully dereferenced, depth-bounded "example-ready" schema trees. Every
// primitive leaf in the output carries a placeholder token (such as
// "<integer>" or "<dateTime>") that a downstream fake-data generator replaces
// with randomized sample values.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - resolver: Dereference and collapse schemas into example-ready trees
//   - registry: Load components registries from YAML or JSON documents
//
// Structured errors live in the schemerrors package; only a structurally
// malformed $ref is fatal, everything else degrades to in-band sentinel
// nodes so generation can proceed.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/schemock/schemock
//
// # Quick Start
//
// Resolve a response-body schema against a spec's components:
//
//	import (
//		"github.com/schemock/schemock/registry"
//		"github.com/schemock/schemock/resolver"
//	)
//
//	components, err := registry.FromDocument(specBytes)
//	if err != nil {
//		log.Fatal(err)
//	}
//	resolved, err := resolver.Resolve(schema, resolver.DirectionResponse, components)
//	if err != nil {
//		log.Fatal(err)
//	}
package schemock
