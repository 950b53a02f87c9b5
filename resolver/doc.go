// Package resolver dereferences OpenAPI 3.x schema fragments into
// example-ready schema trees.
//
// The resolver takes a raw schema that may contain $ref references,
// allOf/anyOf/oneOf compositions, and format hints, and produces a fully
// dereferenced tree: every reference resolved against a components registry,
// every composition collapsed to a single concrete shape, and every primitive
// leaf annotated with a placeholder default token (such as "<integer>" or
// "<dateTime>") for a downstream fake-data generator.
//
// # Quick Start
//
//	components, err := registry.FromDocument(specBytes)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := resolver.New(components)
//	resolved, err := r.Resolve(schema, resolver.DirectionResponse)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range r.Issues() {
//		fmt.Println(issue)
//	}
//
// # Resolution Semantics
//
// Branches are evaluated in a fixed priority order: anyOf and oneOf collapse
// to their first variant, allOf merges its object variants first-write-wins,
// $ref dereferences against the registry, object properties are filtered by
// body direction (readOnly dropped from requests, writeOnly from responses),
// and arrays are bounded to exactly two example items.
//
// Recursion depth is capped at MaxDepth levels with no cycle detection:
// circular reference chains and legitimately deep schemas truncate
// identically to a sentinel node. Besides the depth cap, every anomaly other
// than a structurally malformed $ref degrades to an in-band sentinel value so
// generation downstream can still proceed.
package resolver
