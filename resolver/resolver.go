package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/schemock/schemock/internal/issues"
	"github.com/schemock/schemock/internal/pathutil"
	"github.com/schemock/schemock/internal/severity"
	"github.com/schemock/schemock/schemerrors"
)

// MaxDepth is the maximum nesting depth allowed during schema resolution.
// The depth counter increments once per recursive call and resolution of a
// branch stops with a sentinel node once the counter exceeds this ceiling.
// There is no cycle detection: circular reference chains and legitimately
// deep schemas are truncated identically.
const MaxDepth = 20

const (
	// tooDeepMessage is the sentinel value emitted when MaxDepth is exceeded
	tooDeepMessage = "too many levels of nesting"
	// noTypeMessage is the sentinel default for schemas with no type and no enum
	noTypeMessage = "schema type not provided"
	// objectToken is the placeholder default for shapeless object schemas
	objectToken = "<object>"
)

// Severity indicates the severity level of a resolution issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about resolution choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy degradations during resolution
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates truncation of part of the output tree
	SeverityCritical = severity.SeverityCritical
)

// Issue represents a single resolution issue or degradation
type Issue = issues.Issue

// Resolver dereferences OpenAPI schema fragments into example-ready trees.
//
// Every $ref is resolved against the components registry, allOf/anyOf/oneOf
// compositions are collapsed to a single concrete shape, and every primitive
// leaf is annotated with a placeholder default token for the downstream
// fake-data generator. The registry is treated as read-only input; resolution
// never mutates it or the schemas it contains.
//
// A Resolver is not safe for concurrent use: issue state accumulates per
// Resolve call. Create one Resolver per goroutine.
type Resolver struct {
	// components is the registry $ref targets are looked up in,
	// e.g. {"schemas": {"Pet": {...}}}
	components map[string]any
	// logger receives structured resolution diagnostics
	logger Logger
	// issues accumulates degradations observed during the current Resolve call
	issues []Issue
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution diagnostics.
// The default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver that resolves references against the given
// components registry.
func New(components map[string]any, opts ...Option) *Resolver {
	r := &Resolver{
		components: components,
		logger:     NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is a convenience function that resolves a single schema against a
// components registry. For resolving multiple schemas against the same
// registry, create a Resolver with New() and reuse it.
func Resolve(schema map[string]any, dir Direction, components map[string]any) (map[string]any, error) {
	return New(components).Resolve(schema, dir)
}

// Resolve returns a fully dereferenced, depth-bounded copy of schema, ready
// for the fake-data generator.
//
// Only a structurally malformed $ref (fewer than 4 path segments) returns an
// error; every other anomaly degrades to an in-band sentinel node and is
// recorded as an issue retrievable via Issues().
func (r *Resolver) Resolve(schema map[string]any, dir Direction) (map[string]any, error) {
	r.issues = nil
	return r.resolveSchema(schema, dir, 0, "$")
}

// Issues returns the degradations observed during the most recent Resolve call.
func (r *Resolver) Issues() []Issue {
	return r.issues
}

// WarningCount returns the number of warning-level issues from the most
// recent Resolve call.
func (r *Resolver) WarningCount() int {
	_, warnings, _ := issues.CountBySeverity(r.issues)
	return warnings
}

// CriticalCount returns the number of critical-level issues from the most
// recent Resolve call.
func (r *Resolver) CriticalCount() int {
	_, _, criticals := issues.CountBySeverity(r.issues)
	return criticals
}

// resolveSchema is the recursive core. Branches are evaluated in a fixed
// priority order: anyOf, oneOf, allOf, $ref, object, array, primitive leaf.
// The depth counter increments once per call; $ref targets are resolved at
// the caller's counter so circular chains stay bounded by MaxDepth.
func (r *Resolver) resolveSchema(schema map[string]any, dir Direction, depth int, path string) (map[string]any, error) {
	depth++
	if depth > MaxDepth {
		r.record(SeverityCritical, path, tooDeepMessage, "")
		r.logger.Warn("nesting depth ceiling exceeded", "path", path, "depth", depth)
		return map[string]any{"value": tooDeepMessage}, nil
	}

	// Composition keywords collapse to their first variant; later anyOf/oneOf
	// branches are never materialized.
	if first, ok := firstVariant(schema, "anyOf"); ok {
		r.logger.Debug("picking first anyOf variant", "path", path)
		return r.resolveValue(first, dir, depth, path+".anyOf[0]")
	}
	if first, ok := firstVariant(schema, "oneOf"); ok {
		r.logger.Debug("picking first oneOf variant", "path", path)
		return r.resolveValue(first, dir, depth, path+".oneOf[0]")
	}
	if raw, ok := schema["allOf"]; ok {
		variants, ok := raw.([]any)
		if !ok {
			r.record(SeverityWarning, path, "allOf is not a list of schemas", "")
			return nil, nil
		}
		return r.mergeAllOf(variants, dir, depth, path)
	}

	if ref, ok := schema["$ref"].(string); ok {
		return r.resolveRef(ref, dir, depth, path)
	}

	typ, _ := schema["type"].(string)
	rawProps, hasProps := schema["properties"]

	if typ == "object" || hasProps {
		if props, ok := rawProps.(map[string]any); ok {
			return r.resolveObject(schema, props, dir, depth, path)
		}
		// A bare object schema with no properties carries no shape the
		// generator could fill in; collapse it to a placeholder leaf.
		r.record(SeverityInfo, path, "shapeless object schema collapsed to placeholder", "")
		out := clone(schema)
		out["type"] = "string"
		out["default"] = objectToken
		return out, nil
	}

	if typ == "array" {
		if items, ok := schema["items"].(map[string]any); ok {
			return r.resolveArray(schema, items, dir, depth, path)
		}
	}

	return r.resolveLeaf(schema, typ, path)
}

// resolveRef dereferences a local $ref against the components registry.
// A well-formed reference like "#/components/schemas/Pet" splits into at
// least 4 segments; the lookup skips the "#" and "components" markers.
func (r *Resolver) resolveRef(ref string, dir Direction, depth int, path string) (map[string]any, error) {
	segs := strings.Split(ref, "/")
	if len(segs) < 4 {
		return nil, &schemerrors.InvalidReferenceError{
			Ref:     ref,
			Message: "expected at least 4 path segments",
		}
	}

	r.logger.Debug("resolving $ref", "ref", ref, "depth", depth)
	target := pathutil.Lookup(r.components, segs[2:], nil)
	node, ok := target.(map[string]any)
	if !ok {
		r.record(SeverityWarning, path, "reference not found in the api spec", ref)
		r.logger.Warn("unresolved reference", "ref", ref, "path", path)
		return map[string]any{
			"value": fmt.Sprintf("reference %s not found in the api spec", ref),
		}, nil
	}

	// Same depth counter: each ref hop costs one level, which keeps circular
	// reference chains bounded without tracking visited refs.
	return r.resolveSchema(node, dir, depth, path)
}

// resolveObject builds a new object node with every surviving property
// resolved. Properties are dropped when readOnly in a request body or
// writeOnly in a response body.
func (r *Resolver) resolveObject(schema, props map[string]any, dir Direction, depth int, path string) (map[string]any, error) {
	out := clone(schema, "properties")
	out["type"] = "object"

	resolved := make(map[string]any, len(props))
	for name, rawProp := range props {
		if prop, ok := rawProp.(map[string]any); ok {
			if dir == DirectionRequest && boolField(prop, "readOnly") {
				r.logger.Debug("dropping readOnly property from request body", "property", name, "path", path)
				continue
			}
			if dir == DirectionResponse && boolField(prop, "writeOnly") {
				r.logger.Debug("dropping writeOnly property from response body", "property", name, "path", path)
				continue
			}
		}
		rp, err := r.resolveValue(rawProp, dir, depth, path+".properties."+name)
		if err != nil {
			return nil, err
		}
		resolved[name] = rp
	}
	out["properties"] = resolved
	return out, nil
}

// resolveArray builds a new array node with resolved items and bounds forced
// to exactly two elements, so even self-referential item schemas produce a
// deterministic, non-empty example array.
func (r *Resolver) resolveArray(schema, items map[string]any, dir Direction, depth int, path string) (map[string]any, error) {
	out := clone(schema, "items")
	out["minItems"] = 2
	out["maxItems"] = 2

	resolvedItems, err := r.resolveSchema(items, dir, depth, path+".items")
	if err != nil {
		return nil, err
	}
	out["items"] = resolvedItems
	return out, nil
}

// resolveLeaf annotates a primitive leaf with a placeholder default.
// A leaf that already carries a default is returned unchanged, which makes
// resolution idempotent on fully-resolved nodes.
func (r *Resolver) resolveLeaf(schema map[string]any, typ, path string) (map[string]any, error) {
	if _, ok := schema["default"]; ok {
		return clone(schema), nil
	}

	if typ != "" {
		out := clone(schema, "format")
		format, _ := schema["format"].(string)
		out["default"] = placeholderFor(typ, format)
		return out, nil
	}

	if enum, ok := schema["enum"].([]any); ok && len(enum) > 0 {
		return map[string]any{
			"type":  jsonTypeOf(enum[0]),
			"value": enum[0],
		}, nil
	}

	r.record(SeverityWarning, path, noTypeMessage, "")
	return map[string]any{
		"type":    "string",
		"default": noTypeMessage,
	}, nil
}

// resolveValue resolves an arbitrary value expected to be a schema node.
// Non-map values cannot describe a shape and degrade to the untyped sentinel.
func (r *Resolver) resolveValue(v any, dir Direction, depth int, path string) (map[string]any, error) {
	if schema, ok := v.(map[string]any); ok {
		return r.resolveSchema(schema, dir, depth, path)
	}
	r.record(SeverityWarning, path, "expected a schema node", "")
	return map[string]any{
		"type":    "string",
		"default": noTypeMessage,
	}, nil
}

// record appends an issue observed during the current Resolve call.
func (r *Resolver) record(sev Severity, path, msg, ref string) {
	r.issues = append(r.issues, Issue{
		Path:     path,
		Message:  msg,
		Severity: sev,
		Ref:      ref,
	})
}

// firstVariant returns the first element of a non-empty composition list
// stored under key, e.g. anyOf or oneOf.
func firstVariant(schema map[string]any, key string) (any, bool) {
	variants, ok := schema[key].([]any)
	if !ok || len(variants) == 0 {
		return nil, false
	}
	return variants[0], true
}

// clone shallow-copies a schema node, omitting the skipped keys. Nested
// values that the caller replaces wholesale (properties, items, format) are
// skipped so the originals in the registry are never touched.
func clone(schema map[string]any, skip ...string) map[string]any {
	out := make(map[string]any, len(schema))
	for k, v := range schema {
		if slices.Contains(skip, k) {
			continue
		}
		out[k] = v
	}
	return out
}

// boolField reads a boolean schema field, treating absent or non-boolean
// values as false.
func boolField(schema map[string]any, key string) bool {
	b, _ := schema[key].(bool)
	return b
}

// jsonTypeOf maps a decoded scalar to its JSON schema type name. YAML
// decoding yields int for integral numbers while JSON decoding yields
// float64, so both families are covered.
func jsonTypeOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	default:
		return "string"
	}
}
