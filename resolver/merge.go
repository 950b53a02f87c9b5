package resolver

import "fmt"

// mergeAllOf collapses the variants of an allOf composition into a single
// object schema.
//
// A single-variant allOf delegates straight to schema resolution with no
// object-type restriction. With multiple variants, each is resolved first and
// any variant that does not resolve to an object is dropped: a bare string
// constraint inside allOf contributes nothing the property merge could keep.
// Properties merge first-write-wins across variants in their original order,
// and the first non-empty description encountered is kept.
func (r *Resolver) mergeAllOf(variants []any, dir Direction, depth int, path string) (map[string]any, error) {
	if len(variants) == 1 {
		return r.resolveValue(variants[0], dir, depth, path+".allOf[0]")
	}

	props := make(map[string]any)
	merged := map[string]any{
		"type":       "object",
		"properties": props,
	}

	for i, raw := range variants {
		variantPath := fmt.Sprintf("%s.allOf[%d]", path, i)

		variant, ok := raw.(map[string]any)
		if !ok {
			r.record(SeverityWarning, variantPath, "allOf variant is not a schema node", "")
			continue
		}

		resolved, err := r.resolveSchema(variant, dir, depth, variantPath)
		if err != nil {
			return nil, err
		}
		if typ, _ := resolved["type"].(string); typ != "object" {
			r.record(SeverityWarning, variantPath, "dropping non-object allOf variant", "")
			r.logger.Debug("dropping non-object allOf variant", "path", variantPath, "type", resolved["type"])
			continue
		}

		if _, ok := merged["description"]; !ok {
			if desc, _ := resolved["description"].(string); desc != "" {
				merged["description"] = desc
			}
		}

		variantProps, _ := resolved["properties"].(map[string]any)
		for name, def := range variantProps {
			if _, exists := props[name]; !exists {
				props[name] = def
			}
		}
	}

	return merged, nil
}
