package resolver

// placeholderFormats maps a schema type to the example tokens registered for
// its formats. The table is static configuration consumed by the resolver:
// the downstream fake-data generator recognizes these tokens and replaces
// them with generated sample values.
//
// A type listed here with a format that has no entry falls back to the
// "<format>" token; a type not listed here at all falls back to
// "<type-format>" (or "<type>" when no format is given). The boolean entry
// is flat: booleans have no format dimension.
var placeholderFormats = map[string]map[string]string{
	"string": {
		"date-time": "<dateTime>",
		"date":      "<date>",
	},
	"integer": {
		"int32": "<integer>",
		"int64": "<integer>",
	},
	"number": {
		"float":  "<number>",
		"double": "<number>",
	},
	"boolean": {},
}

// placeholderFor returns the example token for a (type, format) pair.
// A schema without a format always yields the bare "<type>" token.
func placeholderFor(typ, format string) string {
	if format == "" {
		return "<" + typ + ">"
	}
	formats, knownType := placeholderFormats[typ]
	if !knownType {
		return "<" + typ + "-" + format + ">"
	}
	if token, ok := formats[format]; ok && token != "" {
		return token
	}
	return "<" + format + ">"
}
