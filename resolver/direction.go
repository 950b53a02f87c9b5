package resolver

// Direction indicates whether a schema is being resolved for a request or a
// response payload. It controls readOnly/writeOnly property filtering:
// readOnly properties are dropped from request bodies and writeOnly
// properties are dropped from response bodies.
type Direction int

const (
	// DirectionRequest resolves a schema for a request body.
	DirectionRequest Direction = iota

	// DirectionResponse resolves a schema for a response body.
	DirectionResponse
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionRequest:
		return "request"
	case DirectionResponse:
		return "response"
	default:
		return "unknown"
	}
}
