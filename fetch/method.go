package fetch

import (
	"net/http"

	"github.com/kbukum/fetchkit/validation"
)

// Method is an HTTP verb. The constants cover the common verbs; any other
// token is sent as-is with body placement.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodHead    Method = http.MethodHead
	MethodDelete  Method = http.MethodDelete
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodPatch   Method = http.MethodPatch
	MethodOptions Method = http.MethodOptions
)

// Placement says where a request's params go.
type Placement int

const (
	// PlacementQuery encodes params into the address.
	PlacementQuery Placement = iota
	// PlacementBody serializes params as the JSON body.
	PlacementBody
)

func (p Placement) String() string {
	if p == PlacementQuery {
		return "query"
	}
	return "body"
}

// ClassifyMethod maps GET, HEAD and DELETE to PlacementQuery and every other
// verb to PlacementBody.
func ClassifyMethod(m Method) Placement {
	switch m {
	case MethodGet, MethodHead, MethodDelete:
		return PlacementQuery
	default:
		return PlacementBody
	}
}

// UsesQuery reports whether m places params in the query string.
func (m Method) UsesQuery() bool {
	return ClassifyMethod(m) == PlacementQuery
}

// Validate fails with INVALID_INPUT when m is empty or not an HTTP token.
func (m Method) Validate() error {
	return validation.Var("method", string(m), "required,http_method")
}

// Valid reports whether Validate passes.
func (m Method) Valid() bool {
	return m.Validate() == nil
}
