package fetch

import (
	"net/http"

	"github.com/kbukum/fetchkit/validation"
)

// Credential is the one header a request may carry on top of the fixed
// JSON headers, e.g. Authorization: Bearer <token>.
type Credential struct {
	HeaderName  string `json:"header_name" validate:"required,header_name"`
	HeaderValue string `json:"header_value" validate:"header_value"`
}

// Validate checks that the pair is a legal HTTP header.
func (c *Credential) Validate() error {
	return validation.Validate(c)
}

// apply sets the credential on h, replacing any value with the same
// canonical key.
func (c *Credential) apply(h http.Header) {
	h.Set(c.HeaderName, c.HeaderValue)
}
