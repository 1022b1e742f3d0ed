// Package validation provides input validation for request arguments and
// component configuration.
//
// Struct tag validation uses the validator library, extended with HTTP
// specific tags:
//
//	type Credential struct {
//	    HeaderName  string `validate:"required,header_name"`
//	    HeaderValue string `validate:"header_value"`
//	}
//	err := validation.Validate(cred)
//
// Single values are checked with Var:
//
//	err := validation.Var("method", "PROPFIND", "required,http_method")
//
// Programmatic validation collects errors before producing one AppError:
//
//	v := validation.New()
//	v.Check(timeout > 0, "timeout", "must be positive")
//	err := v.Validate()
package validation
