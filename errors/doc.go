// Package errors provides the structured application error used for
// failures detected before a request leaves the process: bad configuration,
// malformed credentials, invalid request arguments.
package errors
