// Package component defines lifecycle-managed infrastructure pieces and a
// Registry that starts them in order and stops them in reverse.
package component
