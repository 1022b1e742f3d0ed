package provider

import "context"

// Closeable is optionally implemented by providers that hold resources
// requiring explicit cleanup (idle connections, exporters).
type Closeable interface {
	Close(ctx context.Context) error
}
