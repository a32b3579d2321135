// Package workers runs background jobs of the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import "context"

// Worker is a background job. Run must not block: implementations spawn
// their own goroutine and return. Stop blocks until that goroutine exits.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
