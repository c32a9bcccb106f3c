// Package workers runs the background jobs of the sync service: scheduled
// module syncs and the monitor for artifacts waiting in target directories.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
