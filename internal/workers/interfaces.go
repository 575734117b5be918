// Package workers runs the periodic background jobs of the course-auth
// server, currently the removal of expired reset codes, reset grants and
// OAuth login states.
package workers

import "context"

// Worker is a background job owned by [Workers]. Run blocks until ctx is
// canceled and must return soon after, since shutdown waits for it.
type Worker interface {
	Run(ctx context.Context)
}
