package domain

import "context"

// TaskRunner runs work after the caller has moved on. Go must not block;
// the task outcome is observable only through logs.
type TaskRunner interface {
	Go(ctx context.Context, name string, task func(ctx context.Context) error)
}
