package storage

import (
	"context"
	"time"
)

// Record is one blob from a container listing. LastModified is nil when the
// service did not report a modification time.
type Record struct {
	Name         string     `json:"name"`
	LastModified *time.Time `json:"lastModified"`
}

// Lister yields the full flat listing of a container, in whatever order the
// service returns it.
type Lister interface {
	List(ctx context.Context, container string) ([]Record, error)
}

// Deleter removes a single blob by name. One call per blob; callers decide
// whether a failure stops the loop.
type Deleter interface {
	Delete(ctx context.Context, container, name string) error
}
