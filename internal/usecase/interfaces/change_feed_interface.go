package interfaces

import (
	"context"
	"time"
)

// ChangeKind discriminates record change events.

type ChangeKind string

const (
	ChangeKindUpdated ChangeKind = "updated"
	ChangeKindDeleted ChangeKind = "deleted"
)

// ChangeEvent announces that a record changed. It carries identity only;
// subscribers re-read the record so late or re-ordered delivery converges on
// the current state instead of replaying stale payloads.
type ChangeEvent struct {
	Collection string     `json:"collection"`
	ID         string     `json:"id"`
	Kind       ChangeKind `json:"kind"`
	At         time.Time  `json:"at"`
}

// IChangeFeed is the real-time change notification boundary.
//
// Subscribe returns an unsubscribe func; the subscription has no timeout and
// runs until unsubscribed. Publish failures are expected to be treated as
// non-fatal by writers.
type IChangeFeed interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Subscribe(ctx context.Context, collection, id string, onChange func(ChangeEvent)) (func(), error)
}
