// Package store persists the site content document under a single
// key. Two backends exist: Redis (the default) and Postgres for
// deployments that already run one.
package store

import (
	"context"

	"jyotish/api/internal/content"
)

// ContentStore is the single-document persistence contract. Get
// reports found=false both when nothing was ever written and when the
// stored bytes fail to deserialize; a corrupt document reads as
// absent rather than erroring. Put fully replaces the document.
type ContentStore interface {
	Get(ctx context.Context) (content.Document, bool, error)
	Put(ctx context.Context, doc content.Document) error
	Ping(ctx context.Context) error
	Close() error
}
