// Package moderation owns the product lifecycle state machine:
// pending -> approved | rejected. Approved and rejected are terminal.
package moderation

import (
	"context"
	"errors"

	"github.com/baseafricadao/catalog/internal/product/domain"
)

var (
	// ErrAlreadyModerated is returned for transitions out of a terminal
	// state. Re-approving a rejected record (or vice versa) is refused.
	ErrAlreadyModerated = errors.New("already_moderated")

	// ErrArtifactWrite marks the partial-failure seam: the store already
	// says approved but the catalog artifact could not be rewritten. The
	// caller must treat this as retryable, not as a clean failure.
	ErrArtifactWrite = errors.New("artifact_write_failed")
)

type Service interface {
	Approve(ctx context.Context, id string) (domain.Product, error)
	Reject(ctx context.Context, id string) (domain.Product, error)
}
