// Package authorization is the single capability gate for admin-scoped
// operations. Every admin route asks this service; no route carries its own
// role check.
package authorization

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

const ObjectProduct = "product"

const (
	ActionProductView    = "product.view"
	ActionProductApprove = "product.approve"
	ActionProductReject  = "product.reject"
)

var (
	ErrInvalidActor = errors.New("invalid_actor")
	ErrForbidden    = errors.New("forbidden")
)

type Service interface {
	Authorize(ctx context.Context, userID snowflake.ID, object string, action string) error
}
