package domain

import (
	"context"

	"github.com/baseafricadao/catalog/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// ListFilter narrows a listing. A nil Status returns records in every state;
// Page with a zero PageSize disables pagination (admin listings want the
// full set).
type ListFilter struct {
	Status   *Status
	Category string
	Country  string
	Page     pagination.Pagination
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*Product, error)
	// UpdateStatus sets only the status column; every other field is left
	// untouched. Returns ErrNotFound when no row matches the id.
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status Status) error
}
