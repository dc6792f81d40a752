// Package catalog serves the public, read-only projection of approved
// products. It is a live query over the product store, so it can never leak
// a pending or rejected record the way a stale generated file could.
package catalog

import (
	"context"
	"strings"

	"github.com/baseafricadao/catalog/internal/product/domain"
	"github.com/baseafricadao/catalog/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ListRequest struct {
	Page     int
	PageSize int
	Category string
	Country  string
}

type Service interface {
	List(ctx context.Context, req ListRequest) ([]domain.PublicProduct, error)
}

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) Service {
	return &service{
		db:   p.DB,
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *service) List(ctx context.Context, req ListRequest) ([]domain.PublicProduct, error) {
	approved := domain.StatusApproved
	page := pagination.Pagination{Page: req.Page, PageSize: req.PageSize}.Normalize()

	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Status:   &approved,
		Category: strings.TrimSpace(req.Category),
		Country:  strings.TrimSpace(req.Country),
		Page:     page,
	})
	if err != nil {
		return nil, err
	}

	products := make([]domain.PublicProduct, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		products = append(products, item.Public())
	}
	return products, nil
}
