package service

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/baseafricadao/catalog/internal/clock"
	"github.com/baseafricadao/catalog/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// Create validates the submission and persists it as pending. Id, slug and
// submitted_at are assigned here; nothing the caller sends can override them.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Product, error) {
	req = normalize(req)
	if err := validate(req); err != nil {
		return domain.Product{}, err
	}

	product := domain.Product{
		ID:          s.genID.Generate(),
		Slug:        slug.Make(req.Name),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		Logo:        req.Logo,
		Website:     req.Website,
		Twitter:     req.Twitter,
		Github:      req.Github,
		Status:      domain.StatusPending,
		SubmittedAt: s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		s.log.Error("insert product", zap.Error(err), zap.String("name", product.Name))
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Product, error) {
	filter := domain.ListFilter{
		Category: strings.TrimSpace(req.Category),
		Country:  strings.TrimSpace(req.Country),
	}

	if raw := strings.TrimSpace(req.Status); raw != "" {
		status := domain.Status(raw)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = &status
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		products = append(products, *item)
	}
	return products, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Product, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil || id == 0 {
		return domain.Product{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if item == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *item, nil
}

// normalize trims required fields and collapses empty optional URLs to nil.
func normalize(req domain.CreateRequest) domain.CreateRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)
	req.Country = strings.TrimSpace(req.Country)
	req.Logo = strings.TrimSpace(req.Logo)
	req.Website = normalizeOptional(req.Website)
	req.Twitter = normalizeOptional(req.Twitter)
	req.Github = normalizeOptional(req.Github)
	return req
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validate checks the whole submission and reports every violated field.
// Minimums count characters, not bytes, so multibyte names are measured the
// way a person reads them.
func validate(req domain.CreateRequest) error {
	vErr := &domain.ValidationError{}

	if utf8.RuneCountInString(req.Name) < 2 {
		vErr.Add("name", "too_short", "Name must be at least 2 characters")
	}
	if utf8.RuneCountInString(req.Description) < 10 {
		vErr.Add("description", "too_short", "Description must be at least 10 characters")
	}
	if utf8.RuneCountInString(req.Category) < 2 {
		vErr.Add("category", "required", "Category is required")
	}
	if utf8.RuneCountInString(req.Country) < 2 {
		vErr.Add("country", "required", "Country is required")
	}
	if req.Logo == "" {
		vErr.Add("logo", "required", "Product logo is required")
	}
	if req.Website != nil && !isURL(*req.Website) {
		vErr.Add("website", "invalid_url", "Invalid website URL")
	}
	if req.Twitter != nil && !isURL(*req.Twitter) {
		vErr.Add("twitter", "invalid_url", "Invalid Twitter URL")
	}
	if req.Github != nil && !strings.HasPrefix(*req.Github, "http") {
		vErr.Add("github", "invalid_url", "Invalid GitHub URL")
	}

	if len(vErr.Fields) > 0 {
		return vErr
	}
	return nil
}

func isURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
