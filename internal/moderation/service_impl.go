package moderation

import (
	"context"
	"fmt"
	"strings"

	"github.com/baseafricadao/catalog/internal/catalog/artifact"
	"github.com/baseafricadao/catalog/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     domain.Repository
	Artifact *artifact.Store
}

type service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	artifact *artifact.Store
}

func New(p Params) Service {
	return &service{
		db:       p.DB,
		log:      p.Log.Named("moderation.service"),
		repo:     p.Repo,
		artifact: p.Artifact,
	}
}

// Approve transitions a pending record to approved and appends it to the
// public catalog artifact. If the artifact write fails after the status
// update committed, the record stays approved and ErrArtifactWrite is
// returned so the operator can retry; the retry is idempotent because the
// artifact append is keyed by id.
func (s *service) Approve(ctx context.Context, rawID string) (domain.Product, error) {
	product, err := s.lookup(ctx, rawID)
	if err != nil {
		return domain.Product{}, err
	}
	if product.Status != domain.StatusPending && product.Status != domain.StatusApproved {
		return domain.Product{}, ErrAlreadyModerated
	}

	if err := s.repo.UpdateStatus(ctx, s.db, product.ID, domain.StatusApproved); err != nil {
		return domain.Product{}, err
	}
	product.Status = domain.StatusApproved

	if err := s.artifact.Append(ctx, product); err != nil {
		// Store and artifact now disagree. Surface it loudly instead of
		// pretending the approval completed.
		s.log.Error("catalog artifact write failed after status update",
			zap.String("product_id", product.ID.String()),
			zap.Error(err),
		)
		return product, fmt.Errorf("%w: %v", ErrArtifactWrite, err)
	}

	s.log.Info("product approved",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)
	return product, nil
}

// Reject transitions a pending record to rejected. The artifact is never
// touched: rejected records stay stored but invisible.
func (s *service) Reject(ctx context.Context, rawID string) (domain.Product, error) {
	product, err := s.lookup(ctx, rawID)
	if err != nil {
		return domain.Product{}, err
	}
	if product.Status != domain.StatusPending {
		return domain.Product{}, ErrAlreadyModerated
	}

	if err := s.repo.UpdateStatus(ctx, s.db, product.ID, domain.StatusRejected); err != nil {
		return domain.Product{}, err
	}
	product.Status = domain.StatusRejected

	s.log.Info("product rejected",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)
	return product, nil
}

func (s *service) lookup(ctx context.Context, rawID string) (domain.Product, error) {
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
