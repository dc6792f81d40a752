package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/baseafricadao/catalog/internal/product/domain"
	"github.com/baseafricadao/catalog/internal/product/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCatalog(t *testing.T) (Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, db, node
}

func seed(t *testing.T, db *gorm.DB, node *snowflake.Node, status domain.Status, category string, submittedAt time.Time) domain.Product {
	t.Helper()
	product := domain.Product{
		ID:          node.Generate(),
		Slug:        "seeded",
		Name:        "Seeded Product",
		Description: "A product seeded for catalog tests",
		Category:    category,
		Country:     "Nigeria",
		Logo:        "https://cdn.example.com/logo.png",
		Status:      status,
		SubmittedAt: submittedAt,
	}
	require.NoError(t, repository.Provide().Insert(context.Background(), db, &product))
	return product
}

func TestListServesOnlyApproved(t *testing.T) {
	svc, db, node := setupCatalog(t)
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	approved := seed(t, db, node, domain.StatusApproved, "fintech", at)
	seed(t, db, node, domain.StatusPending, "fintech", at.Add(time.Hour))
	seed(t, db, node, domain.StatusRejected, "fintech", at.Add(2*time.Hour))

	items, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, approved.ID, items[0].ID)
}

func TestListPaginationDefaults(t *testing.T) {
	svc, db, node := setupCatalog(t)
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seed(t, db, node, domain.StatusApproved, "fintech", base.Add(time.Duration(i)*time.Minute))
	}

	// Zero values normalize to page 1, size 10.
	pageOne, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)
	require.Len(t, pageOne, 10)

	pageTwo, err := svc.List(context.Background(), ListRequest{Page: 2})
	require.NoError(t, err)
	require.Len(t, pageTwo, 2)

	pastEnd, err := svc.List(context.Background(), ListRequest{Page: 3})
	require.NoError(t, err)
	require.Empty(t, pastEnd)
}

func TestListNewestApprovedFirst(t *testing.T) {
	svc, db, node := setupCatalog(t)
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	older := seed(t, db, node, domain.StatusApproved, "fintech", base)
	newer := seed(t, db, node, domain.StatusApproved, "fintech", base.Add(time.Hour))

	items, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, newer.ID, items[0].ID)
	require.Equal(t, older.ID, items[1].ID)
}

func TestListCategoryFilter(t *testing.T) {
	svc, db, node := setupCatalog(t)
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	seed(t, db, node, domain.StatusApproved, "fintech", at)
	health := seed(t, db, node, domain.StatusApproved, "health", at.Add(time.Minute))

	items, err := svc.List(context.Background(), ListRequest{Category: " health "})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, health.ID, items[0].ID)
}
