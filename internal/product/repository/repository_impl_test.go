package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/baseafricadao/catalog/internal/product/domain"
	"github.com/baseafricadao/catalog/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return node
}

func seedProduct(t *testing.T, db *gorm.DB, repo domain.Repository, node *snowflake.Node, status domain.Status, submittedAt time.Time) domain.Product {
	t.Helper()
	product := domain.Product{
		ID:          node.Generate(),
		Slug:        "test-product",
		Name:        "Test Product",
		Description: "A product seeded for repository tests",
		Category:    "fintech",
		Country:     "Nigeria",
		Logo:        "https://cdn.example.com/logo.png",
		Status:      status,
		SubmittedAt: submittedAt,
	}
	if err := repo.Insert(context.Background(), db, &product); err != nil {
		t.Fatalf("seed insert: %v", err)
	}
	return product
}

func TestInsertAndFindByID(t *testing.T) {
	db := setupDB(t)
	repo := Provide()
	node := mustNode(t)

	website := "https://example.com"
	want := domain.Product{
		ID:          node.Generate(),
		Slug:        "kano-logistics",
		Name:        "Kano Logistics",
		Description: "Last-mile delivery network in northern Nigeria",
		Category:    "logistics",
		Country:     "Nigeria",
		Logo:        "https://cdn.example.com/kano.png",
		Website:     &website,
		Status:      domain.StatusPending,
		SubmittedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := repo.Insert(context.Background(), db, &want); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.FindByID(context.Background(), db, want.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("expected product, got nil")
	}
	if got.Name != want.Name || got.Status != want.Status || got.Slug != want.Slug {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Website == nil || *got.Website != website {
		t.Fatalf("expected website %q, got %v", website, got.Website)
	}
	if got.Twitter != nil {
		t.Fatalf("expected nil twitter, got %v", got.Twitter)
	}
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	db := setupDB(t)
	repo := Provide()

	got, err := repo.FindByID(context.Background(), db, mustNode(t).Generate())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing row, got %+v", got)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := setupDB(t)
	repo := Provide()
	node := mustNode(t)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	oldest := seedProduct(t, db, repo, node, domain.StatusPending, base)
	middle := seedProduct(t, db, repo, node, domain.StatusPending, base.Add(time.Hour))
	newest := seedProduct(t, db, repo, node, domain.StatusPending, base.Add(2*time.Hour))

	items, err := repo.List(context.Background(), db, domain.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(items))
	}
	wantOrder := []snowflake.ID{newest.ID, middle.ID, oldest.ID}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, items[i].ID)
		}
	}
}

func TestListTiesBreakOnID(t *testing.T) {
	db := setupDB(t)
	repo := Provide()
	node := mustNode(t)

	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	first := seedProduct(t, db, repo, node, domain.StatusPending, at)
	second := seedProduct(t, db, repo, node, domain.StatusPending, at)

	items, err := repo.List(context.Background(), db, domain.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected higher id first on equal submitted_at, got %s then %s", items[0].ID, items[1].ID)
	}
}

func TestListFiltersByStatusCategoryCountry(t *testing.T) {
	db := setupDB(t)
	repo := Provide()
	node := mustNode(t)

	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	approved := seedProduct(t, db, repo, node, domain.StatusApproved, at)
	seedProduct(t, db, repo, node, domain.StatusPending, at.Add(time.Minute))
	seedProduct(t, db, repo, node, domain.StatusRejected, at.Add(2*time.Minute))

	status := domain.StatusApproved
	items, err := repo.List(context.Background(), db, domain.ListFilter{Status: &status})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != approved.ID {
		t.Fatalf("expected only the approved row, got %d rows", len(items))
	}

	items, err = repo.List(context.Background(), db, domain.ListFilter{Category: "transport"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no rows for unknown category, got %d", len(items))
	}

	items, err = repo.List(context.Background(), db, domain.ListFilter{Country: "Nigeria"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected all rows for Nigeria, got %d", len(items))
	}
}

func TestListPaginates(t *testing.T) {
	db := setupDB(t)
	repo := Provide()
	node := mustNode(t)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedProduct(t, db, repo, node, domain.StatusApproved, base.Add(time.Duration(i)*time.Minute))
	}

	pageOne, err := repo.List(context.Background(), db, domain.ListFilter{
		Page: pagination.Pagination{Page: 1, PageSize: 2},
	})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	pageThree, err := repo.List(context.Background(), db, domain.ListFilter{
		Page: pagination.Pagination{Page: 3, PageSize: 2},
	})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	pastEnd, err := repo.List(context.Background(), db, domain.ListFilter{
		Page: pagination.Pagination{Page: 4, PageSize: 2},
	})
	if err != nil {
		t.Fatalf("page 4: %v", err)
	}

	if len(pageOne) != 2 || len(pageThree) != 1 || len(pastEnd) != 0 {
		t.Fatalf("expected 2/1/0 rows, got %d/%d/%d", len(pageOne), len(pageThree), len(pastEnd))
	}
}

func TestUpdateStatusPreservesOtherFields(t *testing.T) {
	db := setupDB(t)
	repo := Provide()
	node := mustNode(t)

	product := seedProduct(t, db, repo, node, domain.StatusPending, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	if err := repo.UpdateStatus(context.Background(), db, product.ID, domain.StatusApproved); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, err := repo.FindByID(context.Background(), db, product.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
	if got.Name != product.Name || !got.SubmittedAt.Equal(product.SubmittedAt) {
		t.Fatalf("status update must not touch other fields: %+v", got)
	}
}

func TestUpdateStatusMissingRow(t *testing.T) {
	db := setupDB(t)
	repo := Provide()

	err := repo.UpdateStatus(context.Background(), db, mustNode(t).Generate(), domain.StatusApproved)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
