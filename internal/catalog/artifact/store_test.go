package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/baseafricadao/catalog/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "west-african-products.ts")
	return NewStore(path, nil, zap.NewNop()), path
}

func sampleProduct(t *testing.T, node *snowflake.Node) domain.Product {
	t.Helper()
	twitter := "https://twitter.com/bamakosoft"
	return domain.Product{
		ID:          node.Generate(),
		Slug:        "bamako-soft",
		Name:        "Bamako Soft",
		Description: "Inventory software for open-air market traders",
		Category:    "commerce",
		Country:     "Mali",
		Logo:        "https://cdn.example.com/bamako.png",
		Twitter:     &twitter,
		Status:      domain.StatusApproved,
		SubmittedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func mustNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return node
}

func TestAppendCreatesSkeletonWhenMissing(t *testing.T) {
	store, path := newStore(t)
	node := mustNode(t)
	product := sampleProduct(t, node)

	if err := store.Append(context.Background(), product); err != nil {
		t.Fatalf("append: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	content := string(raw)

	if !strings.Contains(content, "export type Product = {") {
		t.Fatal("expected type declaration in fresh artifact")
	}
	if !strings.Contains(content, Marker) {
		t.Fatal("expected marker in fresh artifact")
	}
	if !strings.Contains(content, `name: "Bamako Soft"`) {
		t.Fatal("expected appended entry")
	}
	if !strings.Contains(content, `twitter: "https://twitter.com/bamakosoft"`) {
		t.Fatal("expected optional twitter field")
	}
	if strings.Contains(content, "website:") {
		t.Fatal("absent optional fields must not be rendered")
	}
}

func TestAppendPreservesPriorEntries(t *testing.T) {
	store, path := newStore(t)
	node := mustNode(t)

	first := sampleProduct(t, node)
	second := sampleProduct(t, node)
	second.Name = "Dakar Waves"
	second.Slug = "dakar-waves"

	if err := store.Append(context.Background(), first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := store.Append(context.Background(), second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	content := string(raw)

	firstIdx := strings.Index(content, first.ID.String())
	secondIdx := strings.Index(content, second.ID.String())
	if firstIdx < 0 || secondIdx < 0 {
		t.Fatal("expected both entries present")
	}
	if secondIdx > firstIdx {
		t.Fatal("newest entry must precede older ones")
	}
}

func TestAppendDeduplicatesByID(t *testing.T) {
	store, path := newStore(t)
	node := mustNode(t)
	product := sampleProduct(t, node)

	for i := 0; i < 3; i++ {
		if err := store.Append(context.Background(), product); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if count := strings.Count(string(raw), idField(product.ID.String())); count != 1 {
		t.Fatalf("expected exactly one entry, got %d", count)
	}
}

func TestAppendMissingMarker(t *testing.T) {
	store, path := newStore(t)
	if err := os.WriteFile(path, []byte("export const somethingElse = [];\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	err := store.Append(context.Background(), sampleProduct(t, mustNode(t)))
	if !errors.Is(err, ErrMarkerMissing) {
		t.Fatalf("expected ErrMarkerMissing, got %v", err)
	}
}

func TestAppendConcurrent(t *testing.T) {
	store, path := newStore(t)
	node := mustNode(t)

	const n = 10
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = sampleProduct(t, node)
	}

	var wg sync.WaitGroup
	for i := range products {
		wg.Add(1)
		go func(p domain.Product) {
			defer wg.Done()
			if err := store.Append(context.Background(), p); err != nil {
				t.Errorf("append: %v", err)
			}
		}(products[i])
	}
	wg.Wait()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	content := string(raw)
	for _, p := range products {
		if strings.Count(content, idField(p.ID.String())) != 1 {
			t.Fatalf("product %s lost or duplicated under concurrency", p.ID)
		}
	}
}

func TestFormatEntryEscapesQuotes(t *testing.T) {
	node := mustNode(t)
	product := sampleProduct(t, node)
	product.Description = `The "best" market tool`

	entry := FormatEntry(product)
	if !strings.Contains(entry, `\"best\"`) {
		t.Fatalf("expected escaped quotes, got %s", entry)
	}
}
