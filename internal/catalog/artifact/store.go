// Package artifact maintains the generated TypeScript catalog file consumed
// by the frontend build. The file is a derived projection of approved
// products; the database remains the source of truth.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/baseafricadao/catalog/internal/lock"
	"github.com/baseafricadao/catalog/internal/product/domain"
	"go.uber.org/zap"
)

// Marker is the opening of the exported array; new entries are inserted
// immediately after it so the newest approval renders first.
const Marker = "export const westAfricanProducts: Product[] = ["

const (
	lockKey = "catalog:artifact"
	lockTTL = 10 * time.Second
)

var ErrMarkerMissing = errors.New("catalog artifact marker missing")

const skeleton = `export type Product = {
  id?: string;
  name: string;
  description: string;
  category: string;
  country: string;
  logo?: string;
  website?: string;
  twitter?: string;
  github?: string;
};

` + Marker + `
];
`

// Store serializes read-modify-write cycles on the artifact file. The mutex
// covers a single process; the optional redis locker extends exclusion
// across replicas sharing the file.
type Store struct {
	path   string
	mu     sync.Mutex
	locker *lock.Locker
	log    *zap.Logger
}

func NewStore(path string, locker *lock.Locker, log *zap.Logger) *Store {
	return &Store{
		path:   path,
		locker: locker,
		log:    log.Named("catalog.artifact"),
	}
}

func (s *Store) Path() string { return s.path }

// Append inserts the product at the head of the artifact's record list,
// preserving every prior entry. A second append for the same id is a no-op,
// which makes approval retries and racing double-approvals safe.
func (s *Store) Append(ctx context.Context, product domain.Product) error {
	if s == nil || s.path == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locker != nil {
		lockCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		token, err := s.locker.Lock(lockCtx, lockKey, lockTTL)
		if err != nil {
			return fmt.Errorf("acquire artifact lock: %w", err)
		}
		defer func() {
			if err := s.locker.Release(ctx, lockKey, token); err != nil {
				s.log.Warn("release artifact lock", zap.Error(err))
			}
		}()
	}

	content, err := s.read()
	if err != nil {
		return err
	}

	if strings.Contains(content, idField(product.ID.String())) {
		s.log.Info("artifact entry already present, skipping",
			zap.String("product_id", product.ID.String()))
		return nil
	}

	if !strings.Contains(content, Marker) {
		return ErrMarkerMissing
	}
	updated := strings.Replace(content, Marker, Marker+"\n"+FormatEntry(product), 1)

	if err := os.WriteFile(s.path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

func (s *Store) read() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err == nil {
		return string(raw), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read artifact: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create artifact dir: %w", err)
		}
	}
	return skeleton, nil
}

// FormatEntry renders a product in the artifact's record syntax. Optional
// fields are emitted only when present.
func FormatEntry(p domain.Product) string {
	var b strings.Builder
	b.WriteString("  {\n")
	fmt.Fprintf(&b, "    id: %q,\n", p.ID.String())
	fmt.Fprintf(&b, "    name: %q,\n", p.Name)
	fmt.Fprintf(&b, "    description:\n      %q,\n", p.Description)
	fmt.Fprintf(&b, "    category: %q,\n", p.Category)
	fmt.Fprintf(&b, "    country: %q,\n", p.Country)
	if p.Logo != "" {
		fmt.Fprintf(&b, "    logo: %q,\n", p.Logo)
	}
	if p.Website != nil {
		fmt.Fprintf(&b, "    website: %q,\n", *p.Website)
	}
	if p.Twitter != nil {
		fmt.Fprintf(&b, "    twitter: %q,\n", *p.Twitter)
	}
	if p.Github != nil {
		fmt.Fprintf(&b, "    github: %q,\n", *p.Github)
	}
	b.WriteString("  },")
	return b.String()
}

func idField(id string) string {
	return fmt.Sprintf("id: %q,", id)
}
