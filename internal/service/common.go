// Package service holds ColorPal's business logic. Services validate input,
// enforce ownership and visibility rules, keep the search index in step with
// the database and return coded errors from internal/errors.
package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	domainerrors "github.com/colorpal/colorpal-server/internal/errors"
	"github.com/colorpal/colorpal-server/internal/search"
	"github.com/colorpal/colorpal-server/internal/store"
	"github.com/colorpal/colorpal-server/internal/validation"
)

// validate is shared by every service; the validator caches struct metadata.
var validate = validation.New()

// Indexer receives document updates after successful writes.
// *search.SearchIndex satisfies it.
type Indexer interface {
	Index(doc *search.Document) error
	Delete(id string) error
}

// searchSync pushes changes to an optional Indexer. Index failures are
// logged, not returned: the database is the source of truth and a rebuild
// restores the index.
type searchSync struct {
	idx    Indexer
	logger *slog.Logger
}

func (s searchSync) put(doc *search.Document) {
	if s.idx == nil {
		return
	}
	if err := s.idx.Index(doc); err != nil {
		s.logger.Warn("search index update failed", "id", doc.ID, "type", doc.Type, "error", err)
	}
}

func (s searchSync) remove(id string) {
	if s.idx == nil {
		return
	}
	if err := s.idx.Delete(id); err != nil {
		s.logger.Warn("search index delete failed", "id", id, "error", err)
	}
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

// notFoundOr maps store.ErrNotFound to a NOT_FOUND error naming what, and
// wraps anything else with op.
func notFoundOr(err error, what, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return domainerrors.NotFoundf("%s not found", what)
	}
	return fmt.Errorf("%s: %w", op, err)
}
