package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/search"
	"github.com/colorpal/colorpal-server/internal/store"
)

// SearchBackend is the part of *search.SearchIndex the search service uses.
type SearchBackend interface {
	Search(ctx context.Context, p search.Params) ([]search.Hit, error)
	Rebuild(docs []*search.Document) error
	DocumentCount() (uint64, error)
}

// SearchResults groups hits by kind. Lists are never nil.
type SearchResults struct {
	Users    []UserSummary     `json:"users"`
	Colors   []*domain.Color   `json:"colors"`
	Palettes []*domain.Palette `json:"palettes"`
}

func emptyResults() *SearchResults {
	return &SearchResults{Users: []UserSummary{}, Colors: []*domain.Color{}, Palettes: []*domain.Palette{}}
}

// SearchService answers the global search box.
type SearchService struct {
	store   store.Store
	backend SearchBackend
	logger  *slog.Logger
}

// NewSearchService creates a search service.
func NewSearchService(s store.Store, backend SearchBackend, logger *slog.Logger) *SearchService {
	return &SearchService{store: s, backend: backend, logger: orDiscard(logger)}
}

// Search runs q for userID. A leading "@" searches other users by name or
// email; anything else searches colours and the palettes userID may see.
func (s *SearchService) Search(ctx context.Context, userID, q string) (*SearchResults, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return emptyResults(), nil
	}
	if rest, ok := strings.CutPrefix(q, "@"); ok {
		return s.searchUsers(ctx, userID, strings.TrimSpace(rest))
	}

	out := emptyResults()

	hits, err := s.backend.Search(ctx, search.Params{Query: q, Type: search.DocTypeColor, Limit: search.DefaultLimit})
	if err != nil {
		return nil, fmt.Errorf("search colors: %w", err)
	}
	ids := hitIDs(hits)
	colors, err := s.store.GetColorsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load colors: %w", err)
	}
	out.Colors = append(out.Colors, orderByIDs(colors, ids, func(c *domain.Color) string { return c.ID })...)

	me, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user", "get user")
	}
	hits, err = s.backend.Search(ctx, search.Params{
		Query:  q,
		Type:   search.DocTypePalette,
		Limit:  search.DefaultLimit,
		Viewer: &search.Viewer{ID: userID, FriendIDs: me.FriendIDs},
	})
	if err != nil {
		return nil, fmt.Errorf("search palettes: %w", err)
	}
	ids = hitIDs(hits)
	palettes, err := s.store.GetPalettesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load palettes: %w", err)
	}
	out.Palettes = append(out.Palettes, orderByIDs(palettes, ids, func(p *domain.Palette) string { return p.ID })...)

	return out, nil
}

func (s *SearchService) searchUsers(ctx context.Context, userID, q string) (*SearchResults, error) {
	out := emptyResults()
	if q == "" {
		return out, nil
	}
	hits, err := s.backend.Search(ctx, search.Params{
		Query:      q,
		Type:       search.DocTypeUser,
		Limit:      search.DefaultLimit,
		ExcludeIDs: []string{userID},
	})
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	ids := hitIDs(hits)
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	out.Users = summarizeAll(orderByIDs(users, ids, func(u *domain.User) string { return u.ID }))
	return out, nil
}

// Reindex rebuilds the index from the database.
func (s *SearchService) Reindex(ctx context.Context) error {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	colors, err := s.store.ListColors(ctx)
	if err != nil {
		return fmt.Errorf("list colors: %w", err)
	}
	palettes, err := s.store.ListPalettes(ctx)
	if err != nil {
		return fmt.Errorf("list palettes: %w", err)
	}

	docs := make([]*search.Document, 0, len(users)+len(colors)+len(palettes))
	for _, u := range users {
		docs = append(docs, search.UserDocument(u))
	}
	for _, c := range colors {
		docs = append(docs, search.ColorDocument(c))
	}
	for _, p := range palettes {
		docs = append(docs, search.PaletteDocument(p))
	}

	if err := s.backend.Rebuild(docs); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	s.logger.Info("search index rebuilt", "users", len(users), "colors", len(colors), "palettes", len(palettes))
	return nil
}

// ReindexIfEmpty rebuilds the index when it holds no documents, which is the
// case on first start and after a mapping change.
func (s *SearchService) ReindexIfEmpty(ctx context.Context) error {
	n, err := s.backend.DocumentCount()
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if n > 0 {
		return nil
	}
	return s.Reindex(ctx)
}

func hitIDs(hits []search.Hit) []string {
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}
	return ids
}

// orderByIDs returns items arranged in ids order, skipping ids with no item.
func orderByIDs[T any](items []T, ids []string, key func(T) string) []T {
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[key(it)] = it
	}
	out := make([]T, 0, len(items))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}
