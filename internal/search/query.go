package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/colorpal/colorpal-server/internal/domain"
)

// DefaultLimit caps each result list.
const DefaultLimit = 10

// Viewer restricts palette hits to those the viewer may see.
type Viewer struct {
	ID        string
	FriendIDs []string
}

// Params selects documents of one type whose name (or email, for users)
// contains Query, case-insensitively.
type Params struct {
	Query string
	Type  DocType
	Limit int

	// Viewer, when set, applies palette access rules.
	Viewer *Viewer
	// ExcludeIDs drops specific documents, e.g. the caller from user search.
	ExcludeIDs []string
}

// Hit is one matching document.
type Hit struct {
	ID    string  `json:"id"`
	Type  DocType `json:"type"`
	Score float64 `json:"score"`
}

// Search runs p and returns hits ordered by score, then name.
func (s *SearchIndex) Search(ctx context.Context, p Params) ([]Hit, error) {
	q := strings.TrimSpace(p.Query)
	if q == "" {
		return []Hit{}, nil
	}
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	req := bleve.NewSearchRequestOptions(buildQuery(q, p), limit, 0, false)
	req.SortBy([]string{"-_score", "name_exact"})

	s.mu.RLock()
	defer s.mu.RUnlock()

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, Hit{ID: h.ID, Type: p.Type, Score: h.Score})
	}
	return hits, nil
}

func buildQuery(q string, p Params) query.Query {
	must := []query.Query{
		term("type", string(p.Type)),
		textQuery(q, p.Type == DocTypeUser),
	}
	if p.Viewer != nil {
		must = append(must, visibleTo(p.Viewer))
	}

	bq := bleve.NewBooleanQuery()
	bq.AddMust(must...)
	for _, id := range p.ExcludeIDs {
		bq.AddMustNot(term("id", id))
	}
	return bq
}

// textQuery matches q as a substring of the lowercased name and, for users,
// the email. Word and prefix matches are added to lift better hits.
func textQuery(q string, withEmail bool) query.Query {
	lower := strings.ToLower(q)
	pattern := "*" + strings.NewReplacer("*", "", "?", "").Replace(lower) + "*"

	contains := bleve.NewWildcardQuery(pattern)
	contains.SetField("name_exact")

	words := bleve.NewMatchQuery(q)
	words.SetField("name")
	words.SetOperator(query.MatchQueryOperatorAnd)
	words.SetBoost(3)

	prefix := bleve.NewPrefixQuery(lower)
	prefix.SetField("name_exact")
	prefix.SetBoost(2)

	should := []query.Query{contains, words, prefix}
	if withEmail {
		email := bleve.NewWildcardQuery(pattern)
		email.SetField("email")
		should = append(should, email)
	}
	return bleve.NewDisjunctionQuery(should...)
}

// visibleTo admits palettes the viewer owns, public palettes, and
// friends-only palettes owned by one of the viewer's friends.
func visibleTo(v *Viewer) query.Query {
	rules := []query.Query{
		term("owner_id", v.ID),
		term("access", string(domain.AccessPublic)),
	}
	if len(v.FriendIDs) > 0 {
		owners := make([]query.Query, len(v.FriendIDs))
		for i, id := range v.FriendIDs {
			owners[i] = term("owner_id", id)
		}
		rules = append(rules, bleve.NewConjunctionQuery(
			term("access", string(domain.AccessFriends)),
			bleve.NewDisjunctionQuery(owners...),
		))
	}
	return bleve.NewDisjunctionQuery(rules...)
}

func term(field, value string) query.Query {
	t := bleve.NewTermQuery(value)
	t.SetField(field)
	return t
}
