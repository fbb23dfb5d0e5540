package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/colorpal/colorpal-server/internal/service"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search",
		Description: "Searches colours and visible palettes by name. A query starting with @ searches users by name or email instead.",
		Tags:        []string{"Search"},
		Security:    bearer,
	}, s.handleSearch)
}

// SearchInput carries the query.
type SearchInput struct {
	Query string `query:"q" maxLength:"200" doc:"Search text; prefix with @ to find users"`
}

// SearchOutput wraps grouped results for Huma.
type SearchOutput struct {
	Body *service.SearchResults
}

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.services.Search.Search(ctx, userID, input.Query)
	if err != nil {
		return nil, err
	}
	return &SearchOutput{Body: res}, nil
}
