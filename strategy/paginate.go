package strategy

import (
	"context"

	"github.com/kbukum/apikit/transport"
)

// NextPageParams inspects a page payload and the parameters that produced
// it, and returns the query parameters for the next page. Returning nil
// signals exhaustion.
type NextPageParams func(payload any, params map[string]string) map[string]string

// NextPageURL inspects a page payload and the URL that produced it, and
// returns the URL of the next page. Returning "" signals exhaustion.
type NextPageURL func(payload any, url string) string

// QueryParamPaginated repeats the dispatch with a query-parameter cursor
// until NextPage returns nil, collecting each page's payload.
type QueryParamPaginated struct {
	NextPage NextPageParams
}

// Execute accumulates page payloads into a []any.
func (s *QueryParamPaginated) Execute(ctx context.Context, req transport.Request, dispatch Dispatch) (any, error) {
	params := copyParams(req.Params)

	var pages []any
	for {
		req.Params = params
		payload, err := dispatch(ctx, req)
		if err != nil {
			return nil, err
		}
		pages = append(pages, payload)

		if s.NextPage == nil {
			break
		}
		next := s.NextPage(payload, copyParams(params))
		if next == nil {
			break
		}
		merged := copyParams(params)
		for k, v := range next {
			merged[k] = v
		}
		params = merged
	}
	return pages, nil
}

// URLPaginated repeats the dispatch with a URL cursor until NextPage
// returns "", collecting each page's payload.
type URLPaginated struct {
	NextPage NextPageURL
}

// Execute accumulates page payloads into a []any.
func (s *URLPaginated) Execute(ctx context.Context, req transport.Request, dispatch Dispatch) (any, error) {
	var pages []any
	for {
		payload, err := dispatch(ctx, req)
		if err != nil {
			return nil, err
		}
		pages = append(pages, payload)

		if s.NextPage == nil {
			break
		}
		next := s.NextPage(payload, req.URL)
		if next == "" {
			break
		}
		req.URL = next
	}
	return pages, nil
}

func copyParams(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
