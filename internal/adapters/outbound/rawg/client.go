// Package rawg is a thin client for the RAWG video-game REST API. It covers
// the four read actions the assistant tools need and shrinks every response
// before it is fed back to the model.
package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	DefaultBaseURL = "https://api.rawg.io/api"

	DefaultPageSize = 10
	MaxPageSize     = 40
)

// orderings the external API accepts; anything else is rejected before the
// request is issued.
var allowedOrderings = map[string]struct{}{
	"-rating":   {},
	"-released": {},
	"-added":    {},
	"-created":  {},
	"-updated":  {},
	"rating":    {},
	"released":  {},
}

// SearchParams holds the optional filters of a game search.
type SearchParams struct {
	Search    string
	PageSize  int
	Page      int
	Ordering  string
	Dates     string
	Platforms string
	Genres    string
}

// Client is a thin client for the RAWG API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new client.
func NewClient(baseURL, apiKey string, httpClient *http.Client) Client {
	return Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// SearchGames queries the games catalog with the given filters.
func (c Client) SearchGames(ctx context.Context, params SearchParams) (any, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	query, err := params.queryValues()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	result, err := c.get(spanCtx, "/games", query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return result, nil
}

// GameDetails fetches the full record of a single game.
func (c Client) GameDetails(ctx context.Context, gameID int) (any, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if gameID <= 0 {
		err := domain.NewValidationErr("game_id must be a positive number")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	result, err := c.get(spanCtx, fmt.Sprintf("/games/%d", gameID), url.Values{})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return result, nil
}

// Genres lists all game genres.
func (c Client) Genres(ctx context.Context) (any, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := c.get(spanCtx, "/genres", url.Values{})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return result, nil
}

// Platforms lists all gaming platforms.
func (c Client) Platforms(ctx context.Context) (any, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := c.get(spanCtx, "/platforms", url.Values{})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return result, nil
}

// queryValues validates the search filters and renders them as URL query
// parameters. The page size is defaulted to 10 and clamped to the API
// maximum of 40.
func (p SearchParams) queryValues() (url.Values, error) {
	query := url.Values{}

	if p.Search != "" {
		query.Set("search", p.Search)
	}

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	query.Set("page_size", strconv.Itoa(pageSize))

	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}

	if p.Ordering != "" {
		if _, ok := allowedOrderings[p.Ordering]; !ok {
			return nil, domain.NewValidationErr(fmt.Sprintf("unsupported ordering: %s", p.Ordering))
		}
		query.Set("ordering", p.Ordering)
	}

	if p.Dates != "" {
		if _, _, err := domain.ParseDateRange(p.Dates); err != nil {
			return nil, err
		}
		query.Set("dates", p.Dates)
	}

	if p.Platforms != "" {
		if err := validateIDList("platforms", p.Platforms); err != nil {
			return nil, err
		}
		query.Set("platforms", p.Platforms)
	}

	if p.Genres != "" {
		if err := validateIDList("genres", p.Genres); err != nil {
			return nil, err
		}
		query.Set("genres", p.Genres)
	}

	return query, nil
}

func validateIDList(name, value string) error {
	for _, token := range strings.Split(value, ",") {
		if _, err := strconv.Atoi(strings.TrimSpace(token)); err != nil {
			return domain.NewValidationErr(fmt.Sprintf("%s must be a comma-separated list of numeric ids", name))
		}
	}
	return nil
}

// get performs one authenticated GET request and strips the high-volume
// tags field from the decoded response.
func (c Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	if c.apiKey == "" {
		return nil, domain.NewConfigErr("RAWG_API_KEY is not configured")
	}

	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamErr(0, fmt.Sprintf("rawg request failed: %v", err))
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamErr(resp.StatusCode, fmt.Sprintf("read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewUpstreamErr(resp.StatusCode, fmt.Sprintf("rawg: %s: %s", resp.Status, strings.TrimSpace(string(body))))
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, domain.NewUpstreamErr(resp.StatusCode, fmt.Sprintf("unmarshal response: %v", err))
	}

	return StripTags(decoded), nil
}

// InitClient initializes the RAWG API client dependency.
type InitClient struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"RAWG_BASE_URL" default:"https://api.rawg.io/api"`
	// The API key is validated lazily so the app can boot without it;
	// calls fail with a configuration error until it is set.
	APIKey string `config:"RAWG_API_KEY" default:""`
}

// Initialize registers the client in the dependency container.
func (i InitClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewClient(i.BaseURL, i.APIKey, i.HttpClient))
	return ctx, nil
}
