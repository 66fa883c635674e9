package rawg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchGames(t *testing.T) {
	tests := map[string]struct {
		params   SearchParams
		handler  http.HandlerFunc
		validate func(t *testing.T, gotQuery map[string][]string, result any, err error)
	}{
		"applies-default-page-size": {
			params: SearchParams{Search: "zelda"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"count":1,"results":[{"name":"Zelda"}]}`))
			},
			validate: func(t *testing.T, gotQuery map[string][]string, result any, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"zelda"}, gotQuery["search"])
				assert.Equal(t, []string{"10"}, gotQuery["page_size"])
				assert.Equal(t, []string{"test-key"}, gotQuery["key"])
			},
		},
		"clamps-page-size-to-api-maximum": {
			params: SearchParams{Search: "zelda", PageSize: 100},
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results":[]}`))
			},
			validate: func(t *testing.T, gotQuery map[string][]string, result any, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"40"}, gotQuery["page_size"])
			},
		},
		"strips-tags-from-response": {
			params: SearchParams{Search: "witcher"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results":[{"name":"The Witcher 3","tags":[{"id":1}],"genres":[{"name":"RPG","tags":["x"]}]}]}`))
			},
			validate: func(t *testing.T, _ map[string][]string, result any, err error) {
				require.NoError(t, err)
				game := result.(map[string]any)["results"].([]any)[0].(map[string]any)
				assert.NotContains(t, game, "tags")
				genre := game["genres"].([]any)[0].(map[string]any)
				assert.NotContains(t, genre, "tags")
			},
		},
		"rejects-unsupported-ordering-before-request": {
			params: SearchParams{Ordering: "-metacritic"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected")
			},
			validate: func(t *testing.T, _ map[string][]string, _ any, err error) {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
			},
		},
		"rejects-malformed-date-range-before-request": {
			params: SearchParams{Dates: "2023-01-01"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected")
			},
			validate: func(t *testing.T, _ map[string][]string, _ any, err error) {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
			},
		},
		"rejects-non-numeric-platform-ids": {
			params: SearchParams{Platforms: "4,playstation"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected")
			},
			validate: func(t *testing.T, _ map[string][]string, _ any, err error) {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
			},
		},
		"maps-non-2xx-to-upstream-error": {
			params: SearchParams{Search: "zelda"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "The monthly API limit reached", http.StatusBadGateway)
			},
			validate: func(t *testing.T, _ map[string][]string, _ any, err error) {
				var upstreamErr *domain.UpstreamErr
				require.ErrorAs(t, err, &upstreamErr)
				assert.Equal(t, http.StatusBadGateway, upstreamErr.Status)
				assert.Contains(t, upstreamErr.Error(), "monthly API limit")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotQuery map[string][]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				tt.handler(w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key", server.Client())
			result, err := client.SearchGames(context.Background(), tt.params)
			tt.validate(t, gotQuery, result, err)
		})
	}
}

func TestClient_GameDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games/3498", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":3498,"name":"GTA V","tags":[{"id":31}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", server.Client())

	result, err := client.GameDetails(context.Background(), 3498)
	require.NoError(t, err)
	game := result.(map[string]any)
	assert.Equal(t, "GTA V", game["name"])
	assert.NotContains(t, game, "tags")

	_, err = client.GameDetails(context.Background(), 0)
	var validationErr *domain.ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}

func TestClient_MissingAPIKeyFailsBeforeNetworkCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without an API key")
	}))
	defer server.Close()

	client := NewClient(server.URL, "", server.Client())

	_, err := client.Genres(context.Background())
	var configErr *domain.ConfigErr
	assert.ErrorAs(t, err, &configErr)
}

func TestClient_ListEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/genres":
			_, _ = w.Write([]byte(`{"results":[{"id":4,"name":"Action"}]}`))
		case "/platforms":
			_, _ = w.Write([]byte(`{"results":[{"id":4,"name":"PC"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", server.Client())

	genres, err := client.Genres(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, genres)

	platforms, err := client.Platforms(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, platforms)
}
