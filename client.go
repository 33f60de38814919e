// Package rlstats is a client for the RocketLeagueStats API.
//
// A Client is built once with New and is safe for concurrent use: it holds
// no mutable per-call state, only a shared transport and a header set fixed
// at construction. The client performs no caching, retrying or rate
// limiting of its own; throttling surfaces as ErrRateLimited and policy is
// left to the caller.
package rlstats

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Version is the library version reported in the User-Agent header.
const Version = "1.0.0"

const defaultBaseURL = "https://api.rocketleaguestats.com/v1"

type Client struct {
	client  *fasthttp.Client
	headers fasthttp.RequestHeader
	baseURL string
	logger  zerolog.Logger
}

type Option func(*Client)

// WithBaseURL overrides the API base URL. Mainly useful for pointing the
// client at a stub server in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient replaces the underlying transport. Timeouts are the
// transport's concern; configure them here, the client sets none itself.
func WithHTTPClient(hc *fasthttp.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger attaches a logger for per-request debug lines. The default is
// zerolog.Nop.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New builds a client around the given API key. The key, the Accept header
// and the User-Agent are baked into a header template here and reused
// unchanged for every request; no headers are computed per call.
func New(apiKey string, opts ...Option) (*Client, error) {
	if !validHeaderValue(apiKey) {
		return nil, ErrInvalidAPIKey
	}

	c := &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		baseURL: defaultBaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.headers.Set(fasthttp.HeaderAuthorization, apiKey)
	c.headers.Set(fasthttp.HeaderAccept, "application/json")
	c.headers.Set(fasthttp.HeaderUserAgent, fmt.Sprintf("rlstats (v %s)", Version))

	return c, nil
}

// validHeaderValue reports whether s can be carried as an HTTP header
// value: no control bytes other than horizontal tab.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 0x20 && b != '\t') || b == 0x7f {
			return false
		}
	}
	return true
}

func (c *Client) GetPlatforms(ctx context.Context) ([]Platform, error) {
	res, err := doRequest[[]Platform](ctx, c, fasthttp.MethodGet, "/data/platforms", nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) GetSeasons(ctx context.Context) ([]Season, error) {
	res, err := doRequest[[]Season](ctx, c, fasthttp.MethodGet, "/data/seasons", nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) GetPlaylists(ctx context.Context) ([]Playlist, error) {
	res, err := doRequest[[]Playlist](ctx, c, fasthttp.MethodGet, "/data/playlists", nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) GetTiers(ctx context.Context) ([]Tier, error) {
	res, err := doRequest[[]Tier](ctx, c, fasthttp.MethodGet, "/data/tiers", nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// GetPlayer looks up one player by platform-specific ID. uniqueID is
// passed through as-is; the caller escapes values that need it.
func (c *Client) GetPlayer(ctx context.Context, uniqueID string, platformID int) (*Player, error) {
	path := fmt.Sprintf("/player?unique_id=%s&platform_id=%d", uniqueID, platformID)
	return doRequest[Player](ctx, c, fasthttp.MethodGet, path, nil)
}

// SearchPlayers searches the service's own player database, not Rocket
// League's.
func (c *Client) SearchPlayers(ctx context.Context, displayName string, page int) (*SearchResponse, error) {
	path := fmt.Sprintf("/search/players?display_name=%s&page=%d", displayName, page)
	return doRequest[SearchResponse](ctx, c, fasthttp.MethodGet, path, nil)
}

// BatchPlayers resolves up to 10 players in one call. The cap is enforced
// by the service, not here. Players that are not found are left out of the
// result; no placeholders are synthesized.
func (c *Client) BatchPlayers(ctx context.Context, players []BatchPlayer) ([]Player, error) {
	res, err := doRequest[[]Player](ctx, c, fasthttp.MethodPost, "/player/batch", players)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) GetRankedLeaderboard(ctx context.Context, playlistID int) ([]Player, error) {
	path := fmt.Sprintf("/leaderboard/ranked?playlist_id=%d", playlistID)
	res, err := doRequest[[]Player](ctx, c, fasthttp.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// GetStatLeaderboard returns the top players for one stat, e.g. "goals" or
// "wins".
func (c *Client) GetStatLeaderboard(ctx context.Context, statType string) ([]Player, error) {
	path := fmt.Sprintf("/leaderboard/stat?type=%s", statType)
	res, err := doRequest[[]Player](ctx, c, fasthttp.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}
