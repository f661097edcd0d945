// Package birdeye implements the token-list and token-overview API client.
package birdeye

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"solana-token-screener/internal/domain"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://public-api.birdeye.so"
	DefaultChain   = "solana"
	DefaultTimeout = 30 * time.Second
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Client talks to the token index API.
type Client struct {
	baseURL string
	apiKey  string
	chain   string
	client  *http.Client
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithChain sets the chain-selector header value.
func WithChain(chain string) ClientOption {
	return func(c *Client) {
		c.chain = chain
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates an API client authenticated with apiKey.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		chain:   DefaultChain,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tokenListResponse mirrors the list endpoint envelope.
type tokenListResponse struct {
	Data struct {
		Tokens []tokenItem `json:"tokens"`
	} `json:"data"`
}

// tokenItem is the raw list record. Liquidity, v24hUSD and v24hChangePercent
// are omitted by the API for some tokens, hence pointers.
type tokenItem struct {
	Address           string   `json:"address"`
	Liquidity         *float64 `json:"liquidity"`
	V24hUSD           *float64 `json:"v24hUSD"`
	MC                float64  `json:"mc"`
	LastTradeUnixTime int64    `json:"lastTradeUnixTime"`
	V24hChangePercent *float64 `json:"v24hChangePercent"`
}

// TokenList fetches one page of the token list, sorted by 24h percent change
// descending.
func (c *Client) TokenList(ctx context.Context, offset, limit int) ([]domain.TokenSummary, error) {
	q := url.Values{}
	q.Set("sort_by", "v24hChangePercent")
	q.Set("sort_type", "desc")
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	var resp tokenListResponse
	if err := c.get(ctx, "/public/tokenlist", q, &resp); err != nil {
		return nil, err
	}

	tokens := make([]domain.TokenSummary, len(resp.Data.Tokens))
	for i, t := range resp.Data.Tokens {
		tokens[i] = domain.TokenSummary{
			Address:           t.Address,
			Liquidity:         t.Liquidity,
			V24hUSD:           t.V24hUSD,
			MarketCap:         t.MC,
			LastTradeUnixTime: t.LastTradeUnixTime,
			V24hChangePercent: t.V24hChangePercent,
		}
	}
	return tokens, nil
}

// Overview holds per-token short-window trading statistics.
type Overview struct {
	Buy1h           int64      `json:"buy1h"`
	Sell1h          int64      `json:"sell1h"`
	UniqueWallet24h int64      `json:"uniqueWallet24h"`
	View24h         int64      `json:"view24h"`
	Liquidity       float64    `json:"liquidity"`
	Extensions      *Extension `json:"extensions"`
}

// Extension holds free-text token metadata.
type Extension struct {
	Description string `json:"description"`
}

// overviewResponse mirrors the overview endpoint envelope.
type overviewResponse struct {
	Data Overview `json:"data"`
}

// TokenOverview fetches short-window statistics for one address.
func (c *Client) TokenOverview(ctx context.Context, address string) (*Overview, error) {
	q := url.Values{}
	q.Set("address", address)

	var resp overviewResponse
	if err := c.get(ctx, "/defi/token_overview", q, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	u := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("x-chain", c.chain)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
