// Package quote fetches the enrichment quote. A single attempt is made per
// flow; every failure mode degrades to a fixed fallback pool so Fetch never
// returns an error.
package quote

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/greetburst/greeting"
)

// Quote is one text/author pair.
type Quote struct {
	Text   string
	Author string
}

// Fallbacks is the fixed 5-quote pool used whenever the remote fetch fails.
var Fallbacks = []Quote{
	{"The best way to predict the future is to invent it.", "Alan Kay"},
	{"Simplicity is the soul of efficiency.", "Austin Freeman"},
	{"Make it work, make it right, make it fast.", "Kent Beck"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Stay hungry, stay foolish.", "Stewart Brand"},
}

// wireQuote is the expected JSON body of the quote endpoint.
type wireQuote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Client fetches quotes from one endpoint with a request rate cap.
type Client struct {
	httpc   *http.Client
	url     string
	limiter *rate.Limiter
	log     zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient creates a quote client. perMinute caps outbound requests; when
// no token is available the fetch degrades to fallback instead of waiting.
func NewClient(url string, timeout time.Duration, perMinute int, log zerolog.Logger) *Client {
	if perMinute <= 0 {
		perMinute = 6
	}
	return &Client{
		httpc:   &http.Client{Timeout: timeout},
		url:     url,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		log:     log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Fetch makes one attempt against the endpoint. Transport errors, non-2xx
// statuses, undecodable bodies and empty content all yield a fallback.
func (c *Client) Fetch(ctx context.Context) Quote {
	if !c.limiter.Allow() {
		c.log.Debug().Msg("quote request rate capped, using fallback")
		return c.fallback()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.log.Warn().Err(err).Msg("quote request build failed")
		return c.fallback()
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("quote fetch failed")
		return c.fallback()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Msg("quote endpoint returned non-success")
		return c.fallback()
	}

	var w wireQuote
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&w); err != nil {
		c.log.Warn().Err(err).Msg("quote body decode failed")
		return c.fallback()
	}
	if strings.TrimSpace(w.Content) == "" {
		c.log.Warn().Msg("quote body empty")
		return c.fallback()
	}

	author := strings.TrimSpace(w.Author)
	if author == "" {
		author = "Unknown"
	}
	return Quote{Text: strings.TrimSpace(w.Content), Author: author}
}

func (c *Client) fallback() Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return greeting.PickOne(c.rng, Fallbacks)
}
