package content

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
	"github.com/moodlift/moodlift/backend/internal/model/content"
)

// ClientConfig carries the per-provider HTTP knobs. External providers are
// untrusted and unreliable: every call runs under a hard timeout with a small
// retry budget, and any failure falls back to the static library.
type ClientConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RetryCount   int
	RetryWait    time.Duration
	RetryMaxWait time.Duration
}

func newClient(cfg ClientConfig) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait)
}

// LiveSource fetches up to count items for a mood from an external provider.
type LiveSource interface {
	Fetch(ctx context.Context, m mood.Category, count int) ([]content.Item, error)
}

// fetchContext bounds an entire multi-slot fetch to one budget. The per-call
// resty timeout alone would multiply across slots and retries, turning a
// hanging provider into a multi-minute stall instead of a quick fallback.
func fetchContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// liveID derives a stable identifier for a live item so deduplication works
// across live/static mixes. Providers that return an ID keep it; otherwise the
// display text is hashed.
func liveID(t content.Type, apiID, text string) string {
	if apiID != "" {
		return fmt.Sprintf("live-%s-%s", t, apiID)
	}
	h := fnv.New32a()
	h.Write([]byte(text))
	return fmt.Sprintf("live-%s-%d", t, h.Sum32())
}

// JokeProvider pulls single random jokes from an icanhazdadjoke-style API.
type JokeProvider struct {
	client  *resty.Client
	timeout time.Duration
}

// NewJokeProvider builds a joke provider over the given endpoint config.
func NewJokeProvider(cfg ClientConfig) *JokeProvider {
	return &JokeProvider{client: newClient(cfg), timeout: cfg.Timeout}
}

type jokePayload struct {
	ID   string `json:"id"`
	Joke string `json:"joke"`
}

// Fetch requests count jokes one at a time under a single overall deadline.
// A single failed slot does not abandon the batch; an error is returned only
// when nothing was fetched.
func (p *JokeProvider) Fetch(ctx context.Context, m mood.Category, count int) ([]content.Item, error) {
	ctx, cancel := fetchContext(ctx, p.timeout)
	defer cancel()

	items := make([]content.Item, 0, count)
	var lastErr error
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}
		var payload jokePayload
		resp, err := p.client.R().
			SetContext(ctx).
			SetResult(&payload).
			Get("/")
		if err != nil {
			lastErr = err
			continue
		}
		if resp.IsError() {
			lastErr = fmt.Errorf("joke provider returned %s", resp.Status())
			continue
		}
		if payload.Joke == "" {
			lastErr = fmt.Errorf("joke provider returned empty payload")
			continue
		}
		items = append(items, content.Item{
			ID:   liveID(content.TypeJoke, payload.ID, payload.Joke),
			Type: content.TypeJoke,
			Mood: m,
			Text: payload.Joke,
		})
	}
	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

// QuoteProvider pulls random quotes from a quotable-style API.
type QuoteProvider struct {
	client  *resty.Client
	timeout time.Duration
}

// NewQuoteProvider builds a quote provider over the given endpoint config.
func NewQuoteProvider(cfg ClientConfig) *QuoteProvider {
	return &QuoteProvider{client: newClient(cfg), timeout: cfg.Timeout}
}

type quotePayload struct {
	ID      string `json:"_id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Fetch requests count quotes one at a time under a single overall deadline,
// tolerating individual failures.
func (p *QuoteProvider) Fetch(ctx context.Context, m mood.Category, count int) ([]content.Item, error) {
	ctx, cancel := fetchContext(ctx, p.timeout)
	defer cancel()

	items := make([]content.Item, 0, count)
	var lastErr error
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}
		var payload quotePayload
		resp, err := p.client.R().
			SetContext(ctx).
			SetResult(&payload).
			Get("/random")
		if err != nil {
			lastErr = err
			continue
		}
		if resp.IsError() {
			lastErr = fmt.Errorf("quote provider returned %s", resp.Status())
			continue
		}
		if payload.Content == "" {
			lastErr = fmt.Errorf("quote provider returned empty payload")
			continue
		}
		items = append(items, content.Item{
			ID:          liveID(content.TypeQuote, payload.ID, payload.Content),
			Type:        content.TypeQuote,
			Mood:        m,
			Text:        payload.Content,
			Attribution: payload.Author,
		})
	}
	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

// ImageProvider pulls image metadata from a picsum-style listing API.
type ImageProvider struct {
	client  *resty.Client
	timeout time.Duration
}

// NewImageProvider builds an image provider over the given endpoint config.
func NewImageProvider(cfg ClientConfig) *ImageProvider {
	return &ImageProvider{client: newClient(cfg), timeout: cfg.Timeout}
}

type imagePayload struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	DownloadURL string `json:"download_url"`
}

// Fetch requests a page of count images in one call under the same overall
// deadline as the other providers.
func (p *ImageProvider) Fetch(ctx context.Context, m mood.Category, count int) ([]content.Item, error) {
	ctx, cancel := fetchContext(ctx, p.timeout)
	defer cancel()

	var payload []imagePayload
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(count)).
		SetResult(&payload).
		Get("/v2/list")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("image provider returned %s", resp.Status())
	}

	items := make([]content.Item, 0, len(payload))
	for _, img := range payload {
		if img.DownloadURL == "" {
			continue
		}
		items = append(items, content.Item{
			ID:          liveID(content.TypeImage, img.ID, img.DownloadURL),
			Type:        content.TypeImage,
			Mood:        m,
			Attribution: img.Author,
			MediaURL:    img.DownloadURL,
		})
	}
	return items, nil
}
