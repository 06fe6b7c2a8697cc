package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"audiotag/internal/book"
	"audiotag/internal/logging"
	"audiotag/internal/services"
)

// Source is the metadata lookup used by the pipeline.
type Source interface {
	FetchMetadata(ctx context.Context, asin string, includeChapters bool) (book.Metadata, error)
}

// Client talks to the catalog service.
type Client struct {
	http   *resty.Client
	region string
	logger *slog.Logger
}

var _ Source = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http.SetTransport(hc.Transport)
			if hc.Timeout > 0 {
				c.http.SetTimeout(hc.Timeout)
			}
		}
	}
}

// WithTimeout bounds each request; zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithRetryCount retries connection failures up to n extra times. Error
// responses are never retried.
func WithRetryCount(n int) Option {
	return func(c *Client) {
		if n <= 0 {
			return
		}
		c.http.SetRetryCount(n).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(5 * time.Second).
			AddRetryCondition(func(_ *resty.Response, err error) bool {
				return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
			})
	}
}

// WithRegion adds ?region= to every request.
func WithRegion(region string) Option {
	return func(c *Client) {
		c.region = strings.TrimSpace(region)
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.http.SetHeader("User-Agent", ua)
		}
	}
}

// WithLogger routes request diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.NewComponentLogger(logger, "catalog")
		c.http.SetLogger(restyLogger{logger: c.logger})
	}
}

// New creates a catalog client rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("catalog base url required")
	}
	client := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
		logger: logging.NewNop(),
	}
	client.http.SetLogger(restyLogger{logger: client.logger})
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchBook returns the book-level fields for asin. Chapters are left nil.
func (c *Client) FetchBook(ctx context.Context, asin string) (book.Metadata, error) {
	var payload bookResponse
	if err := c.get(ctx, "/books/{asin}", asin, &payload); err != nil {
		return book.Metadata{}, err
	}

	names := make([]string, 0, len(payload.Narrators))
	for _, n := range payload.Narrators {
		names = append(names, n.Name)
	}
	meta := book.Metadata{
		ASIN:          asin,
		Title:         payload.Title,
		Year:          book.YearFromReleaseDate(payload.ReleaseDate),
		Publisher:     payload.PublisherName,
		LengthMinutes: payload.RuntimeLengthMin,
		Narrators:     book.DisplayNarrators(names),
	}
	if len(payload.Authors) > 0 {
		meta.Author = payload.Authors[0].Name
	}
	return meta, nil
}

// FetchChapters returns the raw chapter list for asin in catalog order.
func (c *Client) FetchChapters(ctx context.Context, asin string) ([]book.RawChapter, error) {
	var payload chaptersResponse
	if err := c.get(ctx, "/books/{asin}/chapters", asin, &payload); err != nil {
		return nil, err
	}
	raw := make([]book.RawChapter, 0, len(payload.Chapters))
	for _, ch := range payload.Chapters {
		raw = append(raw, book.RawChapter{
			StartOffsetMs: ch.StartOffsetMs,
			LengthMs:      ch.LengthMs,
			Title:         ch.Title,
		})
	}
	return raw, nil
}

// FetchMetadata fetches the book and, when includeChapters is set, its
// normalized chapters.
func (c *Client) FetchMetadata(ctx context.Context, asin string, includeChapters bool) (book.Metadata, error) {
	c.logger.Info("retrieving metadata", logging.String("asin", asin))
	meta, err := c.FetchBook(ctx, asin)
	if err != nil {
		return book.Metadata{}, err
	}
	c.logger.Info("metadata retrieved", logging.String("title", meta.Title))

	if !includeChapters {
		return meta, nil
	}
	raw, err := c.FetchChapters(ctx, asin)
	if err != nil {
		return book.Metadata{}, err
	}
	meta.Chapters = book.NormalizeChapters(raw)
	c.logger.Info("chapters retrieved", logging.Int("chapter_count", len(meta.Chapters)))
	return meta, nil
}

func (c *Client) get(ctx context.Context, path, asin string, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetPathParam("asin", asin)
	if c.region != "" {
		req.SetQueryParam("region", c.region)
	}

	started := time.Now()
	resp, err := req.Get(path)
	latency := time.Since(started)
	if err != nil {
		return services.Wrap(services.ErrCatalogLookup, "catalog", "request", fmt.Sprintf("latency=%v", latency), err)
	}

	c.logger.Debug("catalog response",
		logging.String("url", resp.Request.URL),
		logging.Int("status", resp.StatusCode()),
		logging.Duration("latency", latency),
	)

	if !resp.IsSuccess() {
		return newLookupError(resp)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return services.Wrap(services.ErrCatalogLookup, "catalog", "decode", resp.Request.URL, err)
	}
	return nil
}

func newLookupError(resp *resty.Response) *LookupError {
	lookupErr := &LookupError{
		URL:        resp.Request.URL,
		StatusCode: resp.StatusCode(),
	}
	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.StatusCode != 0 {
			lookupErr.StatusCode = body.StatusCode
		}
		lookupErr.Code = body.Error
		lookupErr.Message = body.Message
	}
	if lookupErr.Code == "" {
		lookupErr.Code = http.StatusText(resp.StatusCode())
	}
	return lookupErr
}

// restyLogger forwards resty's internal diagnostics to slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), logging.String("source", "resty"))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), logging.String("source", "resty"))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), logging.String("source", "resty"))
}
