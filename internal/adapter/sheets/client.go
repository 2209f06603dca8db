package sheets

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// ErrNoCredentials is returned when no service account key is configured.
var ErrNoCredentials = errors.New("google service account credentials are not configured")

// Observer is told about every read. It is satisfied by *metrics.Metrics.
type Observer interface {
	RecordSheetRead(err error, latency time.Duration)
}

// Client implements port.SheetReader on top of the Sheets v4 API with a
// read-only service account. The API service is built on first use; until
// then a broken key only fails reads.
type Client struct {
	credentials string
	opts        []option.ClientOption
	observer    Observer

	mu  sync.Mutex
	svc *gsheets.Service
}

// Option configures a Client.
type Option func(*Client)

// WithObserver reports every read to o.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithClientOptions appends API client options, e.g. an endpoint override.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(c *Client) { c.opts = append(c.opts, opts...) }
}

// NewClient returns a client for the given service account key, raw JSON
// or base64 of it.
func NewClient(credentials string, opts ...Option) *Client {
	c := &Client{credentials: strings.TrimSpace(credentials)}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ReadRange returns the cells of readRange as strings. Rows keep the
// ragged shape the API returns.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	start := time.Now()
	rows, err := c.read(ctx, spreadsheetID, readRange)
	if c.observer != nil {
		c.observer.RecordSheetRead(err, time.Since(start))
	}
	return rows, err
}

func (c *Client) read(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values %q: %w", readRange, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (c *Client) service(ctx context.Context) (*gsheets.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svc != nil {
		return c.svc, nil
	}
	key, err := DecodeCredentials(c.credentials)
	if err != nil {
		return nil, err
	}
	opts := append([]option.ClientOption{
		option.WithCredentialsJSON(key),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	}, c.opts...)
	// The service outlives the request that triggered its creation.
	svc, err := gsheets.NewService(context.WithoutCancel(ctx), opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	c.svc = svc
	return svc, nil
}

// DecodeCredentials accepts a service account key as raw JSON or base64
// encoded JSON and returns the JSON bytes.
func DecodeCredentials(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrNoCredentials
	}
	if json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.New("service account credentials are neither JSON nor base64")
	}
	if !json.Valid(decoded) {
		return nil, errors.New("decoded service account credentials are not valid JSON")
	}
	return decoded, nil
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
