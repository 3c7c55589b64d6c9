// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cris is a client for the public FAU CRIS web service. It fetches
// XML infoObject records, normalizes them into attribute-keyed entities, and
// merges the results of multiple request templates into one collection
// unique by identity.
package cris

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/faucris/internal/httputil"
	"github.com/pdiddy/faucris/internal/selector"
	"github.com/pdiddy/faucris/pkg/types"
)

// DefaultBaseURL is the production infoobject endpoint.
const DefaultBaseURL = "https://cris.fau.de/ws-cached/1.0/public/infoobject/"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "faucris/0.1"
)

// Transport resolves one request descriptor into a parsed document.
// Implementations follow redirects transparently and fail on non-success
// status or network errors.
type Transport interface {
	Fetch(ctx context.Context, url string) (*Document, error)
}

// HTTPTransport fetches documents over plain HTTP GET.
type HTTPTransport struct {
	Client     *http.Client
	UserAgent  string
	MaxRetries int
}

// Fetch issues a GET request and parses the response body.
func (t *HTTPTransport) Fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, t.Client, req, t.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("web service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web service returned HTTP %d", resp.StatusCode)
	}

	return ParseDocument(resp.Body)
}

// Client retrieves and merges CRIS entities.
type Client struct {
	// BaseURL is prepended to every request descriptor. Empty means
	// DefaultBaseURL.
	BaseURL string

	// Transport resolves request descriptors. Nil means an HTTPTransport
	// with default settings.
	Transport Transport

	// Warnings receives one line per skipped request descriptor. Nil
	// discards them.
	Warnings io.Writer
}

// New builds a Client from configuration, applying defaults for unset fields.
func New(cfg types.ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		BaseURL: cfg.BaseURL,
		Transport: &HTTPTransport{
			Client:     &http.Client{Timeout: timeout},
			UserAgent:  userAgent,
			MaxRetries: cfg.MaxRetries,
		},
	}
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) warnWriter() io.Writer {
	if c.Warnings == nil {
		return io.Discard
	}
	return c.Warnings
}

// asSelector coerces a filter argument into a Selector. Accepted forms are
// nil (no filtering), an existing *selector.Selector, or a raw criteria map
// which is wrapped implicitly.
func asSelector(filter any) (*selector.Selector, error) {
	switch f := filter.(type) {
	case nil:
		return nil, nil
	case *selector.Selector:
		return f, nil
	case map[string]any:
		return selector.New(f)
	case map[string]string:
		criteria := make(map[string]any, len(f))
		for k, v := range f {
			criteria[k] = v
		}
		return selector.New(criteria)
	default:
		return nil, fmt.Errorf("unsupported filter type %T", filter)
	}
}

// Retrieve fetches every request descriptor in order, splits the surviving
// documents into records of the given kind, normalizes them, and merges the
// entities into one collection keyed by identity.
//
// A transport or parse failure for a single descriptor drops that
// descriptor's contribution and continues: retrieval commonly issues
// alternate request templates for the same id and expects at most one to
// succeed. Duplicate identities across descriptors resolve last-write-wins
// in descriptor order.
func (c *Client) Retrieve(ctx context.Context, reqs []string, kind types.Kind, filter any) (*types.Collection, error) {
	sel, err := asSelector(filter)
	if err != nil {
		return nil, err
	}

	result := types.NewCollection()
	for _, r := range reqs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		doc, err := c.transport().Fetch(ctx, c.baseURL()+r)
		if err != nil {
			fmt.Fprintf(c.warnWriter(), "warning: request %s skipped: %v\n", r, err)
			continue
		}

		for _, rec := range doc.InfoObjects(kind.InfoObjectType()) {
			e := newEntity(rec, kind)
			if e.ID == "" {
				continue
			}
			if sel != nil && !sel.Evaluate(e) {
				continue
			}
			result.Put(e)
		}
	}
	return result, nil
}

func (c *Client) transport() Transport {
	if c.Transport == nil {
		return &HTTPTransport{
			Client:    &http.Client{Timeout: defaultTimeout},
			UserAgent: defaultUserAgent,
		}
	}
	return c.Transport
}

// fetch expands the id argument against every request template and retrieves
// the result. name is the domain term used in id error messages.
func (c *Client) fetch(ctx context.Context, name string, kind types.Kind, templates []string, ids any, filter any) (*types.Collection, error) {
	idList, err := parseIDs(name, ids)
	if err != nil {
		return nil, err
	}
	return c.Retrieve(ctx, expandRequests(idList, templates), kind, filter)
}
