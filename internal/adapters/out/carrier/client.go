// Package carrier collects rate quotes from carrier HTTP endpoints.
//
// Each carrier is asked concurrently with a JSON POST:
//
//	{"weight":"4.2","volume":"0.03","origin":"WH-EAST","destination":"10115"}
//
// and answers with its services:
//
//	{"quotes":[{"service":"ground","cost":"12.50","transitDays":5}]}
//
// Timeouts, transport failures, 429 and 5xx answers are retried with
// exponential backoff. A carrier that still fails is left out; the call fails
// only when no carrier answered.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const collaborator = "carrier-quotes"

var _ ports.CarrierQuoteService = (*Client)(nil)

var errNoCarriers = errors.New("no carriers configured")

// Endpoint is one carrier's quote API.
type Endpoint struct {
	Name string
	URL  string
}

type Config struct {
	Endpoints   []Endpoint
	MaxRetries  uint64
	BaseBackoff time.Duration
	// Concurrency caps parallel requests; zero means one per carrier.
	Concurrency int
}

type Client struct {
	http   *http.Client
	config Config
	logger *slog.Logger
}

func NewClient(httpClient *http.Client, config Config, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if config.BaseBackoff <= 0 {
		config.BaseBackoff = 100 * time.Millisecond
	}
	return &Client{
		http:   httpClient,
		config: config,
		logger: logger.With("component", collaborator),
	}
}

type quoteRequest struct {
	Weight      string `json:"weight"`
	Volume      string `json:"volume"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type quoteResponse struct {
	Quotes []struct {
		Service     string `json:"service"`
		Cost        string `json:"cost"`
		TransitDays int    `json:"transitDays"`
	} `json:"quotes"`
}

// Quote returns the quotes of every carrier that answered, in endpoint order.
func (c *Client) Quote(ctx context.Context, shipment rating.ShipmentSpec) ([]rating.Quote, error) {
	if len(c.config.Endpoints) == 0 {
		return nil, errs.NewRetryableError(collaborator, errNoCarriers)
	}

	body, err := json.Marshal(quoteRequest{
		Weight:      shipment.Weight.String(),
		Volume:      shipment.Volume.String(),
		Origin:      shipment.Origin,
		Destination: shipment.Destination,
	})
	if err != nil {
		return nil, err
	}

	perCarrier := make([][]rating.Quote, len(c.config.Endpoints))
	failures := make([]error, len(c.config.Endpoints))

	var g errgroup.Group
	if c.config.Concurrency > 0 {
		g.SetLimit(c.config.Concurrency)
	}
	for i, endpoint := range c.config.Endpoints {
		g.Go(func() error {
			quotes, err := c.quoteCarrier(ctx, endpoint, body)
			if err != nil {
				c.logger.WarnContext(ctx, "carrier left out of rate shopping",
					"carrier", endpoint.Name, "error", err)
				failures[i] = fmt.Errorf("%s: %w", endpoint.Name, err)
				return nil
			}
			perCarrier[i] = quotes
			return nil
		})
	}
	_ = g.Wait()

	quotes := make([]rating.Quote, 0)
	for _, q := range perCarrier {
		quotes = append(quotes, q...)
	}
	if len(quotes) == 0 {
		return nil, errs.NewRetryableError(collaborator, errors.Join(failures...))
	}
	return quotes, nil
}

func (c *Client) quoteCarrier(ctx context.Context, endpoint Endpoint, body []byte) ([]rating.Quote, error) {
	backoff := retry.WithMaxRetries(c.config.MaxRetries, retry.NewExponential(c.config.BaseBackoff))

	var quotes []rating.Quote
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		quotes, err = c.post(ctx, endpoint, body)
		return err
	})
	return quotes, err
}

func (c *Client) post(ctx context.Context, endpoint Endpoint, body []byte) ([]rating.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, retry.RetryableError(fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var decoded quoteResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}

	quotes := make([]rating.Quote, 0, len(decoded.Quotes))
	for _, q := range decoded.Quotes {
		cost, err := decimal.NewFromString(q.Cost)
		if err != nil {
			return nil, fmt.Errorf("quote %s: %w", q.Service, err)
		}
		money, err := kernel.NewMoney(cost)
		if err != nil {
			return nil, fmt.Errorf("quote %s: %w", q.Service, err)
		}
		quote, err := rating.NewQuote(endpoint.Name, q.Service, money, q.TransitDays)
		if err != nil {
			return nil, fmt.Errorf("quote %s: %w", q.Service, err)
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}
