package indra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/ndexcontent/indraloader/internal/util"
	"github.com/ndexcontent/indraloader/pkg/common"
	"github.com/ndexcontent/indraloader/pkg/logger"
	"github.com/ndexcontent/indraloader/pkg/network"
)

// Client queries the INDRA subgraph REST service.
type Client struct {
	httpClient *http.Client
	endpoint   string
	limiter    *rate.Limiter
	maxRetries int
}

// NewClientParams defines the configuration for creating a Client.
//
// Endpoint defaults to SubgraphEndpoint, Timeout to ten minutes (subgraph
// queries for large networks are slow), RequestsPerSecond to 1, and
// MaxRetries to 3.
type NewClientParams struct {
	Endpoint          string
	Timeout           time.Duration
	RequestsPerSecond float64
	MaxRetries        int
}

// NewClient creates a Client configured with the given parameters.
func NewClient(params NewClientParams) *Client {
	endpoint := params.Endpoint
	if endpoint == "" {
		endpoint = SubgraphEndpoint
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	requestsPerSecond := params.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	maxRetries := params.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		maxRetries: maxRetries,
	}
}

// QuerySubgraph posts the network's node names to the subgraph endpoint
// and decodes the evidence payload. Returns the payload and the request
// duration in whole seconds.
func (c *Client) QuerySubgraph(ctx context.Context, net *network.Network) (*common.Result, int64, error) {
	body, err := json.Marshal(subgraphQuery(net))
	if err != nil {
		return nil, 0, fmt.Errorf("encoding subgraph query: %w", err)
	}

	start := time.Now()
	result, elapsed, err := util.Retry2WithContext(ctx, c.maxRetries,
		func(ctx context.Context) (*common.Result, int64, error) {
			return c.querySubgraphOnce(ctx, body)
		})
	if err != nil {
		return nil, 0, err
	}
	logger.Debug("Subgraph query finished",
		"network", net.Name(), "seconds", time.Since(start).Seconds())
	return result, elapsed, nil
}

func (c *Client) querySubgraphOnce(ctx context.Context, body []byte) (*common.Result, int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("building subgraph request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("posting subgraph query: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading subgraph response: %w", err)
	}
	elapsed := int64(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("subgraph query returned status %d: %s",
			resp.StatusCode, string(payload))
	}

	result, err := common.ParseResult(payload)
	if err != nil {
		return nil, 0, err
	}
	return result, elapsed, nil
}
