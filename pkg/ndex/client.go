// Package ndex provides a minimal client for downloading networks from an
// NDEx server as CX documents.
package ndex

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ndexcontent/indraloader/internal/util"
	"github.com/ndexcontent/indraloader/pkg/network"
)

const DefaultServer = "https://www.ndexbio.org"

type Client struct {
	httpClient *http.Client
	server     string
	username   string
	password   string
	maxRetries int
}

type NewClientParams struct {
	Server   string
	Username string
	Password string
	// Timeout bounds a single download. Defaults to 2 minutes.
	Timeout time.Duration
	// MaxRetries bounds retry attempts per request. Defaults to 3.
	MaxRetries int
}

func NewClient(params NewClientParams) *Client {
	if params.Server == "" {
		params.Server = DefaultServer
	}
	if params.Timeout <= 0 {
		params.Timeout = 2 * time.Minute
	}
	if params.MaxRetries <= 0 {
		params.MaxRetries = 3
	}
	return &Client{
		httpClient: &http.Client{Timeout: params.Timeout},
		server:     strings.TrimSuffix(params.Server, "/"),
		username:   params.Username,
		password:   params.Password,
		maxRetries: params.MaxRetries,
	}
}

// GetNetwork downloads the network with the given UUID and decodes it
// from CX.
func (c *Client) GetNetwork(ctx context.Context, uuid string) (*network.Network, error) {
	data, err := util.RetryWithContext(ctx, c.maxRetries, func(ctx context.Context) ([]byte, error) {
		return c.getNetworkOnce(ctx, uuid)
	})
	if err != nil {
		return nil, err
	}
	net, err := network.FromCX(data)
	if err != nil {
		return nil, fmt.Errorf("decoding network %s: %w", uuid, err)
	}
	net.SetID(uuid)
	return net, nil
}

func (c *Client) getNetworkOnce(ctx context.Context, uuid string) ([]byte, error) {
	url := fmt.Sprintf("%s/v2/network/%s", c.server, uuid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching network %s: %w", uuid, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching network %s: status %d: %s", uuid, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
