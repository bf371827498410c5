package calcom

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

// Client talks to the Cal.com v1 API. Every request carries the API key as
// the apiKey query parameter and waits on a shared outbound limiter.
type Client struct {
	baseURL    string
	apiKey     string
	username   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewClient(cfg config.ProviderConfig, logger *slog.Logger) *Client {
	perSecond := rate.Limit(cfg.OutboundPerSecond)
	if cfg.OutboundPerSecond <= 0 {
		perSecond = rate.Inf
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		username: cfg.Username,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(perSecond, max(1, int(cfg.OutboundPerSecond))),
		logger:  logger,
	}
}

// Username is the account scoping slot queries, empty when unset.
func (c *Client) Username() string {
	return c.username
}

type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body any) (*response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal request body")
	}
	return c.do(ctx, http.MethodPost, path, query, data)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, "outbound rate limit wait aborted", 0, "", err)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("apiKey", c.apiKey)
	endpoint := c.baseURL + path + "?" + query.Encode()

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, method+" "+path+" failed", 0, "", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, "failed to read response body", resp.StatusCode, "", err)
	}

	c.logger.Debug("Provider call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	return &response{status: resp.StatusCode, body: respBody}, nil
}

// expectOK turns a non-2xx answer into an UPSTREAM_STATUS gateway error.
func (c *Client) expectOK(resp *response, msg string) error {
	if resp.ok() {
		return nil
	}
	return infra.WrapGatewayErr(c.logger, infra.KindUpstreamStatus, msg, resp.status, string(resp.body), nil)
}

func (c *Client) decode(resp *response, target any, msg string) error {
	if err := json.Unmarshal(resp.body, target); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindDecode, msg, resp.status, string(resp.body), err)
	}
	return nil
}
