package apod

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"apodwall/pkg/config"
	errs "apodwall/pkg/errors"
	"apodwall/pkg/logger"
)

// Client fetches pages and images over HTTP(S)
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	logger     logger.Logger
}

// NewTransport builds the transport used by NewClient. When
// cfg.InsecureSkipVerify is set, TLS certificates are not verified.
func NewTransport(cfg config.HTTPConfig) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // matches the upstream tool
	}
	return transport
}

// NewClient creates a new client
func NewClient(cfg config.HTTPConfig, log logger.Logger) *Client {
	return NewClientWithTransport(cfg, NewTransport(cfg), log)
}

// NewClientWithTransport creates a client on top of a caller supplied transport
func NewClientWithTransport(cfg config.HTTPConfig, rt http.RoundTripper, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	headers := map[string]string{
		"Accept": "text/html,image/jpeg,*/*;q=0.8",
	}
	if cfg.UserAgent != "" {
		headers["User-Agent"] = cfg.UserAgent
	}

	return &Client{
		httpClient: &http.Client{
			Transport: rt,
			Timeout:   cfg.Timeout,
			// Redirects are returned to the caller, never followed.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		headers: headers,
		logger:  log,
	}
}

// DefaultPort returns the port a scheme is always sent to
func DefaultPort(scheme string) string {
	if scheme == "https" {
		return "443"
	}
	return "80"
}

// pinPort rewrites u so that its port is the scheme default
func pinPort(u *url.URL) {
	u.Host = net.JoinHostPort(u.Hostname(), DefaultPort(u.Scheme))
}

// Get performs a GET request and reads the whole body. A non-2xx status,
// redirects included, is returned as a normal response; only transport
// failures are errors.
func (c *Client) Get(rawURL string) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeNetwork, err, "invalid URL %q", rawURL)
	}
	host := u.Hostname()
	pinPort(u)

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeNetwork, err, "failed to create request: %v", err)
	}
	req.Host = host
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    rawURL,
		"port":   u.Port(),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"url":      rawURL,
			"error":    err.Error(),
			"duration": time.Since(start),
		})
		return nil, errs.New(errs.ErrorTypeNetwork, err, "GET %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
			Err:     err,
		}
	}

	logger.LogRequest(c.logger, req.Method, rawURL, resp.StatusCode, time.Since(start))

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
