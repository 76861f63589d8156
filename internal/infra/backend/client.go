// Package backend implements the remote API gateway: a single HTTP
// client bound to the ordering backend's base address, with session
// credentials carried in a cookie jar. Every other component talks to
// the backend through the service interfaces implemented here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	domainerrors "crave/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionCookieName is the cookie the backend sets on login.
const sessionCookieName = "jwt"

// Client is the shared HTTP transport to the ordering backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the gateway client.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds the gateway client from configuration. The cookie jar
// is device-scoped: one kiosk, one backend session.
func NewClient(params ClientParams) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimSuffix(params.Config.Backend.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid backend base URL %s", params.Config.Backend.BaseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cookie jar")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: params.Config.Backend.Timeout,
		},
		logger: params.Logger,
	}, nil
}

// backendErrorBody is the error envelope the backend responds with.
type backendErrorBody struct {
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// do issues one request and decodes the response. Non-2xx responses are
// mapped to BackendError carrying the backend's message verbatim, so the
// view layer can surface it unchanged.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	c.logger.Debug("backend request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "backend request %s %s failed", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody backendErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&errBody)

		return domainerrors.NewBackendError(resp.StatusCode, errBody.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response of %s %s", method, path)
	}

	return nil
}

// clearSession drops all cookies for the backend host. Called on logout
// so a stale session token never leaks into the next operator's session.
func (c *Client) clearSession() {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return
	}
	c.httpClient.Jar = jar
}

// SessionExpiresAt reports when the backend session cookie expires, read
// from the unverified JWT claims. Verification belongs to the backend;
// the kiosk only uses the expiry to prompt a re-login before it lapses.
func (c *Client) SessionExpiresAt() (time.Time, bool) {
	cookies := c.httpClient.Jar.Cookies(c.baseURL)
	for _, cookie := range cookies {
		if cookie.Name != sessionCookieName {
			continue
		}
		token, _, err := jwt.NewParser().ParseUnverified(cookie.Value, jwt.MapClaims{})
		if err != nil {
			return time.Time{}, false
		}
		exp, err := token.Claims.GetExpirationTime()
		if err != nil || exp == nil {
			return time.Time{}, false
		}

		return exp.Time, true
	}

	return time.Time{}, false
}
