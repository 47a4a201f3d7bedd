package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"brims/internal/config"
	"brims/internal/domain"
	"brims/pkg/e"
)

// Client talks to the remote incident API. It implements service.Backend.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

func New(cfg config.RemoteConfig) (*Client, error) {
	const op = "client.New"

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s: base url %q: %w", op, cfg.BaseURL, e.ErrInvalidInput)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:  base,
		token: cfg.Token,
		http:  &http.Client{Timeout: timeout},
	}, nil
}

type errorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

func (c *Client) ListIncidents(ctx context.Context, scope domain.Scope) ([]domain.Incident, error) {
	const op = "client.Client.ListIncidents"

	var out []domain.Incident
	if err := c.do(ctx, http.MethodGet, "/incidents", scopeQuery(scope), nil, &out); err != nil {
		return nil, e.Wrap(op, err)
	}
	if out == nil {
		out = []domain.Incident{}
	}
	return out, nil
}

func (c *Client) ListStats(ctx context.Context, scope domain.Scope) (domain.IncidentStats, error) {
	const op = "client.Client.ListStats"

	var out domain.IncidentStats
	if err := c.do(ctx, http.MethodGet, "/incidents/stats", scopeQuery(scope), nil, &out); err != nil {
		return domain.IncidentStats{}, e.Wrap(op, err)
	}
	return out, nil
}

func (c *Client) CreateIncident(ctx context.Context, payload domain.IncidentPayload) (*domain.Incident, error) {
	const op = "client.Client.CreateIncident"

	var out domain.Incident
	if err := c.do(ctx, http.MethodPost, "/incidents", nil, payload, &out); err != nil {
		return nil, e.Wrap(op, err)
	}
	return &out, nil
}

func (c *Client) UpdateIncident(ctx context.Context, id string, patch domain.IncidentPatch) (*domain.Incident, error) {
	const op = "client.Client.UpdateIncident"

	var out domain.Incident
	if err := c.do(ctx, http.MethodPatch, "/incidents/"+url.PathEscape(id), nil, patch, &out); err != nil {
		return nil, e.Wrap(op, err)
	}
	return &out, nil
}

func (c *Client) DeleteIncident(ctx context.Context, id string) error {
	const op = "client.Client.DeleteIncident"

	if err := c.do(ctx, http.MethodDelete, "/incidents/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *Client) SaveSubRecord(ctx context.Context, incidentID string, kind domain.SubRecordKind, payload any) error {
	const op = "client.Client.SaveSubRecord"

	path := "/incidents/" + url.PathEscape(incidentID) + "/" + string(kind)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, nil); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	const op = "client.Client.MarkNotificationRead"

	if err := c.do(ctx, http.MethodPost, "/notifications/"+url.PathEscape(id)+"/read", nil, nil, nil); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	const op = "client.Client.MarkAllNotificationsRead"

	if err := c.do(ctx, http.MethodPost, "/notifications/read-all", nil, nil, nil); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *Client) DeleteAllNotifications(ctx context.Context) error {
	const op = "client.Client.DeleteAllNotifications"

	if err := c.do(ctx, http.MethodDelete, "/notifications", nil, nil, nil); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func scopeQuery(scope domain.Scope) url.Values {
	if scope.All() {
		return nil
	}
	return url.Values{"barangay": []string{scope.Barangay}}
}

// do sends a request to the base URL plus path. path is already escaped;
// ids must go through url.PathEscape so a '/' inside one stays a single segment.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := *c.base
	u.RawPath = c.base.EscapedPath() + path
	unescaped, err := url.PathUnescape(u.RawPath)
	if err != nil {
		return fmt.Errorf("build path: %w", err)
	}
	u.Path = unescaped
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return e.ErrDeadline
			}
			return e.ErrCanceled
		}
		return fmt.Errorf("%w: %v", e.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", e.ErrTransport, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var payload errorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &payload)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return e.ErrUnauthorized
	case http.StatusNotFound:
		return e.ErrNotFound
	case http.StatusConflict:
		return e.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		fields := payload.Errors
		if len(fields) == 0 {
			msg := payload.Error
			if msg == "" {
				msg = resp.Status
			}
			fields = map[string]string{"request": msg}
		}
		return &e.ValidationError{Fields: fields}
	}
	return fmt.Errorf("%w: %s", e.ErrTransport, resp.Status)
}
