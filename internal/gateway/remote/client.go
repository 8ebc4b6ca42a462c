// Package remote implements the gateway ports against the upstream tracker
// API over HTTP. The upstream authenticates with a session cookie, so the
// client carries a cookie jar; Login must be called before data endpoints.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"fintrack/internal/core"
	"fintrack/internal/gateway"
)

const (
	// The upstream specifies no timeout; one is imposed here so a dead
	// backend degrades to a visible error instead of a hang.
	defaultTimeout = 10 * time.Second

	maxRetries = 3
)

var _ gateway.Gateway = (*Client)(nil)

type Client struct {
	base  *url.URL
	http  *http.Client
	email string // session email, sent with addData writes
}

func New(baseURL string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	return &Client{
		base: u,
		http: &http.Client{Jar: jar, Timeout: defaultTimeout},
	}, nil
}

// Login opens the upstream session and records the email used for
// subsequent writes.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, err := c.post(ctx, "/Auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	rep, err := parseStatus(body)
	if err != nil {
		return fmt.Errorf("parse login reply: %w", err)
	}
	if !rep.Success {
		return fmt.Errorf("%w: %s", gateway.ErrRejected, rep.Message)
	}
	c.email = email
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.post(ctx, "/Auth/logout", struct{}{})
	c.email = ""
	return err
}

func (c *Client) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	body, err := c.get(ctx, "/Data/getAlldata")
	if err != nil {
		return nil, err
	}
	txns, status, err := parseAllData(body)
	if err != nil {
		return nil, fmt.Errorf("parse getAlldata reply: %w", err)
	}
	if !status.Success {
		return nil, fmt.Errorf("%w: %s", gateway.ErrRejected, status.Message)
	}
	return txns, nil
}

func (c *Client) AddTransaction(ctx context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}

	body, err := c.post(ctx, "/Data/addData", addDataRequest{
		Name:   tx.Category,
		Source: tx.Source,
		Email:  c.email,
		Date:   tx.Date,
		Amount: tx.Amount,
		Icon:   tx.Icon,
	})
	if err != nil {
		return "", err
	}

	rep, err := parseStatus(body)
	if err != nil {
		return "", fmt.Errorf("parse addData reply: %w", err)
	}
	if !rep.Success {
		return "", fmt.Errorf("%w: %s", gateway.ErrRejected, rep.Message)
	}
	// The upstream does not always echo the created record. When it sends
	// an id, prefer it over the locally generated one.
	if rep.ID != "" {
		return rep.ID, nil
	}
	return tx.ID, nil
}

func (c *Client) GetProfile(ctx context.Context) (core.Profile, error) {
	body, err := c.get(ctx, "/Users/getUser")
	if err != nil {
		return core.Profile{}, err
	}
	p, err := parseProfile(body)
	if err != nil {
		return core.Profile{}, fmt.Errorf("parse getUser reply: %w", err)
	}
	return p, nil
}

// get performs a GET with exponential backoff. Only GETs retry: addData is
// not idempotent and a retried POST could duplicate a transaction.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		res, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		body, err = io.ReadAll(res.Body)
		if err != nil {
			return err
		}
		if res.StatusCode >= 500 {
			return fmt.Errorf("upstream %s: status %d", path, res.StatusCode)
		}
		if res.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("upstream %s: status %d", path, res.StatusCode))
		}
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx))
	if err != nil {
		slog.ErrorContext(ctx, "Upstream GET failed", "path", path, "error", err)
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	return body, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "Upstream POST failed", "path", path, "error", err)
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s reply: %w", path, err)
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("post %s: status %d", path, res.StatusCode)
	}
	return body, nil
}

func (c *Client) endpoint(path string) string {
	return c.base.String() + path
}
