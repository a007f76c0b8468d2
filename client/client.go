package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	Username  string
	Password  string
	BaseURL   string
	UserAgent string
	// Strict makes transport and decode failures come back as the returned
	// error instead of only being recorded on the Result.
	Strict bool
}

type Args struct {
	Config     Config
	HTTPClient *http.Client
}

// Client talks to one account of the service. It keeps no per-call state and
// may be shared between goroutines.
type Client struct {
	username  string
	password  string
	baseURL   string
	userAgent string
	strict    bool
	client    *http.Client
}

func New(args Args) *Client {
	cfg := args.Config
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client := args.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		username:  cfg.Username,
		password:  cfg.Password,
		baseURL:   baseURL,
		userAgent: userAgent,
		strict:    cfg.Strict,
		client:    client,
	}
}

// Result carries the decoded value of one call together with the HTTP
// status of its response. Err records a transport or decode failure; Value
// then holds the empty default.
type Result[T any] struct {
	Value      T
	HTTPStatus int
	Err        error
}

func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

// fetch executes one request and returns the cleaned body text. The body is
// always drained and closed so the connection goes back to the pool.
func (c *Client) fetch(ctx context.Context, ep endpoint, params Params) (string, int, error) {
	req, err := c.buildRequest(ctx, ep, params)
	if err != nil {
		return "", 0, fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}
	text, err := decodeText(raw)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("%w: utf-8: %w", ErrDecode, err)
	}
	return stripDoctypes(text, ep.doctypes), resp.StatusCode, nil
}

func call[T any](ctx context.Context, c *Client, ep endpoint, params Params, empty T, decode func(doc string) (T, error)) (Result[T], error) {
	logger := logutil.GetLogger(ctx).With(zap.String("endpoint", ep.path))
	res := Result[T]{Value: empty}
	doc, status, err := c.fetch(ctx, ep, params)
	res.HTTPStatus = status
	if err == nil {
		var v T
		if v, err = decode(doc); err != nil {
			err = fmt.Errorf("%w: %w", ErrDecode, err)
		} else {
			res.Value = v
		}
	}
	if err != nil {
		logger.Error("simpy call failed", zap.Int("http_status", status), zap.Error(err))
		res.Err = err
		if c.strict {
			return res, err
		}
		return res, nil
	}
	logger.Debug("simpy call finished", zap.Int("http_status", status))
	return res, nil
}
