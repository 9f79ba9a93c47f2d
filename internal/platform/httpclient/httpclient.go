// Package httpclient es el cliente del API de petpal (usado por `petpal status`).
package httpclient

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
)

const (
	DefaultTimeout = 10 * time.Second

	// Igual a middleware.UserHeader; se repite para no importar el lado servidor.
	userHeader = "X-User-Email"

	maxBody = 1 << 20
)

// Client habla con un server petpal. User, si no es vacío, viaja en X-User-Email;
// si no, el server usa su puntero de sesión.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	User    string
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	return NewWithTransport(baseURL, timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(baseURL string, timeout time.Duration, tr http.RoundTripper) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("httpclient: base url required")
	}
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url: %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout, Transport: tr},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// IsStatus indica si err es un HTTPError con ese código.
func IsStatus(err error, code int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == code
}

type Session struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
}

type Status struct {
	Healthy bool
	Session Session
	Points  int
}

// Health devuelve nil si /health responde "ok".
func (c *Client) Health(ctx context.Context) error {
	raw, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	if body := strings.TrimSpace(string(raw)); body != "ok" {
		return fmt.Errorf("httpclient: unexpected health body %q", body)
	}
	return nil
}

func (c *Client) Session(ctx context.Context) (Session, error) {
	var s Session
	err := c.DoJSON(ctx, http.MethodGet, "/session", nil, &s)
	return s, err
}

func (c *Client) Points(ctx context.Context) (int, error) {
	var resp struct {
		Points int `json:"points"`
	}
	if err := c.DoJSON(ctx, http.MethodGet, "/points", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Points, nil
}

// Status junta health, sesión y puntos. Sin usuario no pide puntos.
func (c *Client) Status(ctx context.Context) (Status, error) {
	if err := c.Health(ctx); err != nil {
		return Status{}, err
	}
	st := Status{Healthy: true}

	s, err := c.Session(ctx)
	if err != nil {
		return st, err
	}
	st.Session = s

	if !s.Authenticated && c.User == "" {
		return st, nil
	}
	pts, err := c.Points(ctx)
	if err != nil {
		return st, err
	}
	st.Points = pts
	return st, nil
}

// DoJSON envía in (si no es nil) como JSON y decodifica la respuesta en out (si no es nil).
// Retorna *HTTPError si el status no es 2xx.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("httpclient: nil client")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if u := strings.TrimSpace(c.User); u != "" {
		req.Header.Set(userHeader, u)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}
