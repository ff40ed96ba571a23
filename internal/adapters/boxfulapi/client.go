package boxfulapi

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"boxful-client/internal/ports"
)

var (
	_ ports.OrderGateway = (*Client)(nil)
	_ ports.AuthGateway  = (*Client)(nil)
)

const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultTimeout = 10 * time.Second
)

// Client implements ports.OrderGateway and ports.AuthGateway against the
// Boxful REST API.
//
// Every request is bounded by the configured timeout. Idempotent reads are
// retried with exponential backoff; writes are sent once.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
	backoff time.Duration

	mu    sync.RWMutex
	token string
}

// NewClient builds a client for baseURL. A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("boxful api: base url is empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
		backoff: 200 * time.Millisecond,
	}, nil
}

// SetToken sets the bearer token sent with every request. Empty disables it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}
