// Package gateway is the client's only path to the remote commerce API: one
// request/response round trip per resource, JSON decoding, and nothing else.
// No call is retried; a decode failure is surfaced the same way as a
// transport failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/storefront/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

const (
	defaultBaseURL             = "http://localhost:8000"
	errorBodyReadLimit   int64 = 1024
	defaultClientTimeout       = 10 * time.Second
)

// Client wraps the commerce API endpoints the storefront consumes.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds a commerce API client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = defaultBaseURL
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultClientTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client
}

type loginRequest struct {
	Email string `json:"email"`
}

type loginResponse struct {
	User    catalog.User `json:"user"`
	Message string       `json:"message"`
}

// Login authenticates the demo identity and returns the session user.
func (c *Client) Login(ctx context.Context, email string) (*catalog.User, error) {
	var decoded loginResponse
	if err := c.do(ctx, http.MethodPost, "/demo/login", loginRequest{Email: email}, &decoded); err != nil {
		return nil, err
	}
	return &decoded.User, nil
}

// ListProducts fetches the full catalog. An empty slice is a valid result.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetCart fetches the user's current cart in full.
func (c *Client) GetCart(ctx context.Context, userID int) ([]catalog.CartItem, error) {
	var items []catalog.CartItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/cart", userID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type addToCartRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// AddToCart adds quantity units of a product to the user's cart.
func (c *Client) AddToCart(ctx context.Context, userID, productID, quantity int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/cart", userID), addToCartRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// RemoveFromCart deletes one cart item.
func (c *Client) RemoveFromCart(ctx context.Context, userID, itemID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/cart/%d", userID, itemID), nil, nil)
}

// Checkout converts the user's cart into an order server-side.
func (c *Client) Checkout(ctx context.Context, userID int) (*catalog.CheckoutResult, error) {
	var result catalog.CheckoutResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/checkout", userID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListOrders fetches the user's past orders.
func (c *Client) ListOrders(ctx context.Context, userID int) ([]catalog.Order, error) {
	var orders []catalog.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/orders", userID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, dest any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "marshal request body")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("execute %s %s", method, path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeTransport,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
			fmt.Sprintf("%s %s failed", method, path))
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDecode, err, fmt.Sprintf("decode %s %s response", method, path))
	}
	return nil
}
