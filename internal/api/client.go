package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"waiter/internal/models"
	"waiter/internal/session"
)

// Client handles requests to the restaurant backend. Every authenticated
// call reads the bearer token fresh from the session store, so a cleared or
// rotated token takes effect on the next request without a restart.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sessions   *session.Store
	log        zerolog.Logger

	orderPageSize   int
	productPageSize int
	browsePageSize  int
	userPageSize    int
}

// Options tune page sizes and the request timeout. Zero values fall back to
// the backend's conventional sizes.
type Options struct {
	Timeout         time.Duration
	OrderPageSize   int
	ProductPageSize int
	BrowsePageSize  int
	UserPageSize    int
}

func (o Options) withDefaults() Options {
	if o.Timeout == 0 {
		o.Timeout = 10 * time.Second
	}
	if o.OrderPageSize == 0 {
		o.OrderPageSize = 50
	}
	if o.ProductPageSize == 0 {
		o.ProductPageSize = 50
	}
	if o.BrowsePageSize == 0 {
		o.BrowsePageSize = 30
	}
	if o.UserPageSize == 0 {
		o.UserPageSize = 100
	}
	return o
}

// NewClient creates an API client for the given base URL. The session store
// is an explicit dependency: whoever owns the client decides where tokens
// live.
func NewClient(baseURL string, sessions *session.Store, log zerolog.Logger, opts Options) *Client {
	opts = opts.withDefaults()
	return &Client{
		httpClient:      &http.Client{Timeout: opts.Timeout},
		baseURL:         baseURL,
		sessions:        sessions,
		log:             log.With().Str("component", "api").Logger(),
		orderPageSize:   opts.OrderPageSize,
		productPageSize: opts.ProductPageSize,
		browsePageSize:  opts.BrowsePageSize,
		userPageSize:    opts.UserPageSize,
	}
}

// envelope is the {content: [...]} wrapper the list endpoints return.
type envelope[T any] struct {
	Content []T `json:"content"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates and returns the issued session token. It is the only
// call that goes out without a bearer header.
func (c *Client) Login(ctx context.Context, login, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Login: login, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login/autenticar", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp loginResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListUsers retrieves one page of active staff accounts.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	q := url.Values{}
	q.Set("size", fmt.Sprint(c.userPageSize))
	q.Set("statusFuncionario", "ativo")

	req, err := c.authedRequest(ctx, http.MethodGet, "/login/status?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp envelope[models.User]
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// CreateUser registers a new staff account.
func (c *Client) CreateUser(ctx context.Context, user models.NewUser) error {
	body, err := json.Marshal(user)
	if err != nil {
		return err
	}
	req, err := c.authedRequest(ctx, http.MethodPost, "/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

// DeleteUser removes the staff account with the given id.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	req, err := c.authedRequest(ctx, http.MethodDelete, fmt.Sprintf("/login/%d", id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ListProducts retrieves one page of active products across all categories.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	q := url.Values{}
	q.Set("statusGeral", "ATIVO")
	q.Set("size", fmt.Sprint(c.productPageSize))
	return c.fetchProducts(ctx, q)
}

// ListProductsByCategory retrieves one page of active products of a single
// category, used when browsing the menu during order creation.
func (c *Client) ListProductsByCategory(ctx context.Context, cat models.Category) ([]models.Product, error) {
	q := url.Values{}
	q.Set("statusGeral", "ATIVO")
	q.Set("tipoProduto", string(cat))
	q.Set("size", fmt.Sprint(c.browsePageSize))
	return c.fetchProducts(ctx, q)
}

func (c *Client) fetchProducts(ctx context.Context, q url.Values) ([]models.Product, error) {
	req, err := c.authedRequest(ctx, http.MethodGet, "/produto/status?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var resp envelope[models.Product]
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// DeleteProduct removes the product with the given id.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	req, err := c.authedRequest(ctx, http.MethodDelete, fmt.Sprintf("/produto/%d", id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ListOrders retrieves one page of open orders whose process status matches
// the given filter, items nested.
func (c *Client) ListOrders(ctx context.Context, status models.Status) ([]models.Order, error) {
	q := url.Values{}
	q.Set("statusProcesso", string(status))
	q.Set("size", fmt.Sprint(c.orderPageSize))

	req, err := c.authedRequest(ctx, http.MethodGet, "/pedido/status?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp envelope[models.Order]
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// UpdateItemStatus transitions one order item's status-control record. The
// server validates whether the transition is legal; the client just asks.
func (c *Client) UpdateItemStatus(ctx context.Context, controlID int, update models.StatusUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return err
	}
	req, err := c.authedRequest(ctx, http.MethodPut, fmt.Sprintf("/controle-status-item-pedido/%d", controlID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

// authedRequest builds a request with the bearer header attached from the
// current session.
func (c *Client) authedRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	token, err := c.sessions.Read()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

// do executes the request and decodes a 2xx JSON body into out when out is
// non-nil. Error responses become *ServerError carrying the backend's
// message when one is present, the raw body otherwise.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("request failed")
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func serverError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	// Prefer the backend's message field; some endpoints answer plain text.
	var payload struct {
		Message string `json:"message"`
	}
	msg := string(bytes.TrimSpace(body))
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	return &ServerError{StatusCode: resp.StatusCode, Message: msg}
}
