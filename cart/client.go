package cart

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

	"storefront/models"
)

const (
	// Client-wide retry policy: two attempts with exponential backoff.
	// Only transport errors and 5xx responses are retried.
	requestAttempts = 2
	retryBaseDelay  = 250 * time.Millisecond
)

// APIError is a non-2xx response from the catalog server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// Client speaks the storefront REST API.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out struct {
		Products []models.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) Product(ctx context.Context, id uint) (*models.Product, error) {
	var out struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var out struct {
		Products []models.Product `json:"products"`
	}
	path := "/api/products/category/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	var out struct {
		Products []models.Product `json:"products"`
	}
	path := "/api/products/search/" + url.PathEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	var out struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/products", product, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

// UpdateProduct sends a partial payload; only the fields present in patch
// are overwritten server-side.
func (c *Client) UpdateProduct(ctx context.Context, id uint, patch interface{}) (*models.Product, error) {
	var out struct {
		Product *models.Product `json:"product"`
	}
	path := fmt.Sprintf("/api/admin/products/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, patch, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var out struct {
		Category *models.Category `json:"category"`
	}
	path := "/api/categories/" + url.PathEscape(slug)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Category, nil
}

func (c *Client) SiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	var out struct {
		Settings *models.SiteSettings `json:"settings"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/settings", nil, &out); err != nil {
		return nil, err
	}
	return out.Settings, nil
}

func (c *Client) UpdateSiteSettings(ctx context.Context, patch interface{}) (*models.SiteSettings, error) {
	var out struct {
		Settings *models.SiteSettings `json:"settings"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/admin/settings", patch, &out); err != nil {
		return nil, err
	}
	return out.Settings, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	var lastErr error
	for attempt := 0; attempt < requestAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBaseDelay << (attempt - 1)):
			}
		}

		err := c.roundTrip(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 {
			return err // client errors don't get better on retry
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var failure struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(resp.Body)
		json.Unmarshal(raw, &failure)
		message := failure.Error
		if message == "" {
			message = failure.Message
		}
		if message == "" {
			message = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
