// Package catalog is a thin accessor for the external product catalog
// API. Failures never reach callers as errors: listings degrade to
// empty results and lookups to not-found, with the cause logged. Empty
// data is therefore indistinguishable from "no results".
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"context"

	"storefront/internal/domain"
)

// DefaultBaseURL points at the public Fake Store API.
const DefaultBaseURL = "https://fakestoreapi.com"

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (c *Client) ListProducts(ctx context.Context) []domain.Product {
	var products []domain.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		c.logger.Printf("catalog: list products: %v", err)
		return []domain.Product{}
	}
	return products
}

func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		c.logger.Printf("catalog: get product %d: %v", id, err)
		return nil, domain.ErrNotFound
	}
	if product.ID == 0 {
		return nil, domain.ErrNotFound
	}
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) []string {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		c.logger.Printf("catalog: list categories: %v", err)
		return []string{}
	}
	return categories
}

func (c *Client) ListProductsByCategory(ctx context.Context, category string) []domain.Product {
	var products []domain.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.getJSON(ctx, path, &products); err != nil {
		c.logger.Printf("catalog: list category %q: %v", category, err)
		return []domain.Product{}
	}
	return products
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
