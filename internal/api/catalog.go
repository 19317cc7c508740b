package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/iliyamo/storefront-client/internal/model"
)

// Catalog endpoints are public.  They are deliberately not tagged as
// authenticated so a misbehaving 401 from the backend can never wipe a
// stored session while the user is just browsing.

// GetProducts fetches one page of the catalog.  Only fields the caller
// actually set are sent; the backend's defaults cover the rest, and the
// client adds no price bounds of its own.
func (c *Client) GetProducts(ctx context.Context, f model.Filter) (model.Page[model.ProductSummary], error) {
	return getJSON[model.Page[model.ProductSummary]](ctx, c, "/api/products", filterQuery(f), false)
}

// filterQuery maps a Filter onto the backend's listing parameters.  The
// "newest" sort key has no backend column; it translates to a descending
// sort on the creation timestamp, matching what the product pages send.
func filterQuery(f model.Filter) url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("search", f.Query)
	}
	if f.CategoryID > 0 {
		q.Set("categoryId", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.MinPrice != nil {
		q.Set("minPrice", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", f.MaxPrice.String())
	}
	switch f.SortBy {
	case "":
	case model.SortByNewest:
		q.Set("sort", "createdAt,desc")
	default:
		q.Set("sort", f.SortBy)
	}
	if f.SortDirection != "" {
		q.Set("order", f.SortDirection)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		q.Set("size", strconv.Itoa(f.Size))
	}
	return q
}

// GetProduct fetches the full detail entity for one product.
func (c *Client) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return getJSON[*model.Product](ctx, c, "/api/products/"+strconv.FormatInt(id, 10), nil, false)
}

// SearchProducts runs a free-text search and returns the rows without a
// pagination envelope.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]model.ProductSummary, error) {
	q := url.Values{}
	q.Set("query", query)
	return getJSON[[]model.ProductSummary](ctx, c, "/api/products/search", q, false)
}

// GetFeaturedProducts fetches the curated featured strip.
func (c *Client) GetFeaturedProducts(ctx context.Context) ([]model.ProductSummary, error) {
	return getJSON[[]model.ProductSummary](ctx, c, "/api/products/featured", nil, false)
}

// GetCategories fetches all categories.
func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	return getJSON[[]model.Category](ctx, c, "/api/categories", nil, false)
}

// GetCategory fetches one category by ID.
func (c *Client) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return getJSON[*model.Category](ctx, c, "/api/categories/"+strconv.FormatInt(id, 10), nil, false)
}
