package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/storefront-client/internal/api"
	"github.com/iliyamo/storefront-client/internal/model"
)

// Products holds catalog browsing state independent of any page: the
// current listing with its pagination, the featured strip, the category
// list and the product being viewed.  Listing fields are only ever
// replaced together by a completing fetch, never patched piecemeal.
//
// Rapid filter changes can leave several listing fetches in flight at
// once.  Each fetch takes a monotonically increasing sequence number at
// call start and a completion only writes state while it is still the
// newest issued fetch; stale completions are discarded.  Last started
// wins, regardless of wall-clock completion order.
type Products struct {
	api *api.Client
	log *logrus.Entry

	mu          sync.Mutex
	products    []model.ProductSummary
	featured    []model.ProductSummary
	categories  []model.Category
	current     *model.Product
	totalPages  int
	currentPage int
	searchQuery string
	categoryID  int64
	sortBy      string
	loading     bool
	errMsg      string
	seq         uint64
}

// NewProducts returns an empty product store.
func NewProducts(client *api.Client, log *logrus.Logger) *Products {
	return &Products{
		api: client,
		log: log.WithField("component", "products"),
	}
}

// FetchProducts loads one page of the catalog for the given filter.
// On success products, totalPages and currentPage are replaced in one
// step; readers never observe a partial update.  Pagination state from
// a previous filter is invalid the moment this is called and stays so
// until a fetch completes.
func (p *Products) FetchProducts(ctx context.Context, f model.Filter) error {
	seq := p.beginListing(f.Query, f.CategoryID, f.SortBy)
	page, err := p.api.GetProducts(ctx, f)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		// A newer fetch was started while this one was in flight; its
		// completion owns the state now.
		p.log.WithField("seq", seq).Debug("discarding stale listing response")
		return nil
	}
	if err != nil {
		p.loading = false
		p.errMsg = api.Message(err, "Failed to fetch products")
		p.log.WithField("error", p.errMsg).Warn("listing fetch failed")
		return err
	}
	p.products = page.Content
	p.totalPages = page.TotalPages
	p.currentPage = page.Number
	p.loading = false
	return nil
}

// SearchProducts runs a free-text search.  The result is a single
// unpaginated page: totalPages collapses to 1 and currentPage to 0, so
// callers must not assume prior pagination survives a search.
func (p *Products) SearchProducts(ctx context.Context, query string) error {
	seq := p.beginListing(query, 0, "")
	items, err := p.api.SearchProducts(ctx, query)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		p.log.WithField("seq", seq).Debug("discarding stale search response")
		return nil
	}
	if err != nil {
		p.loading = false
		p.errMsg = api.Message(err, "Failed to search products")
		return err
	}
	p.products = items
	p.totalPages = 1
	p.currentPage = 0
	p.loading = false
	return nil
}

// FetchFeaturedProducts loads the featured strip.  Independent cache:
// listing fetches never invalidate it.
func (p *Products) FetchFeaturedProducts(ctx context.Context) error {
	items, err := p.api.GetFeaturedProducts(ctx)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.errMsg = api.Message(err, "Failed to fetch featured products")
		return err
	}
	p.featured = items
	return nil
}

// FetchCategories loads the category list.  Independent cache, same as
// the featured strip.
func (p *Products) FetchCategories(ctx context.Context) error {
	cats, err := p.api.GetCategories(ctx)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.errMsg = api.Message(err, "Failed to fetch categories")
		return err
	}
	p.categories = cats
	return nil
}

// FetchProductByID loads the detail entity for the product page.
func (p *Products) FetchProductByID(ctx context.Context, id int64) error {
	p.mu.Lock()
	p.loading = true
	p.errMsg = ""
	p.mu.Unlock()

	prod, err := p.api.GetProduct(ctx, id)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.errMsg = api.Message(err, "Failed to fetch product")
		return err
	}
	p.current = prod
	return nil
}

// ClearCurrentProduct drops the viewed product so the next product page
// never flashes a stale detail while its own fetch runs.
func (p *Products) ClearCurrentProduct() {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()
}

// Read accessors.  All pure; none trigger I/O.

func (p *Products) Products() []model.ProductSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.products
}

func (p *Products) Featured() []model.ProductSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.featured
}

func (p *Products) Categories() []model.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.categories
}

func (p *Products) CurrentProduct() *model.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Products) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}

func (p *Products) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentPage
}

func (p *Products) SearchQuery() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.searchQuery
}

func (p *Products) SelectedCategory() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.categoryID
}

func (p *Products) SortBy() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sortBy
}

func (p *Products) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Products) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// ClearError wipes the recorded error message.
func (p *Products) ClearError() {
	p.mu.Lock()
	p.errMsg = ""
	p.mu.Unlock()
}

// beginListing records the caller's filter intent, marks the store
// loading and issues the fetch's sequence number.
func (p *Products) beginListing(query string, categoryID int64, sortBy string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.loading = true
	p.errMsg = ""
	p.searchQuery = query
	p.categoryID = categoryID
	p.sortBy = sortBy
	return p.seq
}
