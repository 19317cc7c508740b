package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products in the catalog.
//
// Fields:
//  ID          – primary key identifier of the category.
//  Name        – unique category name.
//  Description – optional description text.
//  ImageURL    – optional banner image.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Product is the full catalog entity returned by the detail endpoint.
// Money fields decode through shopspring/decimal so server-reported
// prices never pass through a float.
//
// Fields:
//  ID            – primary key identifier of the product.
//  Name          – display name.
//  Description   – long description text.
//  Price         – current unit price.
//  OriginalPrice – pre-discount price, zero when the product is not discounted.
//  Stock         – units available as of the fetch.
//  ImageURL      – main product image.
//  Category      – owning category.
//  Featured      – whether the product appears in the featured strip.
//  Rating        – aggregate rating, 0..5.
//  ReviewCount   – number of reviews behind the rating.
//  CreatedAt     – timestamp of creation.
//  UpdatedAt     – timestamp of last update.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice,omitempty"`
	Stock         int             `json:"stock"`
	ImageURL      string          `json:"imageUrl"`
	Category      Category        `json:"category"`
	Featured      bool            `json:"featured"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductSummary is the slimmer row shape used by listing and search
// responses.  The category is flattened to an ID and a name.
type ProductSummary struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ImageURL     string          `json:"imageUrl"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Rating       float64         `json:"rating,omitempty"`
}

// Sort keys and directions accepted by Filter.  Anything else is passed
// through untouched and left to the backend's defaults.
const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByRating = "rating"
	SortByNewest = "newest"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter describes one catalog listing request.  Zero values mean "not
// set": the field is omitted from the query string and the backend's
// default applies.  The client imposes no default price bounds of its
// own.
//
// Fields:
//  Query         – free-text search term.
//  CategoryID    – restrict results to a single category.
//  MinPrice      – inclusive lower price bound, nil when unset.
//  MaxPrice      – inclusive upper price bound, nil when unset.
//  SortBy        – one of the SortBy* keys.
//  SortDirection – SortAsc or SortDesc.
//  Page          – zero-based page index.
//  Size          – page size.
type Filter struct {
	Query         string
	CategoryID    int64
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	SortBy        string
	SortDirection string
	Page          int
	Size          int
}

// Page is the Spring-style pagination envelope the listing endpoint
// wraps its rows in.
//
// Fields:
//  Content       – rows of the current page.
//  TotalElements – total matching rows across all pages.
//  TotalPages    – total number of pages for the active filter.
//  Size          – requested page size.
//  Number        – zero-based index of this page.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}
