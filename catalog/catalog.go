// Package catalog serves a product list one page at a time with optional
// name search and sorting.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrBadPage indicates page < 1 or limit < 1.
	ErrBadPage = errors.New("catalog: page and limit must be positive")

	// ErrBadSortField indicates an unknown SortBy value.
	ErrBadSortField = errors.New("catalog: unknown sort field")

	// ErrBadOrder indicates an Order other than asc or desc.
	ErrBadOrder = errors.New("catalog: order must be asc or desc")
)

// Product is one catalog entry.
type Product struct {
	ID    int     `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// Query selects a page. Empty SortBy keeps catalog order; empty Order is asc.
type Query struct {
	Page   int
	Limit  int
	Search string // case-insensitive substring of Name
	SortBy string // "", "id", "name" or "price"
	Order  string // "", "asc" or "desc"
}

// Page is one slice of the filtered, sorted result.
type Page struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	HasNext    bool      `json:"has_next"`
}

var comparators = map[string]func(a, b Product) int{
	"id":    func(a, b Product) int { return cmp.Compare(a.ID, b.ID) },
	"name":  func(a, b Product) int { return strings.Compare(a.Name, b.Name) },
	"price": func(a, b Product) int { return cmp.Compare(a.Price, b.Price) },
}

// Catalog is an immutable product list; safe for concurrent reads.
type Catalog struct {
	products []Product
}

// New copies products into a Catalog.
func New(products []Product) *Catalog {
	return &Catalog{products: slices.Clone(products)}
}

// Get returns the product with id.
func (c *Catalog) Get(id int) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// List filters, sorts and slices the catalog. A page past the end yields
// no items but still reports totals. Sorting is stable in both directions.
func (c *Catalog) List(q Query) (Page, error) {
	// 1) Validate.
	if q.Page < 1 || q.Limit < 1 {
		return Page{}, fmt.Errorf("%w: page=%d limit=%d", ErrBadPage, q.Page, q.Limit)
	}
	var less func(a, b Product) int
	if q.SortBy != "" {
		var ok bool
		if less, ok = comparators[q.SortBy]; !ok {
			return Page{}, fmt.Errorf("%w: %q", ErrBadSortField, q.SortBy)
		}
	}
	if q.Order != "" && q.Order != "asc" && q.Order != "desc" {
		return Page{}, fmt.Errorf("%w: %q", ErrBadOrder, q.Order)
	}

	// 2) Filter.
	items := c.products
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		items = make([]Product, 0, len(c.products))
		for _, p := range c.products {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				items = append(items, p)
			}
		}
	}

	// 3) Sort a private copy.
	if less != nil {
		items = slices.Clone(items)
		if q.Order == "desc" {
			slices.SortStableFunc(items, func(a, b Product) int { return less(b, a) })
		} else {
			slices.SortStableFunc(items, less)
		}
	}

	// 4) Slice the page.
	// Pages past the end are empty; the offset is only computed for pages
	// that exist, so huge page or limit values cannot overflow.
	total := len(items)
	totalPages := total / q.Limit
	if total%q.Limit != 0 {
		totalPages++
	}
	start := total
	if q.Page <= totalPages {
		start = (q.Page - 1) * q.Limit
	}
	end := start + min(q.Limit, total-start)

	return Page{
		Items:      slices.Clone(items[start:end]),
		Total:      total,
		Page:       q.Page,
		TotalPages: totalPages,
		HasNext:    q.Page < totalPages,
	}, nil
}
