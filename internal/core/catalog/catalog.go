package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rl1809/tableside/internal/core/domain"
)

var (
	ErrNoCategories      = errors.New("catalog has no categories")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrDuplicateItem     = errors.New("duplicate item id")
	ErrUnknownCategory   = errors.New("item references unknown category")
	ErrInvalidItem       = errors.New("invalid menu item")
)

// Catalog is a read-only menu. All methods are safe for concurrent use
// because nothing mutates it after New returns.
type Catalog struct {
	categories []string
	items      []domain.MenuItem
	byID       map[string]int
}

func New(categories []string, items []domain.MenuItem) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrInvalidItem)
		}
		if known[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c)
		}
		known[c] = true
	}

	byID := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("%w: item %d has no id", ErrInvalidItem, i)
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("%w: %s has negative price", ErrInvalidItem, it.ID)
		}
		// Carts are stored with two-decimal prices
		if !it.Price.Equal(it.Price.Round(2)) {
			return nil, fmt.Errorf("%w: %s price %s has more than two decimals", ErrInvalidItem, it.ID, it.Price)
		}
		if !known[it.Category] {
			return nil, fmt.Errorf("%w: %s in %q", ErrUnknownCategory, it.ID, it.Category)
		}
		if _, ok := byID[it.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, it.ID)
		}
		byID[it.ID] = i
	}

	return &Catalog{
		categories: append([]string(nil), categories...),
		items:      append([]domain.MenuItem(nil), items...),
		byID:       byID,
	}, nil
}

func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Items returns the items of a category in definition order. An unknown
// category gives an empty slice.
func (c *Catalog) Items(category string) []domain.MenuItem {
	out := []domain.MenuItem{}
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func (c *Catalog) Item(id string) (domain.MenuItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.MenuItem{}, false
	}
	return c.items[i], true
}

func (c *Catalog) All() []domain.MenuItem {
	return append([]domain.MenuItem(nil), c.items...)
}
