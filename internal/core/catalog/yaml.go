package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	"github.com/rl1809/tableside/internal/core/domain"
)

type menuFile struct {
	Categories []string       `yaml:"categories"`
	Items      []menuFileItem `yaml:"items"`
}

type menuFileItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	Vegetarian  bool   `yaml:"vegetarian"`
}

// LoadFile reads a YAML menu from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a YAML menu:
//
//	categories: [Pizza, Dolci]
//	items:
//	  - id: pizza-1
//	    name: Margherita
//	    price: 11.00
//	    category: Pizza
//	    vegetarian: true
func Load(r io.Reader) (*Catalog, error) {
	var mf menuFile
	if err := yaml.NewDecoder(r).Decode(&mf); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(mf.Items))
	for _, it := range mf.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: %s has price %q", ErrInvalidItem, it.ID, it.Price)
		}
		items = append(items, domain.MenuItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       price,
			Category:    it.Category,
			Image:       it.Image,
			Vegetarian:  it.Vegetarian,
		})
	}

	return New(mf.Categories, items)
}
