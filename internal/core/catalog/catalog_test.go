package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rl1809/tableside/internal/core/domain"
)

func TestDefault_Categories(t *testing.T) {
	c := Default()

	got := c.Categories()
	want := []string{"Antipasti", "Primi", "Pizza", "Secondi", "Dolci", "Bevande"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	// Mutating the returned slice must not leak into the catalog.
	got[0] = "Changed"
	if c.Categories()[0] != "Antipasti" {
		t.Error("categories slice is shared with caller")
	}
}

func TestDefault_ItemsPreserveOrder(t *testing.T) {
	c := Default()

	items := c.Items("Primi")
	if len(items) != 5 {
		t.Fatalf("expected 5 primi, got %d", len(items))
	}
	for i, it := range items {
		want := "primi-" + string(rune('1'+i))
		if it.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, it.ID)
		}
	}

	total := 0
	for _, cat := range c.Categories() {
		total += len(c.Items(cat))
	}
	if total != len(c.All()) {
		t.Errorf("expected categories to cover all %d items, got %d", len(c.All()), total)
	}
}

func TestItems_UnknownCategoryIsEmpty(t *testing.T) {
	items := Default().Items("Sushi")
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", items)
	}
}

func TestItem_Lookup(t *testing.T) {
	c := Default()

	it, ok := c.Item("pizza-1")
	if !ok {
		t.Fatal("expected pizza-1 to exist")
	}
	if it.Name != "Margherita" || !it.Price.Equal(decimal.RequireFromString("11")) {
		t.Errorf("unexpected item: %+v", it)
	}

	if _, ok := c.Item("nope"); ok {
		t.Error("expected lookup miss")
	}
}

func TestNew_Validation(t *testing.T) {
	pizza := domain.MenuItem{ID: "p", Category: "Pizza", Price: decimal.NewFromInt(1)}

	tests := []struct {
		name       string
		categories []string
		items      []domain.MenuItem
		want       error
	}{
		{"no categories", nil, nil, ErrNoCategories},
		{"duplicate category", []string{"Pizza", "Pizza"}, nil, ErrDuplicateCategory},
		{"duplicate item", []string{"Pizza"}, []domain.MenuItem{pizza, pizza}, ErrDuplicateItem},
		{"unknown category", []string{"Dolci"}, []domain.MenuItem{pizza}, ErrUnknownCategory},
		{"negative price", []string{"Pizza"}, []domain.MenuItem{{ID: "p", Category: "Pizza", Price: decimal.NewFromInt(-1)}}, ErrInvalidItem},
		{"sub-cent price", []string{"Pizza"}, []domain.MenuItem{{ID: "p", Category: "Pizza", Price: decimal.RequireFromString("1.255")}}, ErrInvalidItem},
		{"missing id", []string{"Pizza"}, []domain.MenuItem{{Category: "Pizza"}}, ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.categories, tt.items)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	src := `
categories: [Pizza, Dolci]
items:
  - id: pizza-1
    name: Margherita
    description: Tomato and mozzarella
    price: 11.00
    category: Pizza
    vegetarian: true
  - id: dolci-1
    name: Tiramisu
    price: "7.50"
    category: Dolci
    image: tiramisu.jpg
`
	c, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cats := c.Categories(); len(cats) != 2 || cats[1] != "Dolci" {
		t.Errorf("unexpected categories: %v", cats)
	}

	it, ok := c.Item("dolci-1")
	if !ok {
		t.Fatal("expected dolci-1")
	}
	if !it.Price.Equal(decimal.RequireFromString("7.5")) {
		t.Errorf("expected price 7.50, got %s", it.Price)
	}
	if it.Image != "tiramisu.jpg" {
		t.Errorf("expected image, got %q", it.Image)
	}

	p, _ := c.Item("pizza-1")
	if !p.Vegetarian || !p.Price.Equal(decimal.NewFromInt(11)) {
		t.Errorf("unexpected pizza: %+v", p)
	}
}

func TestLoad_BadPrice(t *testing.T) {
	src := `
categories: [Pizza]
items:
  - id: pizza-1
    price: cheap
    category: Pizza
`
	_, err := Load(strings.NewReader(src))
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem, got %v", err)
	}
}

func TestLoad_SubCentPriceRejected(t *testing.T) {
	src := `
categories: [Pizza]
items:
  - id: pizza-1
    price: 1.255
    category: Pizza
`
	_, err := Load(strings.NewReader(src))
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem, got %v", err)
	}
}
