package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/rl1809/tableside/internal/core/domain"
)

var defaultCategories = []string{
	"Antipasti",
	"Primi",
	"Pizza",
	"Secondi",
	"Dolci",
	"Bevande",
}

func menuItem(id, name, description, price, category string, vegetarian bool) domain.MenuItem {
	return domain.MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		Vegetarian:  vegetarian,
	}
}

var defaultItems = []domain.MenuItem{
	menuItem("antipasti-1", "Bruschetta Classica", "Toasted bread with fresh tomatoes, basil, garlic, and extra virgin olive oil", "8.50", "Antipasti", true),
	menuItem("antipasti-2", "Prosciutto e Melone", "Traditional Italian cured ham with fresh cantaloupe melon", "12.00", "Antipasti", false),
	menuItem("antipasti-3", "Caprese", "Fresh mozzarella, tomatoes, and basil with balsamic reduction", "10.50", "Antipasti", true),

	menuItem("primi-1", "Spaghetti Carbonara", "Classic Roman pasta with eggs, pecorino cheese, guanciale, and black pepper", "14.00", "Primi", false),
	menuItem("primi-2", "Penne Arrabbiata", "Penne pasta in a spicy tomato sauce with garlic and red chili", "12.00", "Primi", true),
	menuItem("primi-3", "Lasagne alla Bolognese", "Traditional layered pasta with rich meat ragù and béchamel sauce", "15.50", "Primi", false),
	menuItem("primi-4", "Risotto ai Funghi", "Creamy arborio rice with porcini mushrooms and parmesan", "16.00", "Primi", true),
	menuItem("primi-5", "Fettuccine Alfredo", "Fresh fettuccine in a creamy parmesan and butter sauce", "13.50", "Primi", true),

	menuItem("pizza-1", "Margherita", "Classic pizza with tomato sauce, mozzarella, and fresh basil", "11.00", "Pizza", true),
	menuItem("pizza-2", "Quattro Formaggi", "Four cheese pizza with mozzarella, gorgonzola, parmesan, and fontina", "14.00", "Pizza", true),
	menuItem("pizza-3", "Diavola", "Spicy pizza with tomato, mozzarella, and spicy salami", "13.50", "Pizza", false),
	menuItem("pizza-4", "Prosciutto e Funghi", "Pizza with tomato, mozzarella, ham, and mushrooms", "14.50", "Pizza", false),

	menuItem("secondi-1", "Osso Buco", "Braised veal shanks in white wine and vegetables, served with risotto", "24.00", "Secondi", false),
	menuItem("secondi-2", "Saltimbocca alla Romana", "Veal escalopes with prosciutto and sage in white wine sauce", "22.00", "Secondi", false),
	menuItem("secondi-3", "Pollo alla Parmigiana", "Breaded chicken breast with tomato sauce and melted mozzarella", "18.00", "Secondi", false),

	menuItem("dolci-1", "Tiramisu", "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone cream", "7.50", "Dolci", true),
	menuItem("dolci-2", "Panna Cotta", "Silky vanilla cream dessert with berry compote", "6.50", "Dolci", true),
	menuItem("dolci-3", "Cannoli Siciliani", "Crispy pastry shells filled with sweet ricotta and chocolate chips", "7.00", "Dolci", true),

	menuItem("bevande-1", "Acqua Minerale", "Sparkling or still mineral water (750ml)", "3.50", "Bevande", true),
	menuItem("bevande-2", "Vino Rosso", "House red wine (glass)", "6.00", "Bevande", true),
	menuItem("bevande-3", "Espresso", "Traditional Italian espresso", "2.50", "Bevande", true),
}

// Default returns the house menu.
func Default() *Catalog {
	c, err := New(defaultCategories, defaultItems)
	if err != nil {
		panic("catalog: invalid default menu: " + err.Error())
	}
	return c
}
