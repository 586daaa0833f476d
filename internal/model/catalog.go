package model

// DrinkType is a catalog entry with the unit content of one serving.
type DrinkType struct {
	Name  string
	Units float64
}

// DrinkCatalog lists the standard serving sizes offered for quick
// logging. Units follow the UK standard-unit convention.
var DrinkCatalog = []DrinkType{
	{Name: "Beer (Pint)", Units: 2.3},
	{Name: "Beer (Half Pint)", Units: 1.2},
	{Name: "Wine (Large Glass)", Units: 3.0},
	{Name: "Wine (Medium Glass)", Units: 2.1},
	{Name: "Wine (Small Glass)", Units: 1.5},
	{Name: "Spirits (Double)", Units: 2.0},
	{Name: "Spirits (Single)", Units: 1.0},
	{Name: "Cocktail", Units: 1.5},
	{Name: "Alcopop", Units: 1.1},
}

// CatalogDrink finds a catalog entry by exact name.
func CatalogDrink(name string) (DrinkType, bool) {
	for _, d := range DrinkCatalog {
		if d.Name == name {
			return d, true
		}
	}
	return DrinkType{}, false
}
