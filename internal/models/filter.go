package models

// FilterSelection holds the current values of the dashboard filter widgets.
// Zero values mean "all": an empty Manufacturer, an empty FuelTypes set and a
// zero DealerID match everything, and a zero bound on either end of a range
// leaves that end open.
type FilterSelection struct {
	Manufacturer string   `json:"manufacturer"`
	FuelTypes    []string `json:"fuel_types"`
	DealerID     int      `json:"dealer_id"`
	PriceMin     float64  `json:"price_min"`
	PriceMax     float64  `json:"price_max"`
	YearMin      int      `json:"year_min"`
	YearMax      int      `json:"year_max"`
}

// IsDefault reports whether every widget is at its "all" value.
func (f FilterSelection) IsDefault() bool {
	return f.Manufacturer == "" && len(f.FuelTypes) == 0 && f.DealerID == 0 &&
		f.PriceMin == 0 && f.PriceMax == 0 && f.YearMin == 0 && f.YearMax == 0
}

// FilterOptions describes the option sets and bounds offered to the filter
// widgets, discovered from the collection itself.
type FilterOptions struct {
	Manufacturers []string       `json:"manufacturers"`
	FuelTypes     []string       `json:"fuel_types"`
	Dealers       []DealerOption `json:"dealers"`
	PriceRange    Range          `json:"price_range"`
	YearRange     IntRange       `json:"year_range"`
}

// DealerOption is one entry in the dealer selector.
type DealerOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Range is an inclusive float bound pair.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IntRange is an inclusive integer bound pair.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
