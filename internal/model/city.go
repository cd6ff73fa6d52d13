package model

// CityRecord is one row of the world-cities gazetteer
type CityRecord struct {
	Name       string  `json:"city"`
	ASCIIName  string  `json:"city_ascii"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	AdminName  string  `json:"admin_name,omitempty"`
	Capital    string  `json:"capital,omitempty"` // "primary", "admin", "minor" or empty
	Population int     `json:"population"`
	ISO2       string  `json:"iso2,omitempty"`
	ISO3       string  `json:"iso3,omitempty"`
}

// ResolvedPlace is a place name resolved against the gazetteer.
// Score below the configured city-match threshold means low confidence.
type ResolvedPlace struct {
	Name    string
	Lat     float64
	Lng     float64
	Country string
	Score   float64
}

// Weather is the provider-independent weather snapshot
type Weather struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    int     `json:"humidity"`    // %
	Condition   string  `json:"condition"`
	WindSpeed   float64 `json:"wind"` // m/s
}
