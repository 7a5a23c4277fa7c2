package domain

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Restaurant struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	ImageURL       string      `json:"image"`
	Cuisine        string      `json:"cuisine"`
	PriceRange     string      `json:"price_range"`
	Popular        bool        `json:"popular"`
	Rating         float64     `json:"rating"`
	TotalReviews   int         `json:"total_reviews"`
	Coordinates    Coordinates `json:"coordinates"`
	Address        string      `json:"address"`
	OperatingHours string      `json:"operating_hours"`
	Facilities     []string    `json:"facilities"`
	Menu           []MenuItem  `json:"menu,omitempty"`
	Tables         []Table     `json:"tables"`
	Reviews        []Review    `json:"reviews,omitempty"`
}

type Table struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Capacity    int     `json:"capacity"`
	Available   bool    `json:"available"`
	BookedUntil string  `json:"booked_until,omitempty"`
	Price       float64 `json:"price"`
}

type MenuItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
}

// FilterCriteria holds the listing constraints. Zero values mean "unset".
type FilterCriteria struct {
	Query         string   `json:"q,omitempty"`
	Cuisine       string   `json:"cuisine,omitempty"`
	PriceRange    string   `json:"price_range,omitempty"`
	MinRating     float64  `json:"min_rating,omitempty"`
	MaxDistanceKm float64  `json:"max_distance_km,omitempty"`
	Facilities    []string `json:"facilities,omitempty"`
}

type Listing struct {
	Restaurant      Restaurant `json:"restaurant"`
	DistanceKm      float64    `json:"distance_km"`
	AvailableTables int        `json:"available_tables"`
	NextAvailable   string     `json:"next_available"`
}

type Availability struct {
	RestaurantID    string  `json:"restaurant_id"`
	TotalTables     int     `json:"total_tables"`
	AvailableTables int     `json:"available_tables"`
	NextAvailable   string  `json:"next_available"`
	Tables          []Table `json:"tables"`
}

type FilterOptions struct {
	Cuisines    []string `json:"cuisines"`
	PriceRanges []string `json:"price_ranges"`
	Ratings     []string `json:"ratings"`
	Distances   []string `json:"distances"`
	Facilities  []string `json:"facilities"`
}
