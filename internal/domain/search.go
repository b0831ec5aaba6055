package domain

// ShoppingHit is a single raw result from the shopping search provider.
// Price is the display string (e.g. "$1,299.00"); ExtractedPrice is the
// provider's parsed numeric value and may be absent or zero.
type ShoppingHit struct {
	Position       int     `json:"position,omitempty"`
	Title          string  `json:"title"`
	Link           string  `json:"link,omitempty"`
	ProductLink    string  `json:"product_link,omitempty"`
	Source         string  `json:"source,omitempty"`
	Price          string  `json:"price,omitempty"`
	ExtractedPrice float64 `json:"extracted_price,omitempty"`
}

// ShoppingSearchResponse is the provider envelope for one shopping query.
type ShoppingSearchResponse struct {
	ShoppingResults []ShoppingHit `json:"shopping_results"`
}
