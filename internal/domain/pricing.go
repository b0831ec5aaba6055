package domain

// Candidate is a single priced offer extracted from one shopping search hit.
// It lives only for the duration of one resolution call. Price, Domain, URL
// and Description are fixed at construction; InRange and Score are derived
// fields recomputed by the price range evaluator whenever the window changes.
type Candidate struct {
	Price       float64 `json:"price"`
	Domain      string  `json:"domain"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	IsAmazon    bool    `json:"isAmazon"`
	InRange     bool    `json:"inRange"`
	Score       float64 `json:"score"`
}

// ResolveRequest describes one inventory line item to price.
// TargetPrice is optional; TolerancePercent defaults when zero or negative.
type ResolveRequest struct {
	Description      string   `json:"description" binding:"required"`
	TargetPrice      *float64 `json:"targetPrice,omitempty"`
	TolerancePercent float64  `json:"tolerancePercent,omitempty"`
}

// ResolutionResult is the terminal output of one resolution call.
// Constructed once, immutable, and safe to cache.
type ResolutionResult struct {
	Found       bool    `json:"found"`
	Price       float64 `json:"price,omitempty"`
	Source      string  `json:"source,omitempty"`
	URL         string  `json:"url,omitempty"`
	Category    string  `json:"category,omitempty"`
	Subcategory string  `json:"subcategory,omitempty"`
	Description string  `json:"description,omitempty"`
	Message     string  `json:"message,omitempty"`
	FromCache   bool    `json:"fromCache"`
}
