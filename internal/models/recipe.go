package models

// Recipe is the canonical recipe shape shared by every provider, the
// favorites store, and the API surfaces. URI is the identity key.
type Recipe struct {
	URI            string   `json:"uri"`
	Label          string   `json:"label"`
	Image          string   `json:"image"`
	Calories       float64  `json:"calories"`
	Ingredients    []string `json:"ingredients"`
	URL            string   `json:"url"`
	Yield          *float64 `json:"yield,omitempty"`
	TotalTime      *float64 `json:"totalTime,omitempty"`
	Instructions   string   `json:"instructions,omitempty"`
	RelevanceScore *int     `json:"relevanceScore,omitempty"`
	Category       string   `json:"category,omitempty"`
	Cuisine        string   `json:"cuisine,omitempty"`
}

// URIs returns the identity keys of recipes in order.
func URIs(recipes []Recipe) []string {
	uris := make([]string, len(recipes))
	for i, r := range recipes {
		uris[i] = r.URI
	}
	return uris
}

// Labels returns the display names of recipes in order.
func Labels(recipes []Recipe) []string {
	labels := make([]string, len(recipes))
	for i, r := range recipes {
		labels[i] = r.Label
	}
	return labels
}
