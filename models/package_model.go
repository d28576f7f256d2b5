package models

type Package struct {
	ID            string   `json:"id"`
	AgentID       string   `json:"agentId"`
	DestinationID string   `json:"destinationId"`
	Name          string   `json:"name"`
	Duration      int      `json:"duration"`
	Price         float64  `json:"price"`
	Itinerary     string   `json:"itinerary"`
	MaxTravelers  int      `json:"maxTravelers"`
	ContactPhone  string   `json:"contactPhone"`
	Rating        float64  `json:"rating,omitempty"`
	ReviewsCount  int      `json:"reviewsCount,omitempty"`
	Images        []string `json:"images"`
}
