package models

type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl"`
	Country     string `json:"country"`
}
