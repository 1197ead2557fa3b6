package model

import "fmt"

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// TouristSpot is a monument pin on the map.
type TouristSpot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Coordinates Coordinates `json:"coordinates"`
}

// MapRestaurant is a restaurant pin on the map.
type MapRestaurant struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Cuisine     string      `json:"cuisine"`
	Rating      float64     `json:"rating"`
	Coordinates Coordinates `json:"coordinates"`
}

// MarkerType distinguishes the two kinds of map pin.
type MarkerType string

const (
	MarkerMonument   MarkerType = "monument"
	MarkerRestaurant MarkerType = "restaurant"
)

// MarkerData is the selection shown in the map detail modal. Description is
// set for monuments; Cuisine and Rating for restaurants.
type MarkerData struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        MarkerType  `json:"type"`
	Description string      `json:"description,omitempty"`
	Cuisine     string      `json:"cuisine,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

// Marker converts a tourist spot into a map marker.
func (s TouristSpot) Marker() MarkerData {
	return MarkerData{
		ID:          s.ID,
		Name:        s.Name,
		Type:        MarkerMonument,
		Description: s.Description,
		Coordinates: s.Coordinates,
	}
}

// Marker converts a restaurant into a map marker.
func (r MapRestaurant) Marker() MarkerData {
	return MarkerData{
		ID:          r.ID,
		Name:        r.Name,
		Type:        MarkerRestaurant,
		Cuisine:     r.Cuisine,
		Rating:      r.Rating,
		Coordinates: r.Coordinates,
	}
}
