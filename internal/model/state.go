package model

// State is an Indian state shown on the home screen and its detail page.
type State struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Image              string       `json:"image"`
	Culture            string       `json:"culture"`
	Festivals          string       `json:"festivals"`
	FamousPlaces       string       `json:"famousPlaces"`
	BestTime           string       `json:"bestTime"`
	Budget             string       `json:"budget"`
	TouristAttractions []Attraction `json:"touristAttractions"`
	Restaurants        []Restaurant `json:"restaurants"`
}

// Attraction is a sight listed on a state's detail page.
type Attraction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Restaurant is an eatery listed on a state's detail page.
type Restaurant struct {
	Name    string  `json:"name"`
	Cuisine string  `json:"cuisine"`
	Rating  float64 `json:"rating"`
}

// Clone returns a deep copy so callers can mutate it without touching fixtures.
func (s State) Clone() State {
	out := s
	out.TouristAttractions = append([]Attraction(nil), s.TouristAttractions...)
	out.Restaurants = append([]Restaurant(nil), s.Restaurants...)
	return out
}
