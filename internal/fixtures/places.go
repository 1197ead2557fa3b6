package fixtures

import "github.com/alexisbeaulieu97/yatra/internal/model"

// InitialRegion is the centre of the map view.
var InitialRegion = model.Coordinates{Latitude: 20.5937, Longitude: 78.9629}

var touristSpots = []model.TouristSpot{
	{ID: "spot-1", Name: "Taj Mahal", Description: "Ivory-white marble mausoleum on the bank of the Yamuna in Agra.", Coordinates: model.Coordinates{Latitude: 27.1751, Longitude: 78.0421}},
	{ID: "spot-2", Name: "Gateway of India", Description: "Arch monument overlooking the Arabian Sea in Mumbai.", Coordinates: model.Coordinates{Latitude: 18.9220, Longitude: 72.8347}},
	{ID: "spot-3", Name: "Qutub Minar", Description: "73-metre minaret of red sandstone in Delhi.", Coordinates: model.Coordinates{Latitude: 28.5245, Longitude: 77.1855}},
	{ID: "spot-4", Name: "Hawa Mahal", Description: "Palace of Winds with 953 latticed windows in Jaipur.", Coordinates: model.Coordinates{Latitude: 26.9239, Longitude: 75.8267}},
	{ID: "spot-5", Name: "Mysore Palace", Description: "Indo-Saracenic royal residence lit by thousands of bulbs.", Coordinates: model.Coordinates{Latitude: 12.3052, Longitude: 76.6552}},
}

var restaurants = []model.MapRestaurant{
	{ID: "rest-1", Name: "Karim's", Cuisine: "Mughlai", Rating: 4.4, Coordinates: model.Coordinates{Latitude: 28.6507, Longitude: 77.2334}},
	{ID: "rest-2", Name: "Britannia & Co.", Cuisine: "Parsi", Rating: 4.5, Coordinates: model.Coordinates{Latitude: 18.9345, Longitude: 72.8402}},
	{ID: "rest-3", Name: "MTR", Cuisine: "South Indian", Rating: 4.6, Coordinates: model.Coordinates{Latitude: 12.9552, Longitude: 77.5855}},
	{ID: "rest-4", Name: "Indian Accent", Cuisine: "Fine Dining", Rating: 4.7, Coordinates: model.Coordinates{Latitude: 28.5921, Longitude: 77.2290}},
	{ID: "rest-5", Name: "Trishna", Cuisine: "Seafood", Rating: 4.5, Coordinates: model.Coordinates{Latitude: 18.9290, Longitude: 72.8311}},
}

// TouristSpots returns the monument pins.
func TouristSpots() []model.TouristSpot {
	return append([]model.TouristSpot(nil), touristSpots...)
}

// Restaurants returns the restaurant pins.
func Restaurants() []model.MapRestaurant {
	return append([]model.MapRestaurant(nil), restaurants...)
}

// Markers returns every map pin, monuments first.
func Markers() []model.MarkerData {
	out := make([]model.MarkerData, 0, len(touristSpots)+len(restaurants))
	for _, s := range touristSpots {
		out = append(out, s.Marker())
	}
	for _, r := range restaurants {
		out = append(out, r.Marker())
	}
	return out
}
