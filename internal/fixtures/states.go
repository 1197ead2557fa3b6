// Package fixtures holds the static travel data the app renders in place of
// a backend. Accessors hand out copies; the package-level data never changes.
package fixtures

import "github.com/alexisbeaulieu97/yatra/internal/model"

var states = []model.State{
	{
		ID:           "goa",
		Name:         "Goa",
		Image:        "https://images.pexels.com/photos/1078983/pexels-photo-1078983.jpeg?auto=compress&cs=tinysrgb&w=800",
		Culture:      "A blend of Indian and Portuguese heritage, visible in its whitewashed churches, Konkani cuisine and relaxed susegad lifestyle.",
		Festivals:    "Carnival, Shigmo, Sao Joao, Christmas",
		FamousPlaces: "Baga Beach, Fort Aguada, Basilica of Bom Jesus, Dudhsagar Falls",
		BestTime:     "November to February",
		Budget:       "₹15,000 - ₹25,000 per person",
		TouristAttractions: []model.Attraction{
			{Name: "Baga Beach", Description: "Lively beach known for water sports, shacks and nightlife."},
			{Name: "Fort Aguada", Description: "17th-century Portuguese fort and lighthouse overlooking the Arabian Sea."},
			{Name: "Basilica of Bom Jesus", Description: "UNESCO World Heritage church holding the relics of St. Francis Xavier."},
		},
		Restaurants: []model.Restaurant{
			{Name: "Brittos", Cuisine: "Seafood", Rating: 4.5},
			{Name: "Thalassa", Cuisine: "Greek", Rating: 4.6},
			{Name: "Gunpowder", Cuisine: "South Indian", Rating: 4.4},
		},
	},
	{
		ID:           "kerala",
		Name:         "Kerala",
		Image:        "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg?auto=compress&cs=tinysrgb&w=800",
		Culture:      "Known as God's Own Country, home to Kathakali, Mohiniyattam, Ayurveda and a strong tradition of temple arts.",
		Festivals:    "Onam, Vishu, Thrissur Pooram, Nehru Trophy Boat Race",
		FamousPlaces: "Alleppey Backwaters, Munnar, Fort Kochi, Periyar",
		BestTime:     "September to March",
		Budget:       "₹30,000 - ₹45,000 per person",
		TouristAttractions: []model.Attraction{
			{Name: "Alleppey Backwaters", Description: "Network of lagoons and canals best explored on a houseboat."},
			{Name: "Munnar", Description: "Hill station carpeted with tea plantations and misty peaks."},
			{Name: "Fort Kochi", Description: "Colonial quarter with Chinese fishing nets and art cafes."},
		},
		Restaurants: []model.Restaurant{
			{Name: "Kashi Art Cafe", Cuisine: "Cafe", Rating: 4.4},
			{Name: "Paragon", Cuisine: "Kerala", Rating: 4.7},
			{Name: "Dal Roti", Cuisine: "North Indian", Rating: 4.3},
		},
	},
	{
		ID:           "rajasthan",
		Name:         "Rajasthan",
		Image:        "https://images.pexels.com/photos/3581368/pexels-photo-3581368.jpeg?auto=compress&cs=tinysrgb&w=800",
		Culture:      "Land of kings with grand forts, folk music, puppetry and vivid textiles.",
		Festivals:    "Pushkar Camel Fair, Desert Festival, Teej, Gangaur",
		FamousPlaces: "Amber Fort, City Palace Udaipur, Jaisalmer Fort, Hawa Mahal",
		BestTime:     "October to March",
		Budget:       "₹20,000 - ₹35,000 per person",
		TouristAttractions: []model.Attraction{
			{Name: "Amber Fort", Description: "Hilltop fort of red sandstone and marble near Jaipur."},
			{Name: "City Palace Udaipur", Description: "Palace complex on the banks of Lake Pichola."},
			{Name: "Jaisalmer Fort", Description: "Living golden fort rising out of the Thar desert."},
		},
		Restaurants: []model.Restaurant{
			{Name: "Laxmi Mishthan Bhandar", Cuisine: "Rajasthani", Rating: 4.3},
			{Name: "Ambrai", Cuisine: "Indian", Rating: 4.5},
			{Name: "Chokhi Dhani", Cuisine: "Rajasthani Thali", Rating: 4.4},
		},
	},
	{
		ID:           "himachal",
		Name:         "Himachal Pradesh",
		Image:        "https://images.pexels.com/photos/4429333/pexels-photo-4429333.jpeg?auto=compress&cs=tinysrgb&w=800",
		Culture:      "Pahari traditions, Buddhist monasteries and apple orchards across the Himalayan foothills.",
		Festivals:    "Kullu Dussehra, Losar, Minjar Fair, Shivratri",
		FamousPlaces: "Manali, Shimla, Dharamshala, Spiti Valley",
		BestTime:     "March to June",
		Budget:       "₹18,000 - ₹30,000 per person",
		TouristAttractions: []model.Attraction{
			{Name: "Rohtang Pass", Description: "High mountain pass with snow views near Manali."},
			{Name: "The Ridge, Shimla", Description: "Open promenade lined with colonial architecture."},
			{Name: "Key Monastery", Description: "Thousand-year-old Tibetan Buddhist monastery in Spiti."},
		},
		Restaurants: []model.Restaurant{
			{Name: "Johnson's Cafe", Cuisine: "Continental", Rating: 4.3},
			{Name: "Cafe Sol", Cuisine: "Cafe", Rating: 4.2},
			{Name: "Himachali Rasoi", Cuisine: "Himachali", Rating: 4.5},
		},
	},
	{
		ID:           "tamil-nadu",
		Name:         "Tamil Nadu",
		Image:        "https://images.pexels.com/photos/3522880/pexels-photo-3522880.jpeg?auto=compress&cs=tinysrgb&w=800",
		Culture:      "Dravidian temple architecture, Bharatanatyam and Carnatic music traditions.",
		Festivals:    "Pongal, Karthigai Deepam, Natyanjali, Chithirai",
		FamousPlaces: "Meenakshi Temple, Mahabalipuram, Ooty, Kanyakumari",
		BestTime:     "November to February",
		Budget:       "₹15,000 - ₹28,000 per person",
		TouristAttractions: []model.Attraction{
			{Name: "Meenakshi Amman Temple", Description: "Historic temple in Madurai with towering painted gopurams."},
			{Name: "Shore Temple", Description: "8th-century granite temple on the Mahabalipuram coast."},
			{Name: "Nilgiri Mountain Railway", Description: "Heritage toy train climbing to Ooty."},
		},
		Restaurants: []model.Restaurant{
			{Name: "Murugan Idli Shop", Cuisine: "South Indian", Rating: 4.4},
			{Name: "Saravana Bhavan", Cuisine: "Vegetarian", Rating: 4.3},
			{Name: "Karaikudi", Cuisine: "Chettinad", Rating: 4.5},
		},
	},
}

// States returns every state in display order.
func States() []model.State {
	out := make([]model.State, len(states))
	for i, s := range states {
		out[i] = s.Clone()
	}
	return out
}

// StateByID looks up a state by its fixture id.
func StateByID(id string) (model.State, bool) {
	for _, s := range states {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return model.State{}, false
}
