package fixtures

import "github.com/alexisbeaulieu97/yatra/internal/model"

var posts = []model.Post{
	{
		ID:        "post-1",
		Username:  "wanderlust_priya",
		UserImage: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150",
		PostImage: "https://images.pexels.com/photos/1078983/pexels-photo-1078983.jpeg?auto=compress&cs=tinysrgb&w=800",
		Caption:   "Sunset at Baga never gets old 🌅",
		Location:  "Baga Beach, Goa",
		Likes:     120,
		Comments:  14,
		Timestamp: "2 hours ago",
		IsLiked:   false,
	},
	{
		ID:        "post-2",
		Username:  "backpacker_arjun",
		UserImage: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
		PostImage: "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg?auto=compress&cs=tinysrgb&w=800",
		Caption:   "Three days on a houseboat and I never want to leave.",
		Location:  "Alleppey, Kerala",
		Likes:     342,
		Comments:  27,
		Timestamp: "5 hours ago",
		IsLiked:   true,
	},
	{
		ID:        "post-3",
		Username:  "desert_diaries",
		UserImage: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150",
		PostImage: "https://images.pexels.com/photos/3581368/pexels-photo-3581368.jpeg?auto=compress&cs=tinysrgb&w=800",
		Caption:   "Golden hour at the golden fort.",
		Location:  "Jaisalmer, Rajasthan",
		Likes:     1580,
		Comments:  0,
		Timestamp: "1 day ago",
		IsLiked:   false,
	},
}

var profile = model.UserProfile{
	ID:           "user-1",
	Name:         "Rahul Sharma",
	Username:     "rahul_travels",
	Bio:          "Chasing sunsets across India 🇮🇳 | 18 states and counting",
	ProfileImage: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=300",
	Posts: []model.ProfilePost{
		{ID: "p-1", Image: "https://images.pexels.com/photos/1078983/pexels-photo-1078983.jpeg?auto=compress&cs=tinysrgb&w=300", Caption: "Goa sunsets"},
		{ID: "p-2", Image: "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg?auto=compress&cs=tinysrgb&w=300", Caption: "Kerala backwaters"},
		{ID: "p-3", Image: "https://images.pexels.com/photos/3581368/pexels-photo-3581368.jpeg?auto=compress&cs=tinysrgb&w=300", Caption: "Jaisalmer fort"},
		{ID: "p-4", Image: "https://images.pexels.com/photos/4429333/pexels-photo-4429333.jpeg?auto=compress&cs=tinysrgb&w=300", Caption: "Spiti roads"},
	},
	Followers: 1234,
	Following: 567,
	SavedPlans: []model.SavedPlan{
		{ID: "plan-1", Destination: "Goa", Duration: "3 days", Budget: "₹20,000"},
		{ID: "plan-2", Destination: "Kerala", Duration: "5 days", Budget: "₹40,000"},
	},
}

var chatSuggestions = []string{
	"Plan a trip to Goa",
	"Kerala backwaters itinerary",
	"Budget travel tips",
	"Best restaurants in Delhi",
}

// Posts returns the seed feed.
func Posts() []model.Post {
	return append([]model.Post(nil), posts...)
}

// Profile returns the hardcoded signed-in profile.
func Profile() model.UserProfile {
	return profile.Clone()
}

// ChatSuggestions returns the quick prompts shown under the chat input.
func ChatSuggestions() []string {
	return append([]string(nil), chatSuggestions...)
}
