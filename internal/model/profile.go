package model

// UserProfile is the signed-in traveller.
type UserProfile struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Username     string        `json:"username"`
	Bio          string        `json:"bio"`
	ProfileImage string        `json:"profileImage"`
	Posts        []ProfilePost `json:"posts"`
	Followers    int           `json:"followers"`
	Following    int           `json:"following"`
	SavedPlans   []SavedPlan   `json:"savedPlans"`
}

// ProfilePost is a thumbnail in the profile grid.
type ProfilePost struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// SavedPlan is a trip plan bookmarked by the user.
type SavedPlan struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Budget      string `json:"budget"`
}

// Clone returns a deep copy of the profile.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Posts = append([]ProfilePost(nil), p.Posts...)
	out.SavedPlans = append([]SavedPlan(nil), p.SavedPlans...)
	return out
}
