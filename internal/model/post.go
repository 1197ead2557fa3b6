package model

// Post is an entry in the social feed. Likes and IsLiked are mutated locally
// by the feed and never reconciled with the server.
type Post struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	UserImage string `json:"userImage"`
	PostImage string `json:"postImage"`
	Caption   string `json:"caption"`
	Location  string `json:"location"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	Timestamp string `json:"timestamp"`
	IsLiked   bool   `json:"isLiked"`
}
