package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// AuthAPI covers login, signup and password reset.
type AuthAPI struct{ c *Client }

// Login posts credentials to /auth/login.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	return a.c.do(ctx, "auth.login", http.MethodPost, "/auth/login", func(r *resty.Request) {
		r.SetBody(map[string]string{"email": email, "password": password})
	})
}

// Signup posts a new account to /auth/signup.
func (a *AuthAPI) Signup(ctx context.Context, username, email, password string) (json.RawMessage, error) {
	return a.c.do(ctx, "auth.signup", http.MethodPost, "/auth/signup", func(r *resty.Request) {
		r.SetBody(map[string]string{"username": username, "email": email, "password": password})
	})
}

// ForgotPassword asks the server to email a reset link.
func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) (json.RawMessage, error) {
	return a.c.do(ctx, "auth.forgot_password", http.MethodPost, "/auth/forgot-password", func(r *resty.Request) {
		r.SetBody(map[string]string{"email": email})
	})
}

// StatesAPI reads destination data.
type StatesAPI struct{ c *Client }

// List fetches every state.
func (s *StatesAPI) List(ctx context.Context) (json.RawMessage, error) {
	return s.c.do(ctx, "states.list", http.MethodGet, "/states", nil)
}

// Get fetches one state.
func (s *StatesAPI) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.c.do(ctx, "states.get", http.MethodGet, "/states/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id)
	})
}

// PostForm is the multipart payload for a new post. Image is accepted but
// not uploaded; the server receives caption and location only.
type PostForm struct {
	Caption  string
	Location string
	Image    string
}

// PostsAPI covers the social feed.
type PostsAPI struct{ c *Client }

// List fetches the feed.
func (p *PostsAPI) List(ctx context.Context) (json.RawMessage, error) {
	return p.c.do(ctx, "posts.list", http.MethodGet, "/posts", nil)
}

// Create uploads a new post as multipart/form-data.
func (p *PostsAPI) Create(ctx context.Context, form PostForm) (json.RawMessage, error) {
	return p.c.do(ctx, "posts.create", http.MethodPost, "/posts", func(r *resty.Request) {
		r.SetMultipartFormData(map[string]string{
			"caption":  form.Caption,
			"location": form.Location,
		})
	})
}

// Like records a like on the server.
func (p *PostsAPI) Like(ctx context.Context, id string) (json.RawMessage, error) {
	return p.c.do(ctx, "posts.like", http.MethodPost, "/posts/{id}/like", func(r *resty.Request) {
		r.SetPathParam("id", id)
	})
}

// Comment adds a comment to a post.
func (p *PostsAPI) Comment(ctx context.Context, id, comment string) (json.RawMessage, error) {
	return p.c.do(ctx, "posts.comment", http.MethodPost, "/posts/{id}/comment", func(r *resty.Request) {
		r.SetPathParam("id", id).SetBody(map[string]string{"comment": comment})
	})
}

// ChatbotAPI talks to the server-side assistant.
type ChatbotAPI struct{ c *Client }

// SendMessage posts a chat message.
func (b *ChatbotAPI) SendMessage(ctx context.Context, message string) (json.RawMessage, error) {
	return b.c.do(ctx, "chatbot.message", http.MethodPost, "/chatbot/message", func(r *resty.Request) {
		r.SetBody(map[string]string{"message": message})
	})
}

// TravelPlan requests a generated itinerary.
func (b *ChatbotAPI) TravelPlan(ctx context.Context, destination, budget, duration string) (json.RawMessage, error) {
	return b.c.do(ctx, "chatbot.travel_plan", http.MethodPost, "/chatbot/travel-plan", func(r *resty.Request) {
		r.SetBody(map[string]string{"destination": destination, "budget": budget, "duration": duration})
	})
}

// MapAPI searches points of interest around a coordinate.
type MapAPI struct{ c *Client }

// TouristSpots lists monuments within radius of (lat, lon).
func (m *MapAPI) TouristSpots(ctx context.Context, lat, lon, radius float64) (json.RawMessage, error) {
	return m.c.do(ctx, "map.tourist_spots", http.MethodGet, "/map/tourist-spots", geoQuery(lat, lon, radius))
}

// Restaurants lists restaurants within radius of (lat, lon).
func (m *MapAPI) Restaurants(ctx context.Context, lat, lon, radius float64) (json.RawMessage, error) {
	return m.c.do(ctx, "map.restaurants", http.MethodGet, "/map/restaurants", geoQuery(lat, lon, radius))
}

func geoQuery(lat, lon, radius float64) func(*resty.Request) {
	return func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
			"longitude": strconv.FormatFloat(lon, 'f', -1, 64),
			"radius":    strconv.FormatFloat(radius, 'f', -1, 64),
		})
	}
}

// ProfileUpdate carries the editable profile fields. Nil fields are omitted.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// String returns a pointer to s, for building a ProfileUpdate.
func String(s string) *string { return &s }

// ProfileAPI covers the user profile.
type ProfileAPI struct{ c *Client }

// Get fetches a profile.
func (p *ProfileAPI) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return p.c.do(ctx, "profile.get", http.MethodGet, "/profile/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id)
	})
}

// Update replaces the editable fields of a profile.
func (p *ProfileAPI) Update(ctx context.Context, id string, update ProfileUpdate) (json.RawMessage, error) {
	return p.c.do(ctx, "profile.update", http.MethodPut, "/profile/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id).SetBody(update)
	})
}

// SavedPlans lists the travel plans a user bookmarked.
func (p *ProfileAPI) SavedPlans(ctx context.Context, id string) (json.RawMessage, error) {
	return p.c.do(ctx, "profile.saved_plans", http.MethodGet, "/profile/{id}/saved-plans", func(r *resty.Request) {
		r.SetPathParam("id", id)
	})
}
