package config

import (
	"time"
)

// DefaultBaseURL is the travel API the client talks to unless configured.
const DefaultBaseURL = "http://localhost:8000/api"

// Config is the yatra configuration document.
type Config struct {
	API   APISettings  `yaml:"api"`
	Theme string       `yaml:"theme" validate:"oneof=light dark"`
	Chat  ChatSettings `yaml:"chat"`
	Log   LogSettings  `yaml:"log"`
}

// APISettings configures the REST client.
type APISettings struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"min=1s,max=2m"`
}

// ChatSettings configures the assistant screen.
type ChatSettings struct {
	// ReplyDelay simulates the assistant thinking before it answers.
	ReplyDelay time.Duration `yaml:"reply_delay" validate:"min=0s,max=10s"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		API: APISettings{
			BaseURL: DefaultBaseURL,
			Timeout: 10 * time.Second,
		},
		Theme: "light",
		Chat: ChatSettings{
			ReplyDelay: time.Second,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
