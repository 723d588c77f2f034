package config

import "strings"

// Input names as declared in action.yml.
const (
	InputWebhookURL     = "webhook_url"
	InputTitle          = "title"
	InputMessage        = "message"
	InputAvatarURL      = "avatar_url"
	InputUsername       = "username"
	InputColour         = "colour"
	InputIncludeImage   = "include_image"
	InputCustomImageURL = "custom_image_url"
	InputTitleURL       = "title_url"
)

// Inputs holds the resolved action inputs. An empty string means unset.
type Inputs struct {
	// WebhookURL is a comma-separated list of Discord webhook URLs.
	WebhookURL string `json:"webhook_url"`
	// Title overrides the derived embed title when non-empty.
	Title   string `json:"title"`
	Message string `json:"message"`

	AvatarURL string `json:"avatar_url"`
	Username  string `json:"username"`

	// Colour is a hex colour, optionally prefixed with '#'.
	Colour         string `json:"colour"`
	IncludeImage   bool   `json:"include_image"`
	CustomImageURL string `json:"custom_image_url"`
	TitleURL       string `json:"title_url"`
}

// WebhookURLs splits WebhookURL on commas and trims each entry. Order is kept
// and empty or duplicate entries are not removed.
func (in Inputs) WebhookURLs() []string {
	parts := strings.Split(in.WebhookURL, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
