package models

// Embed is a single Discord rich-content block.
type Embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	Color       Color  `json:"color"`
	URL         string `json:"url,omitempty"`
	Image       *Image `json:"image,omitempty"`
}

// Image is the embed's large image.
type Image struct {
	URL string `json:"url"`
}

// MessageBody is the JSON document POSTed to every webhook URL.
type MessageBody struct {
	Embeds    []Embed `json:"embeds"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Username  string  `json:"username,omitempty"`
}
