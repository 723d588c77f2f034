package notify

import (
	"github.com/CosmoTheDev/discord-pr-notify/internal/config"
	"github.com/CosmoTheDev/discord-pr-notify/models"
)

// NewBody wraps e in the webhook message, adding the avatar and username
// overrides only when they are set.
func NewBody(in config.Inputs, e models.Embed) models.MessageBody {
	return models.MessageBody{
		Embeds:    []models.Embed{e},
		AvatarURL: in.AvatarURL,
		Username:  in.Username,
	}
}
