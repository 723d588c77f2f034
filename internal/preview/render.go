// Package preview renders a webhook message as a terminal card, roughly as
// Discord would show it.
package preview

import (
	"strings"

	"github.com/CosmoTheDev/discord-pr-notify/models"
)

// Render draws every embed of body, preceded by the username override.
func Render(body models.MessageBody) string {
	var blocks []string
	if body.Username != "" {
		blocks = append(blocks, usernameStyle.Render(body.Username))
	}
	if body.AvatarURL != "" {
		blocks = append(blocks, dimStyle.Render("avatar: "+body.AvatarURL))
	}
	for _, e := range body.Embeds {
		blocks = append(blocks, renderEmbed(e))
	}
	return strings.Join(blocks, "\n")
}

func renderEmbed(e models.Embed) string {
	var lines []string
	if e.Title != "" {
		title := titleStyle.Render(stripBold(e.Title))
		if e.URL != "" {
			title = linkStyle.Render(stripBold(e.Title))
		}
		lines = append(lines, title)
	}
	if e.URL != "" {
		lines = append(lines, dimStyle.Render(e.URL))
	}
	if e.Description != "" {
		lines = append(lines, bodyStyle.Render(e.Description))
	}
	if e.Image != nil {
		lines = append(lines, dimStyle.Render("image: "+e.Image.URL))
	}

	colour := "invalid"
	if hex := e.Color.Hex(); hex != "" {
		colour = hex
	}
	lines = append(lines, dimStyle.Render("colour: "+colour))

	return cardStyle.
		BorderForeground(accentColor(e.Color.Hex())).
		Render(strings.Join(lines, "\n"))
}

// stripBold drops the markdown bold markers Discord would interpret.
func stripBold(s string) string {
	if len(s) >= 4 && strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**") {
		return s[2 : len(s)-2]
	}
	return s
}
