// Package embed derives the Discord embed for a pull request event.
package embed

import (
	"fmt"
	"strconv"

	"github.com/CosmoTheDev/discord-pr-notify/internal/config"
	"github.com/CosmoTheDev/discord-pr-notify/internal/event"
	"github.com/CosmoTheDev/discord-pr-notify/models"
)

// PreviewImageHost renders the social preview card for a pull request.
const PreviewImageHost = "opengraph.githubassets.com"

const unknown = "Unknown"

// Build returns the embed for in and evt. It performs no I/O.
func Build(in config.Inputs, evt event.Context) models.Embed {
	e := models.Embed{
		Description: in.Message,
		Title:       in.Title,
		Color:       Color(in.Colour, evt),
		URL:         in.TitleURL,
	}
	if e.Title == "" {
		e.Title = Title(evt)
	}
	if in.IncludeImage {
		e.Image = image(in, evt)
	}
	return e
}

// Title derives the bold embed title from the event action.
func Title(evt event.Context) string {
	n := orUnknown(numberText(evt.PullRequestNumber))

	var text string
	switch {
	case evt.Action == models.ActionOpened:
		text = fmt.Sprintf("Pull Request #%s Opened by %s", n, orUnknown(deref(evt.PullRequestAuthor)))
	case evt.Action == models.ActionReopened:
		text = fmt.Sprintf("Pull Request #%s Reopened by %s", n, evt.Actor)
	case evt.IsMerged():
		text = fmt.Sprintf("Pull Request #%s Merged by %s", n, orUnknown(deref(evt.MergedBy)))
	case evt.Action == models.ActionClosed:
		text = fmt.Sprintf("Pull Request #%s Closed by %s", n, evt.Actor)
	default:
		text = fmt.Sprintf("Pull Request #%s Event", n)
	}
	return "**" + text + "**"
}

// Color picks the embed colour. An explicit colour always wins, even when it
// does not parse.
func Color(colour string, evt event.Context) models.Color {
	switch {
	case colour != "":
		return models.ParseHexColor(colour)
	case evt.Action.IsOpen():
		return models.ColorOpen
	case evt.IsMerged():
		return models.ColorMerged
	default:
		return models.ColorClosed
	}
}

// PreviewImageURL is the GitHub social preview of the pull request at sha.
func PreviewImageURL(evt event.Context) string {
	return fmt.Sprintf("https://%s/%s/%s/%s/pull/%s",
		PreviewImageHost, evt.SHA, evt.RepositoryOwner, evt.RepositoryName,
		orUnknown(numberText(evt.PullRequestNumber)))
}

func image(in config.Inputs, evt event.Context) *models.Image {
	var img *models.Image
	if evt.IsPullRequestEvent() {
		img = &models.Image{URL: PreviewImageURL(evt)}
	}
	if in.CustomImageURL != "" {
		img = &models.Image{URL: in.CustomImageURL}
	}
	return img
}

func numberText(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
