package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/CosmoTheDev/discord-pr-notify/internal/actions"
	"github.com/CosmoTheDev/discord-pr-notify/internal/config"
	"github.com/CosmoTheDev/discord-pr-notify/internal/embed"
	"github.com/CosmoTheDev/discord-pr-notify/internal/event"
	"github.com/CosmoTheDev/discord-pr-notify/internal/notify"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
)

func runNotify(cmd *cobra.Command, args []string) error {
	in, err := config.Load(manifest, config.LoadOptions{
		ConfigFile: cfgFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	return notifyPullRequest(cmd.Context(), action, in, http.DefaultClient)
}

// notifyPullRequest builds the embed for the current run and posts it to
// every webhook URL in in.
func notifyPullRequest(ctx context.Context, a *githubactions.Action, in *config.Inputs, client *http.Client) error {
	urls := in.WebhookURLs()
	if actions.Enabled(os.Getenv) {
		// Webhook URLs embed their token.
		for _, u := range urls {
			if u != "" {
				a.AddMask(u)
			}
		}
	}

	evt, err := event.FromActions(a)
	if err != nil {
		return err
	}

	body := notify.NewBody(*in, embed.Build(*in, *evt))
	slog.Info("Sending pull request notification",
		"event", evt.EventName,
		"action", evt.Action,
		"webhooks", len(urls),
	)
	return notify.NewDispatcher(urls, client).Dispatch(ctx, body)
}
