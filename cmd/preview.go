package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CosmoTheDev/discord-pr-notify/internal/config"
	"github.com/CosmoTheDev/discord-pr-notify/internal/embed"
	"github.com/CosmoTheDev/discord-pr-notify/internal/event"
	"github.com/CosmoTheDev/discord-pr-notify/internal/notify"
	"github.com/CosmoTheDev/discord-pr-notify/internal/preview"
	"github.com/spf13/cobra"
)

var (
	previewEventFile string
	previewEventName string
	previewJSON      bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the message that would be sent, without sending it",
	Long: `Builds the Discord message for the current run and prints it as a
terminal card followed by the JSON body. webhook_url is not required.

Use --event-file to preview against a saved webhook payload outside Actions.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewEventFile, "event-file", "",
		"event payload JSON to use instead of GITHUB_EVENT_PATH")
	previewCmd.Flags().StringVar(&previewEventName, "event-name", "",
		"event name to use instead of GITHUB_EVENT_NAME (default pull_request with --event-file)")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false,
		"print only the JSON body")
}

func runPreview(cmd *cobra.Command, args []string) error {
	in, err := config.Load(manifest, config.LoadOptions{
		ConfigFile:   cfgFile,
		Flags:        cmd.Flags(),
		SkipRequired: true,
	})
	if err != nil {
		return err
	}

	evt, err := previewEvent()
	if err != nil {
		return err
	}

	body := notify.NewBody(*in, embed.Build(*in, *evt))
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding message body: %w", err)
	}

	out := cmd.OutOrStdout()
	if !previewJSON {
		fmt.Fprintln(out, preview.Render(body))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func previewEvent() (*event.Context, error) {
	if previewEventFile == "" && previewEventName == "" {
		return event.FromActions(action)
	}

	gh, err := action.Context()
	if err != nil {
		return nil, fmt.Errorf("reading actions context: %w", err)
	}
	rt := event.RuntimeFrom(gh)
	if previewEventName != "" {
		rt.EventName = previewEventName
	}

	var payload []byte
	if previewEventFile != "" {
		payload, err = os.ReadFile(previewEventFile)
		if err != nil {
			return nil, fmt.Errorf("reading event file: %w", err)
		}
		if rt.EventName == "" {
			rt.EventName = event.NamePullRequest
		}
	} else if payload, err = json.Marshal(gh.Event); err != nil {
		return nil, fmt.Errorf("re-encoding event payload: %w", err)
	}
	return event.FromPayload(rt, payload)
}
