package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/CosmoTheDev/discord-pr-notify/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect action inputs",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved inputs (webhook tokens redacted)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := config.Load(manifest, config.LoadOptions{
			ConfigFile:   cfgFile,
			Flags:        cmd.Flags(),
			SkipRequired: true,
		})
		if err != nil {
			return err
		}

		// Redact secrets.
		urls := in.WebhookURLs()
		for i, u := range urls {
			urls[i] = redactURL(u)
		}
		in.WebhookURL = strings.Join(urls, ",")

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(in)
	},
}

var configInputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "List the inputs declared in action.yml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), inputsTable(manifest))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configInputsCmd)
}

func inputsTable(m *config.Manifest) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("INPUT", "ENV", "FLAG", "REQUIRED", "DEFAULT", "DESCRIPTION")
	for _, in := range m.Inputs {
		required := "no"
		if in.Required {
			required = "yes"
		}
		t.Row(in.Name, config.EnvName(in.Name), "--"+config.FlagName(in.Name), required, in.Default, in.Description)
	}
	return t.String()
}

// redactURL keeps only the scheme and host of a webhook URL; Discord puts the
// webhook token in the path.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}
